package templatescmder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
)

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	varStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type listCommander struct {
	category  string
	apiTarget string
}

const listLongDesc string = `List prompt templates stored on the recall API server.

Shows each template's name, category, description and declared variables.
Use --category to restrict the listing to one category.

Example:
  recall templates list
  recall templates list --category development
  recall templates list --api-target http://localhost:8000`

func newListCmd() *cobra.Command {
	cmder := &listCommander{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompt templates",
		Long:  listLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("api-target") {
				cmder.apiTarget = cfg.Client.APITarget
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.category, "category", "c", "", "Filter templates by category")
	cmd.Flags().StringVar(&cmder.apiTarget, "api-target", defaults.Client.APITarget, "Recall API server URL")

	return cmd
}

func (c *listCommander) run() error {
	var query url.Values
	if c.category != "" {
		query = url.Values{"category": []string{c.category}}
	}

	var output listResponse
	if err := getJSON(c.apiTarget, "/templates", query, &output); err != nil {
		return err
	}

	if output.Count == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	fmt.Printf("\n%s\n\n", cliui.HeaderStyle.Render(fmt.Sprintf("%d templates", output.Count)))

	for _, t := range output.Templates {
		fmt.Printf("  %s  %s\n", nameStyle.Render(t.Name), categoryStyle.Render("["+t.Category+"]"))
		if t.Description != "" {
			fmt.Printf("  %s\n", descStyle.Render(t.Description))
		}
		if len(t.Variables) > 0 {
			fmt.Printf("  %s\n", varStyle.Render("variables: "+strings.Join(t.Variables, ", ")))
		}
		fmt.Println()
	}

	return nil
}
