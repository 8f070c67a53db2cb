package templatescmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/prompt"
)

type showCommander struct {
	name      string
	raw       bool
	apiTarget string
}

const showLongDesc string = `Show a single prompt template in full.

The template body is rendered as markdown in the terminal. Use --raw to print
the body exactly as stored, without markdown rendering.

Example:
  recall templates show api_design
  recall templates show code_review --raw`

func newShowCmd() *cobra.Command {
	cmder := &showCommander{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one prompt template",
		Long:  showLongDesc,
		Args:  cobra.ExactArgs(1),
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
		RunE: func(_ *cobra.Command, args []string) error {
			cmder.name = args[0]
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().BoolVar(&cmder.raw, "raw", false, "Print the template body without markdown rendering")
	cmd.Flags().StringVar(&cmder.apiTarget, "api-target", defaults.Client.APITarget, "Recall API server URL")

	return cmd
}

func (c *showCommander) run() error {
	var tmpl prompt.Template
	if err := getJSON(c.apiTarget, "/templates/"+c.name, nil, &tmpl); err != nil {
		return err
	}

	fmt.Printf("\n%s  %s\n", nameStyle.Render(tmpl.Name), categoryStyle.Render("["+tmpl.Category+"]"))
	if tmpl.Description != "" {
		fmt.Printf("%s\n", descStyle.Render(tmpl.Description))
	}
	if len(tmpl.Variables) > 0 {
		fmt.Printf("%s\n", varStyle.Render("variables: "+strings.Join(tmpl.Variables, ", ")))
	}
	fmt.Println()

	if c.raw {
		fmt.Println(tmpl.Content)
		return nil
	}

	rendered, err := cliui.RenderMarkdown(tmpl.Content)
	if err != nil {
		// Fall back to the raw body when the terminal renderer fails.
		fmt.Println(tmpl.Content)
		return nil
	}
	fmt.Print(rendered)

	return nil
}
