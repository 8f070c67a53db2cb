// Package recallcmder
package recallcmder

import (
	"github.com/spf13/cobra"

	cleanupcmder "github.com/recallhq/recall/cmd/recall/cleanup"
	configcmder "github.com/recallhq/recall/cmd/recall/config"
	servecmder "github.com/recallhq/recall/cmd/recall/serve"
	templatescmder "github.com/recallhq/recall/cmd/recall/templates"
	versioncmder "github.com/recallhq/recall/cmd/version"
)

const recallLongDesc string = `Recall is persistent memory and prompt management for your agents.

Run services using:
  recall serve         Run the API server with the MCP endpoint mounted at /mcp
  recall serve api     Run just the HTTP API server
  recall serve mcp     Run just the MCP server`

const recallShortDesc string = "Recall - Agent Memory"

func NewRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: recallShortDesc,
		Long:  recallLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .recall/ config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(cleanupcmder.NewCleanupCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(templatescmder.NewTemplatesCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
