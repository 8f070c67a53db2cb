package main

import (
	"os"

	mcpcmder "github.com/recallhq/recall/cmd/recall/serve/mcp"
)

func main() {
	cmd := mcpcmder.NewMCPCmd()
	cmd.Use = "recallmcp"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .recall/ config directory")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
