// Package mcpcmder provides the standalone recall MCP server cobra command.
package mcpcmder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpapi "github.com/recallhq/recall/api/mcp"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage"
	"github.com/recallhq/recall/pkg/worker"
)

type mcpCommander struct {
	listen      string
	driver      string
	sqlitePath  string
	postgresURL string

	cfg    *config.Config
	debug  bool
	logger *zap.Logger
}

const mcpLongDesc string = `Run the recall MCP server so MCP clients can store and retrieve agent memory.

The MCP endpoint is served at /mcp using the streamable HTTP transport.`

const mcpShortDesc string = "Run the recall MCP server"

func NewMCPCmd() *cobra.Command {
	cmder := &mcpCommander{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: mcpShortDesc,
		Long:  mcpLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}

			config.BindRegisteredFlags(v, cmd, config.ServeFlags, []string{
				config.FlagMCPListenStandalone,
				config.FlagDriver,
				config.FlagSQLite,
				config.FlagPostgres,
			})

			cmder.cfg = config.FromViper(v)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagMCPListenStandalone, &cmder.listen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagDriver, &cmder.driver)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagPostgres, &cmder.postgresURL)

	return cmd
}

func (c *mcpCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	ctx := context.Background()

	stores, err := storage.Open(ctx, c.cfg.Storage, c.logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	memories := memory.NewManager(stores.Memory, c.logger)
	graph := memory.NewGraph(stores.Memory, c.logger)
	contexts := memory.NewContextBuilder(memories, graph, c.logger)

	prompts := prompt.NewService(stores.Prompts, c.logger)
	if c.cfg.Prompt.SeedDefaults {
		if err := prompts.SeedDefaults(ctx); err != nil {
			return fmt.Errorf("seeding default templates: %w", err)
		}
	}

	pool, err := worker.NewPool(&worker.Config{
		Prompts:    prompts,
		NumWorkers: c.cfg.Worker.Workers,
		QueueSize:  c.cfg.Worker.QueueSize,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Close()

	server, err := mcpapi.NewServer(mcpapi.Config{
		Memories: memories,
		Graph:    graph,
		Contexts: contexts,
		Prompts:  prompts,
		Pool:     pool,
		Logger:   c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.Handler())
	mux.Handle("/mcp/", server.Handler())

	httpServer := &http.Server{
		Addr:              c.cfg.MCP.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	c.logger.Info("starting MCP server",
		zap.String("listen", c.cfg.MCP.Listen),
	)

	return httpServer.ListenAndServe()
}
