// Package servecmder provides the serve command with subcommands for running services.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recallhq/recall/api"
	mcpapi "github.com/recallhq/recall/api/mcp"
	apicmder "github.com/recallhq/recall/cmd/recall/serve/api"
	mcpcmder "github.com/recallhq/recall/cmd/recall/serve/mcp"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/retention"
	"github.com/recallhq/recall/pkg/storage"
	"github.com/recallhq/recall/pkg/worker"
)

type ServeCommander struct {
	apiListen   string
	driver      string
	sqlitePath  string
	postgresURL string

	retentionInterval uint
	retentionMax      uint
	workers           uint
	queueSize         uint

	cfg    *config.Config
	debug  bool
	logger *zap.Logger
}

const serveLongDesc string = `Run Recall services.

Use subcommands to run individual services or the full stack together:
  recall serve         Run the API server with the MCP endpoint mounted at /mcp
  recall serve api     Run just the HTTP API server
  recall serve mcp     Run just the MCP server

Configuration precedence is flags, then RECALL_ environment variables, then
config.toml in the .recall/ directory, then built-in defaults.`

const serveShortDesc string = "Run Recall services"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}

			config.BindRegisteredFlags(v, cmd, config.ServeFlags, []string{
				config.FlagAPIListen,
				config.FlagDriver,
				config.FlagSQLite,
				config.FlagPostgres,
				config.FlagRetentionInterval,
				config.FlagRetentionMax,
				config.FlagWorkers,
				config.FlagQueueSize,
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

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagAPIListen, &cmder.apiListen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagDriver, &cmder.driver)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagPostgres, &cmder.postgresURL)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagRetentionInterval, &cmder.retentionInterval)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagRetentionMax, &cmder.retentionMax)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagWorkers, &cmder.workers)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagQueueSize, &cmder.queueSize)

	cmd.AddCommand(apicmder.NewAPICmd())
	cmd.AddCommand(mcpcmder.NewMCPCmd())

	return cmd
}

func (c *ServeCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create shared stores
	stores, err := storage.Open(ctx, c.cfg.Storage, c.logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	// Domain services
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

	// Background retention
	if c.cfg.Retention.Enabled {
		retainer := retention.NewService(stores.Memory, retention.Config{
			Interval:                  time.Duration(c.cfg.Retention.IntervalSeconds) * time.Second,
			MaxEntriesPerConversation: int(c.cfg.Retention.MaxEntries),
		}, c.logger)
		retainer.Start(ctx)
		defer func() {
			cancel()
			retainer.Wait()
		}()

		c.logger.Info("retention enabled",
			zap.Uint("interval_seconds", c.cfg.Retention.IntervalSeconds),
			zap.Uint("max_entries", c.cfg.Retention.MaxEntries),
		)
	}

	// MCP server, mounted on the API listener
	mcpServer, err := mcpapi.NewServer(mcpapi.Config{
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

	apiServer := api.NewServer(api.Config{
		ListenAddr: c.cfg.API.Listen,
		MCPHandler: mcpServer.Handler(),
	}, api.Services{
		Memories: memories,
		Graph:    graph,
		Contexts: contexts,
		Prompts:  prompts,
		Pool:     pool,
	}, c.logger)

	c.logger.Info("starting recall",
		zap.String("api_addr", c.cfg.API.Listen),
		zap.String("driver", c.cfg.Storage.Driver),
	)

	// Channel to capture errors from goroutines
	errChan := make(chan error, 1)

	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return apiServer.Shutdown()
	}
}
