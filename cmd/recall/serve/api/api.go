// Package apicmder provides the recall API server cobra command.
package apicmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recallhq/recall/api"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage"
	"github.com/recallhq/recall/pkg/worker"
)

type apiCommander struct {
	listen      string
	driver      string
	sqlitePath  string
	postgresURL string

	cfg    *config.Config
	debug  bool
	logger *zap.Logger
}

const apiLongDesc string = `Run the recall HTTP API server for storing, querying, and relating agent memory.`

const apiShortDesc string = "Run the recall API server"

func NewAPICmd() *cobra.Command {
	cmder := &apiCommander{}

	cmd := &cobra.Command{
		Use:   "api",
		Short: apiShortDesc,
		Long:  apiLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}

			config.BindRegisteredFlags(v, cmd, config.ServeFlags, []string{
				config.FlagAPIListenStandalone,
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

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagAPIListenStandalone, &cmder.listen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagDriver, &cmder.driver)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagPostgres, &cmder.postgresURL)

	return cmd
}

func (c *apiCommander) run() error {
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

	server := api.NewServer(api.Config{
		ListenAddr: c.cfg.API.Listen,
	}, api.Services{
		Memories: memories,
		Graph:    graph,
		Contexts: contexts,
		Prompts:  prompts,
		Pool:     pool,
	}, c.logger)

	c.logger.Info("starting API server",
		zap.String("listen", c.cfg.API.Listen),
	)

	return server.Run()
}
