// Package cleanupcmder provides the one-shot retention cleanup cobra command.
package cleanupcmder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/retention"
	"github.com/recallhq/recall/pkg/storage"
)

type cleanupCommander struct {
	driver      string
	sqlitePath  string
	postgresURL string
	maxEntries  uint

	cfg   *config.Config
	debug bool
}

const cleanupLongDesc string = `Run one retention cycle against the configured storage backend and exit.

A cycle removes entries whose TTL has elapsed (cascading their relationships)
and trims any conversation holding more than the configured maximum back down
to the cap, keeping the most important and most recent entries.

Only meaningful for persistent backends; an in-memory store has nothing to
clean between processes.`

const cleanupShortDesc string = "Remove expired and excess memory entries"

func NewCleanupCmd() *cobra.Command {
	cmder := &cleanupCommander{}

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: cleanupShortDesc,
		Long:  cleanupLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}

			config.BindRegisteredFlags(v, cmd, config.ServeFlags, []string{
				config.FlagDriver,
				config.FlagSQLite,
				config.FlagPostgres,
				config.FlagRetentionMax,
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

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagDriver, &cmder.driver)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagPostgres, &cmder.postgresURL)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagRetentionMax, &cmder.maxEntries)

	return cmd
}

func (c *cleanupCommander) run() error {
	// Keep zap quiet unless debugging so the spinner output stays clean.
	log := logger.Nop()
	if c.debug {
		log = logger.NewLogger(true)
	}
	defer log.Sync()

	ctx := context.Background()

	stores, err := storage.Open(ctx, c.cfg.Storage, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	svc := retention.NewService(stores.Memory, retention.Config{
		Interval:                  time.Duration(c.cfg.Retention.IntervalSeconds) * time.Second,
		MaxEntriesPerConversation: int(c.cfg.Retention.MaxEntries),
	}, log)

	start := time.Now()
	if err := cliui.Step(os.Stdout, "Running retention cycle", func() error {
		return svc.RunCycle(ctx)
	}); err != nil {
		return fmt.Errorf("cleanup cycle failed: %w", err)
	}

	fmt.Printf("\n  %s Cleanup finished in %s\n\n",
		cliui.SuccessMark, cliui.FormatDuration(time.Since(start)))
	return nil
}
