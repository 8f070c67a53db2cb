// Package storage selects and opens the configured storage backend.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/config"
	"github.com/recallhq/recall/pkg/dotdir"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
	"github.com/recallhq/recall/pkg/storage/postgres"
	"github.com/recallhq/recall/pkg/storage/sqlite"
)

// Stores bundles the memory and prompt stores opened from one backend.
// Both share a single underlying connection; Close releases it once.
type Stores struct {
	Memory  memory.Store
	Prompts prompt.Store
}

// Close releases the underlying backend connection.
func (s *Stores) Close() error {
	return s.Memory.Close()
}

// Open creates the stores selected by cfg.Driver. An empty driver name
// selects the in-memory backend. For SQLite with no explicit path, the
// default database inside the .recall/ directory is used.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Stores, error) {
	switch cfg.Driver {
	case "", config.DriverInMemory:
		logger.Info("using in-memory storage")
		return &Stores{
			Memory:  inmemory.NewDriver(),
			Prompts: inmemory.NewPromptStore(),
		}, nil

	case config.DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			var err error
			path, err = dotdir.NewManager().DefaultDBPath("")
			if err != nil {
				return nil, fmt.Errorf("resolving default sqlite path: %w", err)
			}
		}

		driver, err := sqlite.NewDriver(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}

		logger.Info("using SQLite storage", zap.String("path", path))
		return &Stores{
			Memory:  driver,
			Prompts: driver.PromptStore(),
		}, nil

	case config.DriverPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("storage.postgres_url is required for the postgres driver")
		}

		driver, err := postgres.NewDriver(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("opening postgres storage: %w", err)
		}

		logger.Info("using PostgreSQL storage")
		return &Stores{
			Memory:  driver,
			Prompts: driver.PromptStore(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q (available: inmemory, sqlite, postgres)", cfg.Driver)
	}
}
