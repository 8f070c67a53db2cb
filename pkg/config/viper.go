package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/recallhq/recall/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the RECALL_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (RECALL_API_LISTEN, RECALL_STORAGE_DRIVER, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery via dotdir resolution.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: RECALL_API_LISTEN, RECALL_STORAGE_SQLITE_PATH, etc.
	v.SetEnvPrefix("RECALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// FromViper materializes a typed Config from the resolved viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Version: v.GetInt("version"),
		Storage: StorageConfig{
			Driver:      v.GetString("storage.driver"),
			SQLitePath:  v.GetString("storage.sqlite_path"),
			PostgresURL: v.GetString("storage.postgres_url"),
		},
		API: APIConfig{
			Listen: v.GetString("api.listen"),
		},
		MCP: MCPConfig{
			Listen: v.GetString("mcp.listen"),
		},
		Client: ClientConfig{
			APITarget: v.GetString("client.api_target"),
		},
		Retention: RetentionConfig{
			Enabled:         v.GetBool("retention.enabled"),
			IntervalSeconds: v.GetUint("retention.interval_seconds"),
			MaxEntries:      v.GetUint("retention.max_entries"),
		},
		Worker: WorkerConfig{
			Workers:   v.GetUint("worker.workers"),
			QueueSize: v.GetUint("worker.queue_size"),
		},
		Prompt: PromptConfig{
			SeedDefaults: v.GetBool("prompt.seed_defaults"),
		},
	}
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Storage
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)
	v.SetDefault("storage.postgres_url", d.Storage.PostgresURL)

	// API
	v.SetDefault("api.listen", d.API.Listen)

	// MCP
	v.SetDefault("mcp.listen", d.MCP.Listen)

	// Client
	v.SetDefault("client.api_target", d.Client.APITarget)

	// Retention
	v.SetDefault("retention.enabled", d.Retention.Enabled)
	v.SetDefault("retention.interval_seconds", d.Retention.IntervalSeconds)
	v.SetDefault("retention.max_entries", d.Retention.MaxEntries)

	// Worker
	v.SetDefault("worker.workers", d.Worker.Workers)
	v.SetDefault("worker.queue_size", d.Worker.QueueSize)

	// Prompt
	v.SetDefault("prompt.seed_defaults", d.Prompt.SeedDefaults)
}
