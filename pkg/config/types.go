package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent recall configuration stored as config.toml
// in the .recall/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version   int             `toml:"version"`
	Storage   StorageConfig   `toml:"storage"`
	API       APIConfig       `toml:"api"`
	MCP       MCPConfig       `toml:"mcp"`
	Client    ClientConfig    `toml:"client"`
	Retention RetentionConfig `toml:"retention"`
	Worker    WorkerConfig    `toml:"worker"`
	Prompt    PromptConfig    `toml:"prompt"`
}

// ClientConfig holds settings for CLI commands that connect to a running
// recall API server (e.g. recall templates). The value is a full URL
// (scheme + host + port).
type ClientConfig struct {
	APITarget string `toml:"api_target,omitempty"`
}

// StorageConfig selects the storage backend shared by the API and MCP servers.
type StorageConfig struct {
	// Driver is one of "inmemory", "sqlite", or "postgres".
	Driver      string `toml:"driver,omitempty"`
	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresURL string `toml:"postgres_url,omitempty"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// MCPConfig holds standalone MCP server settings. When the API server runs,
// the MCP handler is also mounted on the API listener under /mcp.
type MCPConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// RetentionConfig holds background cleanup settings.
type RetentionConfig struct {
	Enabled         bool `toml:"enabled,omitempty"`
	IntervalSeconds uint `toml:"interval_seconds,omitempty"`
	MaxEntries      uint `toml:"max_entries,omitempty"`
}

// WorkerConfig holds the background worker pool settings.
type WorkerConfig struct {
	Workers   uint `toml:"workers,omitempty"`
	QueueSize uint `toml:"queue_size,omitempty"`
}

// PromptConfig holds prompt subsystem settings.
type PromptConfig struct {
	SeedDefaults bool `toml:"seed_defaults,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.driver": {
		get: func(c *Config) string { return c.Storage.Driver },
		set: func(c *Config, v string) error {
			if !IsValidDriver(v) {
				return fmt.Errorf("invalid value for storage.driver: %q (available: inmemory, sqlite, postgres)", v)
			}
			c.Storage.Driver = v
			return nil
		},
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"storage.postgres_url": {
		get: func(c *Config) string { return c.Storage.PostgresURL },
		set: func(c *Config, v string) error { c.Storage.PostgresURL = v; return nil },
	},
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"mcp.listen": {
		get: func(c *Config) string { return c.MCP.Listen },
		set: func(c *Config, v string) error { c.MCP.Listen = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
	"retention.enabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.Retention.Enabled) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for retention.enabled: %w", err)
			}
			c.Retention.Enabled = b
			return nil
		},
	},
	"retention.interval_seconds": {
		get: func(c *Config) string { return uintKey(c.Retention.IntervalSeconds) },
		set: func(c *Config, v string) error {
			n, err := parseUintKey("retention.interval_seconds", v)
			if err != nil {
				return err
			}
			c.Retention.IntervalSeconds = n
			return nil
		},
	},
	"retention.max_entries": {
		get: func(c *Config) string { return uintKey(c.Retention.MaxEntries) },
		set: func(c *Config, v string) error {
			n, err := parseUintKey("retention.max_entries", v)
			if err != nil {
				return err
			}
			c.Retention.MaxEntries = n
			return nil
		},
	},
	"worker.workers": {
		get: func(c *Config) string { return uintKey(c.Worker.Workers) },
		set: func(c *Config, v string) error {
			n, err := parseUintKey("worker.workers", v)
			if err != nil {
				return err
			}
			c.Worker.Workers = n
			return nil
		},
	},
	"worker.queue_size": {
		get: func(c *Config) string { return uintKey(c.Worker.QueueSize) },
		set: func(c *Config, v string) error {
			n, err := parseUintKey("worker.queue_size", v)
			if err != nil {
				return err
			}
			c.Worker.QueueSize = n
			return nil
		},
	},
	"prompt.seed_defaults": {
		get: func(c *Config) string { return strconv.FormatBool(c.Prompt.SeedDefaults) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for prompt.seed_defaults: %w", err)
			}
			c.Prompt.SeedDefaults = b
			return nil
		},
	},
}

func uintKey(n uint) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(n), 10)
}

func parseUintKey(key, v string) (uint, error) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return uint(n), nil
}
