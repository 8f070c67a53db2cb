package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g., --sqlite
// on both "recall serve" and "recall serve api" and "recall cleanup").
type Flag struct {
	// Name is the long flag name (e.g. "sqlite").
	Name string

	// Shorthand is the one-letter short flag (e.g. "s"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "storage.sqlite_path").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddStringFlag, AddUintFlag,
// and BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagAPIListen         = "api-listen"
	FlagMCPListen         = "mcp-listen"
	FlagDriver            = "driver"
	FlagSQLite            = "sqlite"
	FlagPostgres          = "postgres"
	FlagRetentionInterval = "retention-interval"
	FlagRetentionMax      = "retention-max"
	FlagWorkers           = "workers"
	FlagQueueSize         = "queue-size"

	// Standalone subcommand variants use "listen" as the flag name
	// but bind to different viper keys depending on the service.
	FlagAPIListenStandalone = "api-listen-standalone"
	FlagMCPListenStandalone = "mcp-listen-standalone"
)

// ServeFlags is the flag registry shared by the serve command family.
var ServeFlags = FlagSet{
	FlagAPIListen: {
		Name:        "api-listen",
		Shorthand:   "a",
		ViperKey:    "api.listen",
		Description: "Address for the HTTP API server to listen on",
	},
	FlagMCPListen: {
		Name:        "mcp-listen",
		Shorthand:   "m",
		ViperKey:    "mcp.listen",
		Description: "Address for the standalone MCP server to listen on",
	},
	FlagDriver: {
		Name:        "driver",
		ViperKey:    "storage.driver",
		Description: "Storage driver (inmemory, sqlite, postgres)",
	},
	FlagSQLite: {
		Name:        "sqlite",
		Shorthand:   "s",
		ViperKey:    "storage.sqlite_path",
		Description: "Path to the SQLite database file",
	},
	FlagPostgres: {
		Name:        "postgres",
		ViperKey:    "storage.postgres_url",
		Description: "PostgreSQL connection URL",
	},
	FlagRetentionInterval: {
		Name:        "retention-interval",
		ViperKey:    "retention.interval_seconds",
		Description: "Seconds between background cleanup cycles",
	},
	FlagRetentionMax: {
		Name:        "retention-max",
		ViperKey:    "retention.max_entries",
		Description: "Maximum entries kept per conversation",
	},
	FlagWorkers: {
		Name:        "workers",
		ViperKey:    "worker.workers",
		Description: "Number of background workers",
	},
	FlagQueueSize: {
		Name:        "queue-size",
		ViperKey:    "worker.queue_size",
		Description: "Background job queue capacity",
	},
	FlagAPIListenStandalone: {
		Name:        "listen",
		Shorthand:   "l",
		ViperKey:    "api.listen",
		Description: "Address for the HTTP API server to listen on",
	},
	FlagMCPListenStandalone: {
		Name:        "listen",
		Shorthand:   "l",
		ViperKey:    "mcp.listen",
		Description: "Address for the MCP server to listen on",
	},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().StringVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddUintFlag registers a uint flag on cmd from the given FlagSet.
func AddUintFlag(cmd *cobra.Command, fs FlagSet, registryKey string, target *uint) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultUint(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().UintVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().UintVar(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	v := viper.New()
	setViperDefaults(v)
	return v.GetString(viperKey)
}

// defaultUint returns the default uint value for a viper key from NewDefaultConfig.
func defaultUint(viperKey string) uint {
	v := viper.New()
	setViperDefaults(v)
	return v.GetUint(viperKey)
}
