package config

const (
	// DriverInMemory selects the in-process map-backed store.
	DriverInMemory = "inmemory"

	// DriverSQLite selects SQLite-backed storage.
	DriverSQLite = "sqlite"

	// DriverPostgres selects PostgreSQL-backed storage.
	DriverPostgres = "postgres"

	defaultStorageDriver = DriverInMemory

	defaultAPIListen = ":8000"
	defaultMCPListen = ":8001"

	defaultClientAPITarget = "http://localhost:8000"

	defaultRetentionInterval   = 3600
	defaultRetentionMaxEntries = 1000

	defaultWorkers   = 3
	defaultQueueSize = 256
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Driver: defaultStorageDriver,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		MCP: MCPConfig{
			Listen: defaultMCPListen,
		},
		Client: ClientConfig{
			APITarget: defaultClientAPITarget,
		},
		Retention: RetentionConfig{
			Enabled:         true,
			IntervalSeconds: defaultRetentionInterval,
			MaxEntries:      defaultRetentionMaxEntries,
		},
		Worker: WorkerConfig{
			Workers:   defaultWorkers,
			QueueSize: defaultQueueSize,
		},
		Prompt: PromptConfig{
			SeedDefaults: true,
		},
	}
}

// IsValidDriver reports whether name is a recognized storage driver.
func IsValidDriver(name string) bool {
	switch name {
	case DriverInMemory, DriverSQLite, DriverPostgres:
		return true
	}
	return false
}
