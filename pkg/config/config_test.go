package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Configer config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadConfig", func() {
		It("returns default config when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())

			defaults := config.NewDefaultConfig()
			Expect(cfg.Version).To(Equal(defaults.Version))
			Expect(cfg.Storage.Driver).To(Equal(defaults.Storage.Driver))
			Expect(cfg.API.Listen).To(Equal(defaults.API.Listen))
			Expect(cfg.MCP.Listen).To(Equal(defaults.MCP.Listen))
			Expect(cfg.Retention.IntervalSeconds).To(Equal(defaults.Retention.IntervalSeconds))
			Expect(cfg.Retention.MaxEntries).To(Equal(defaults.Retention.MaxEntries))
			Expect(cfg.Worker.Workers).To(Equal(defaults.Worker.Workers))
			Expect(cfg.Worker.QueueSize).To(Equal(defaults.Worker.QueueSize))
		})

		It("loads a valid config file and merges defaults into unset fields", func() {
			data := `version = 0

[storage]
driver = "sqlite"
sqlite_path = "/tmp/recall.db"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Version).To(Equal(0))
			Expect(cfg.Storage.Driver).To(Equal("sqlite"))
			Expect(cfg.Storage.SQLitePath).To(Equal("/tmp/recall.db"))
			Expect(cfg.API.Listen).To(Equal(":8000"))
			Expect(cfg.Retention.MaxEntries).To(Equal(uint(1000)))
		})

		It("loads all config fields", func() {
			data := `version = 0

[storage]
driver = "postgres"
postgres_url = "postgres://localhost:5432/recall"

[api]
listen = ":9090"

[mcp]
listen = ":9091"

[retention]
enabled = true
interval_seconds = 600
max_entries = 500

[worker]
workers = 5
queue_size = 1024

[prompt]
seed_defaults = true
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Version).To(Equal(0))
			Expect(cfg.Storage.Driver).To(Equal("postgres"))
			Expect(cfg.Storage.PostgresURL).To(Equal("postgres://localhost:5432/recall"))
			Expect(cfg.API.Listen).To(Equal(":9090"))
			Expect(cfg.MCP.Listen).To(Equal(":9091"))
			Expect(cfg.Retention.Enabled).To(BeTrue())
			Expect(cfg.Retention.IntervalSeconds).To(Equal(uint(600)))
			Expect(cfg.Retention.MaxEntries).To(Equal(uint(500)))
			Expect(cfg.Worker.Workers).To(Equal(uint(5)))
			Expect(cfg.Worker.QueueSize).To(Equal(uint(1024)))
			Expect(cfg.Prompt.SeedDefaults).To(BeTrue())
		})

		It("returns error for malformed TOML", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid toml [[["), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(HaveOccurred())
		})

		It("returns error for unsupported config version", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("version = 99"), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SaveConfig", func() {
		It("round-trips a config through disk", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg := config.NewDefaultConfig()
			cfg.Storage.Driver = "sqlite"
			cfg.Storage.SQLitePath = "/data/recall.db"
			cfg.API.Listen = ":7000"

			Expect(c.SaveConfig(cfg)).To(Succeed())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Storage.Driver).To(Equal("sqlite"))
			Expect(loaded.Storage.SQLitePath).To(Equal("/data/recall.db"))
			Expect(loaded.API.Listen).To(Equal(":7000"))
		})

		It("returns error for nil config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SaveConfig(nil)).NotTo(Succeed())
		})
	})

	Describe("SetConfigValue and GetConfigValue", func() {
		It("sets and gets a string key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.SetConfigValue("api.listen", ":6000")).To(Succeed())

			got, err := c.GetConfigValue("api.listen")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(":6000"))
		})

		It("rejects an invalid storage driver", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SetConfigValue("storage.driver", "dynamo")).NotTo(Succeed())
		})

		It("rejects a non-numeric uint key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SetConfigValue("retention.max_entries", "lots")).NotTo(Succeed())
		})

		It("rejects unknown keys", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SetConfigValue("nope.nope", "x")).NotTo(Succeed())

			_, err = c.GetConfigValue("nope.nope")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ValidConfigKeys", func() {
		It("lists every supported key", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(ContainElements(
				"storage.driver",
				"storage.sqlite_path",
				"storage.postgres_url",
				"api.listen",
				"mcp.listen",
				"client.api_target",
				"retention.enabled",
				"retention.interval_seconds",
				"retention.max_entries",
				"worker.workers",
				"worker.queue_size",
				"prompt.seed_defaults",
			))

			for _, k := range keys {
				Expect(config.IsValidConfigKey(k)).To(BeTrue())
			}
		})
	})

	Describe("InitViper", func() {
		It("applies defaults when no config file exists", func() {
			v, err := config.InitViper(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg := config.FromViper(v)
			defaults := config.NewDefaultConfig()
			Expect(cfg.Storage.Driver).To(Equal(defaults.Storage.Driver))
			Expect(cfg.API.Listen).To(Equal(defaults.API.Listen))
			Expect(cfg.Retention.Enabled).To(BeTrue())
			Expect(cfg.Prompt.SeedDefaults).To(BeTrue())
		})

		It("prefers file values over defaults", func() {
			data := "[api]\nlisten = \":9999\"\n"
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			v, err := config.InitViper(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetString("api.listen")).To(Equal(":9999"))
		})

		It("prefers environment variables over file values", func() {
			data := "[api]\nlisten = \":9999\"\n"
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			Expect(os.Setenv("RECALL_API_LISTEN", ":4444")).To(Succeed())
			DeferCleanup(func() { os.Unsetenv("RECALL_API_LISTEN") })

			v, err := config.InitViper(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.GetString("api.listen")).To(Equal(":4444"))
		})
	})
})
