package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/worker"
)

// Services are the injected domain services the API server fronts.
// All fields except Pool are required.
type Services struct {
	Memories *memory.Manager
	Graph    *memory.Graph
	Contexts *memory.ContextBuilder

	// Prompts is optional; prompt routes return 503 when nil.
	Prompts *prompt.Service

	// Pool is optional; template usage recording is skipped when nil.
	Pool *worker.Pool
}

// Server is the API server for managing and querying the recall system
type Server struct {
	config Config
	svc    Services
	logger *zap.Logger
	app    *fiber.App
}

// NewServer creates a new API server.
// The services are injected to allow sharing with other components
// (e.g., the MCP server when both run in one process).
func NewServer(config Config, svc Services, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		svc:    svc,
		logger: logger,
		app:    app,
	}

	app.Get("/ping", s.handlePing)

	// Static segments register before parameterized ones so /memory/search
	// is not captured by /memory/:conversation.
	app.Get("/memory/search", s.handleSearchByTags)
	app.Post("/memory", s.handleStoreMemory)
	app.Get("/memory/:conversation", s.handleRetrieveMemory)
	app.Delete("/memory/:conversation", s.handleClearMemory)
	app.Get("/memory/:conversation/context", s.handleBuildContext)
	app.Post("/memory/relate", s.handleRelate)
	app.Get("/memory/entry/:id/related", s.handleRelatedEntries)
	app.Get("/memory/entry/:id/relationships", s.handleRelationships)

	app.Post("/templates", s.handleCreateTemplate)
	app.Get("/templates", s.handleListTemplates)
	app.Get("/templates/:name", s.handleGetTemplate)
	app.Delete("/templates/:name", s.handleDeleteTemplate)
	app.Post("/templates/:name/render", s.handleRenderTemplate)
	app.Get("/categories", s.handleCategories)
	app.Get("/stats/usage", s.handleUsageStats)
	app.Get("/configurations", s.handleListConfigs)
	app.Post("/configurations", s.handleCreateConfig)

	if config.MCPHandler != nil {
		mcpHandler := adaptor.HTTPHandler(config.MCPHandler)
		app.All("/mcp", mcpHandler)
		app.All("/mcp/*", mcpHandler)
	}

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
