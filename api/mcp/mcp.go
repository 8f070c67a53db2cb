// Package mcp provides an MCP (Model Context Protocol) server for the recall system.
package mcp

import (
	"errors"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/utils"
	"github.com/recallhq/recall/pkg/worker"
)

type Config struct {
	// Memories handles entry storage and retrieval
	Memories *memory.Manager

	// Graph handles relationship edges between entries
	Graph *memory.Graph

	// Contexts assembles formatted context text from stored entries
	Contexts *memory.ContextBuilder

	// Prompts enables the prompt tools when set (optional)
	Prompts *prompt.Service

	// Pool records template usage off the request path (optional)
	Pool *worker.Pool

	// Noop for empty MCP server
	Noop bool

	// Logger is the configured zap logger
	Logger *zap.Logger
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the memory and prompt tools.
func NewServer(c Config) (*Server, error) {
	s := &Server{
		config: c,
	}

	// Create the MCP server
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "recall",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	if c.Noop {
		// return the empty MCP server with no tools configured
		// if the noop flag is set (i.e., MCP capabilities are disabled)
		s.mcpServer = mcpServer
		return s, nil
	}

	if c.Memories == nil {
		return nil, errors.New("memory manager is required")
	}
	if c.Graph == nil {
		return nil, errors.New("memory graph is required")
	}
	if c.Contexts == nil {
		return nil, errors.New("context builder is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	// Add tools
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        memoryStoreToolName,
		Description: memoryStoreDescription,
	}, s.handleMemoryStore)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        memoryRetrieveToolName,
		Description: memoryRetrieveDescription,
	}, s.handleMemoryRetrieve)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        memoryRelateToolName,
		Description: memoryRelateDescription,
	}, s.handleMemoryRelate)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        memoryContextToolName,
		Description: memoryContextDescription,
	}, s.handleMemoryContext)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        memoryClearToolName,
		Description: memoryClearDescription,
	}, s.handleMemoryClear)

	// Add prompt tools if a prompt service is configured
	if c.Prompts != nil {
		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        promptRenderToolName,
			Description: promptRenderDescription,
		}, s.handlePromptRender)

		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        promptListToolName,
			Description: promptListDescription,
		}, s.handlePromptList)
	}

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}
