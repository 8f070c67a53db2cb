// Package api provides the HTTP API server for the recall memory and prompt
// system.
package api

import "net/http"

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8000")
	ListenAddr string

	// MCPHandler, when non-nil, is mounted on the same listener under /mcp
	// so a single process serves both the REST and MCP surfaces.
	MCPHandler http.Handler
}
