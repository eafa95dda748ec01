// ABOUTME: MCP server for jotpad integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts backed by the note store.

package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harper/jotpad/internal/logging"
	"github.com/harper/jotpad/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	store  *store.Store
	logger *log.Logger

	previewLength int
}

func NewServer(st *store.Store, version string, previewLength int, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{store: st, logger: logger, previewLength: previewLength}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "jotpad",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", "data_dir", s.store.Dir())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	res := textResult(text)
	res.IsError = true
	return res
}
