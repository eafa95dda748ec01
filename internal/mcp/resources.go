// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to access note content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "jotpad://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var id int
	if _, err := fmt.Sscanf(req.Params.URI, noteURIPrefix+"%d", &id); err != nil {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	note, ok := s.store.GetNote(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", note.Title))
	if note.Pinned {
		sb.WriteString("**Pinned**\n\n")
	}
	sb.WriteString(fmt.Sprintf("_Updated %s_\n\n", note.UpdatedAt.Format("2006-01-02 15:04")))
	sb.WriteString(note.Content)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     sb.String(),
			},
		},
	}, nil
}
