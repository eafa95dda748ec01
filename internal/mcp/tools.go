// ABOUTME: MCP tools for note CRUD and pin operations.
// ABOUTME: Maps the note store operations to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/jotpad/internal/models"
	"github.com/harper/jotpad/internal/selection"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// noteView is the JSON shape returned to agents.
type noteView struct {
	models.Note
	DisplayTitle string `json:"display_title"`
}

func (s *Server) view(n models.Note) noteView {
	return noteView{Note: n, DisplayTitle: models.DisplayTitle(&n, s.previewLength)}
}

func (s *Server) registerTools() {
	// add_note
	s.server.AddTool(&mcp.Tool{
		Name:        "add_note",
		Description: "Create a new note. An empty title is stored as \"Untitled\".",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content"}
			}
		}`),
	}, s.handleAddNote)

	// list_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, pinned first then most recently updated",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"pinned": {"type": "boolean", "description": "Only pinned notes"},
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListNotes)

	// get_note
	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	// update_note
	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's title or content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Note ID"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	// delete_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_notes",
		Description: "Delete notes by ID; unknown IDs are ignored",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"ids": {"type": "array", "items": {"type": "integer"}, "description": "Note IDs"}
			},
			"required": ["ids"]
		}`),
	}, s.handleDeleteNotes)

	// toggle_pin
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_pin",
		Description: "Flip the pinned state of each given note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"ids": {"type": "array", "items": {"type": "integer"}, "description": "Note IDs"}
			},
			"required": ["ids"]
		}`),
	}, s.handleTogglePin)
}

// Tool handlers.
func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return nil, err
		}
	}

	note, err := s.store.AddNote(params.Title, params.Content)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to create note: %v", err)), nil
	}

	return textResult(fmt.Sprintf("Created note %d: %s", note.ID, note.Title)), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Pinned bool `json:"pinned"`
		Limit  int  `json:"limit"`
	}
	params.Limit = 20 // default
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return nil, err
		}
	}

	views := []noteView{}
	for _, n := range s.store.GetAllSorted() {
		if params.Pinned && !n.Pinned {
			continue
		}
		if params.Limit > 0 && len(views) >= params.Limit {
			break
		}
		views = append(views, s.view(n))
	}

	data, _ := json.MarshalIndent(views, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, ok := s.store.GetNote(params.ID)
	if !ok {
		return errorResult(fmt.Sprintf("note %d not found", params.ID)), nil
	}

	data, _ := json.MarshalIndent(s.view(note), "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID      int     `json:"id"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, ok := s.store.GetNote(params.ID)
	if !ok {
		return errorResult(fmt.Sprintf("note %d not found", params.ID)), nil
	}

	title, content := note.Title, note.Content
	if params.Title != nil {
		title = *params.Title
	}
	if params.Content != nil {
		content = *params.Content
	}

	updated, ok, err := s.store.UpdateNote(params.ID, title, content)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to update note: %v", err)), nil
	}
	if !ok {
		return errorResult(fmt.Sprintf("note %d not found", params.ID)), nil
	}

	return textResult(fmt.Sprintf("Updated note %d", updated.ID)), nil
}

func (s *Server) handleDeleteNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		IDs []int `json:"ids"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteNotes(params.IDs)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to delete notes: %v", err)), nil
	}

	return textResult(fmt.Sprintf("Deleted %d notes", deleted)), nil
}

func (s *Server) handleTogglePin(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		IDs []int `json:"ids"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	sel := selection.New()
	for _, id := range params.IDs {
		if _, ok := s.store.GetNote(id); ok {
			sel.Select(id)
		}
	}
	pinned, unpinned := sel.PinSummary(s.store.IsPinned)

	toggled, err := s.store.TogglePin(params.IDs)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to toggle pin: %v", err)), nil
	}

	if toggled == 0 {
		return errorResult("no matching notes"), nil
	}
	return textResult(fmt.Sprintf("%s (%d notes)", selection.PinToast(pinned, unpinned), toggled)), nil
}
