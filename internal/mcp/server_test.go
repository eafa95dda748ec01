// ABOUTME: Tests for the MCP tool, resource and prompt handlers.
// ABOUTME: Calls handlers directly against a temporary store.

package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/harper/jotpad/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir(), nil)
	require.NoError(t, err)
	return NewServer(st, "test", 50, nil), st
}

func call(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	res, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	return res
}

func resultText(res *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func TestAddAndGetNote(t *testing.T) {
	s, st := newTestServer(t)

	res := call(t, s.handleAddNote, `{"title": "  ", "content": "from agent"}`)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "Created note 1: Untitled")
	assert.Equal(t, 1, st.Len())

	res = call(t, s.handleGetNote, `{"id": 1}`)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), `"display_title": "from agent"`)

	res = call(t, s.handleGetNote, `{"id": 42}`)
	assert.True(t, res.IsError)
}

func TestUpdateNoteKeepsUnsetFields(t *testing.T) {
	s, st := newTestServer(t)
	n, err := st.AddNote("Title", "Body")
	require.NoError(t, err)

	res := call(t, s.handleUpdateNote, `{"id": 1, "content": "New body"}`)
	assert.False(t, res.IsError)

	got, ok := st.GetNote(n.ID)
	require.True(t, ok)
	assert.Equal(t, "Title", got.Title)
	assert.Equal(t, "New body", got.Content)
}

func TestListDeleteAndPin(t *testing.T) {
	s, st := newTestServer(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := st.AddNote(title, "")
		require.NoError(t, err)
	}

	res := call(t, s.handleTogglePin, `{"ids": [2]}`)
	assert.Equal(t, "Notes pinned (1 notes)", resultText(res))

	res = call(t, s.handleListNotes, `{"pinned": true}`)
	var views []noteView
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &views))
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].ID)

	res = call(t, s.handleDeleteNotes, `{"ids": [1, 3, 99]}`)
	assert.Equal(t, "Deleted 2 notes", resultText(res))
	assert.Equal(t, 1, st.Len())

	res = call(t, s.handleTogglePin, `{"ids": [99]}`)
	assert.True(t, res.IsError)
}

func TestReadResource(t *testing.T) {
	s, st := newTestServer(t)
	_, err := st.AddNote("Shopping", "eggs")
	require.NoError(t, err)

	res, err := s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "jotpad://note/1"},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "# Shopping")
	assert.Contains(t, res.Contents[0].Text, "eggs")

	_, err = s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "jotpad://note/7"},
	})
	assert.Error(t, err)
}

func TestSummarizePromptRequiresID(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.getSummarizeNotePrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{}},
	})
	assert.Error(t, err)

	res, err := s.getSummarizeNotePrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Arguments: map[string]string{"note_id": "3"}},
	})
	require.NoError(t, err)
	assert.Len(t, res.Messages, 1)
}
