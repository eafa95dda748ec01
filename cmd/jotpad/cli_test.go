// ABOUTME: In-process tests for the jotpad command line.
// ABOUTME: Runs the root command against a temporary data directory.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/jotpad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type env struct {
	dataDir    string
	configPath string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	return &env{
		dataDir:    filepath.Join(dir, "data"),
		configPath: filepath.Join(dir, "config.toml"),
	}
}

func (e *env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", e.configPath, "--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func (e *env) open(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(e.dataDir, nil)
	require.NoError(t, err)
	return st
}

func TestAddListShowDelete(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "add", "Test Note", "--content", "Test content here")
	assert.Contains(t, out, "Created note 1")

	out = e.mustRun(t, "list")
	assert.Contains(t, out, "Test Note")
	assert.Contains(t, out, "Test content here")

	out = e.mustRun(t, "show", "1", "--raw")
	assert.Contains(t, out, "Test Note")
	assert.Contains(t, out, "Test content here")

	out = e.mustRun(t, "rm", "1", "--force")
	assert.Contains(t, out, "Deleted 1 of 1 notes")

	out = e.mustRun(t, "list")
	assert.Contains(t, out, "No notes yet")
}

func TestListEmpty(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "list")
	assert.Contains(t, out, "No notes yet")
}

func TestAddUntitled(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "--content", "body only")

	note, ok := e.open(t).GetNote(1)
	require.True(t, ok)
	assert.Equal(t, "Untitled", note.Title)
	assert.Equal(t, "body only", note.Content)
}

func TestAddFromFile(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "body.md")
	require.NoError(t, os.WriteFile(path, []byte("# From file"), 0600))

	e.mustRun(t, "add", "Filed", "--file", path)
	note, ok := e.open(t).GetNote(1)
	require.True(t, ok)
	assert.Equal(t, "# From file", note.Content)
}

func TestShowUnknownNote(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "show", "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = e.run(t, "", "show", "abc")
	assert.Error(t, err)
}

func TestRmPrompt(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Keep me", "--content", "x")

	out, err := e.run(t, "n\n", "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, 1, e.open(t).Len())

	out, err = e.run(t, "y\n", "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 of 1 notes")
	assert.Equal(t, 0, e.open(t).Len())
}

func TestRmSkipsUnknownIDs(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "One", "--content", "1")
	e.mustRun(t, "add", "Two", "--content", "2")

	out := e.mustRun(t, "rm", "1", "99", "--force")
	assert.Contains(t, out, "Deleted 1 of 2 notes")
	assert.Equal(t, 1, e.open(t).Len())
}

func TestEditFlags(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Draft", "--content", "first")

	out := e.mustRun(t, "edit", "1", "--content", "first")
	assert.Contains(t, out, "No changes made.")

	out = e.mustRun(t, "edit", "1", "--title", "Final", "--content", "second")
	assert.Contains(t, out, "Updated note 1")

	note, ok := e.open(t).GetNote(1)
	require.True(t, ok)
	assert.Equal(t, "Final", note.Title)
	assert.Equal(t, "second", note.Content)
}

func TestPinToggle(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Older", "--content", "a")
	e.mustRun(t, "add", "Newer", "--content", "b")

	out := e.mustRun(t, "pin", "1")
	assert.Contains(t, out, "Notes pinned")

	notes := e.open(t).GetAllSorted()
	require.Len(t, notes, 2)
	assert.Equal(t, 1, notes[0].ID)
	assert.True(t, notes[0].Pinned)

	out = e.mustRun(t, "pin", "1", "2")
	assert.Contains(t, out, "Pin state changed")

	out = e.mustRun(t, "pin", "2")
	assert.Contains(t, out, "Notes unpinned")

	_, err := e.run(t, "", "pin", "99")
	assert.Error(t, err)
}

func TestListPinnedAndLimit(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Alpha", "--content", "a")
	e.mustRun(t, "add", "Beta", "--content", "b")
	e.mustRun(t, "add", "Gamma", "--content", "c")
	e.mustRun(t, "pin", "1")

	out := e.mustRun(t, "list", "--pinned")
	assert.Contains(t, out, "Alpha")
	assert.NotContains(t, out, "Beta")

	out = e.mustRun(t, "list", "--limit", "1")
	assert.Contains(t, out, "Alpha")
	assert.NotContains(t, out, "Gamma")
}

func TestExportImportJSON(t *testing.T) {
	src := newEnv(t)
	src.mustRun(t, "add", "Exported", "--content", "travels")
	src.mustRun(t, "pin", "1")

	path := filepath.Join(t.TempDir(), "notes.json")
	src.mustRun(t, "export", "--output", path)

	dst := newEnv(t)
	out := dst.mustRun(t, "import", path)
	assert.Contains(t, out, "Imported 1 notes")

	notes := dst.open(t).GetAllSorted()
	require.Len(t, notes, 1)
	assert.Equal(t, "Exported", notes[0].Title)
	assert.True(t, notes[0].Pinned)

	_, err := dst.run(t, "", "import", path)
	assert.Error(t, err)
}

func TestExportJSONToStdout(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Stdout", "--content", "x")

	out := e.mustRun(t, "export")
	assert.Contains(t, out, `"version": "1.0"`)
	assert.Contains(t, out, `"title": "Stdout"`)
}

func TestExportMarkdown(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Markdown Note", "--content", "body")

	dir := filepath.Join(t.TempDir(), "md")
	out := e.mustRun(t, "export", "--format", "md", "--output", dir)
	assert.Contains(t, out, "Exported 1 notes")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = e.run(t, "", "export", "--format", "csv")
	assert.Error(t, err)
}

func TestWelcome(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "welcome")
	assert.Contains(t, out, "Welcome screen: on")

	e.mustRun(t, "welcome", "off")
	assert.False(t, e.open(t).ShowWelcome())

	out = e.mustRun(t, "welcome")
	assert.Contains(t, out, "Welcome screen: off")

	_, err := e.run(t, "", "welcome", "maybe")
	assert.Error(t, err)
}

func TestConfigInitAndPath(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "config", "path")
	assert.Equal(t, e.configPath, strings.TrimSpace(out))

	e.mustRun(t, "config", "init")
	_, err := os.Stat(e.configPath)
	require.NoError(t, err)

	_, err = e.run(t, "", "config", "init")
	assert.Error(t, err)

	e.mustRun(t, "config", "init", "--force")
}

func TestMalformedConfig(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.configPath, []byte("data_dir = ["), 0600))

	_, err := e.run(t, "", "list")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "version")
	assert.Contains(t, out, "jotpad dev")
}

func TestParseBuffer(t *testing.T) {
	title, content := parseBuffer("\nTitle line\n\nbody\nmore\n")
	assert.Equal(t, "Title line", title)
	assert.Equal(t, "body\nmore", content)

	title, content = parseBuffer(formatBuffer("T", "C"))
	assert.Equal(t, "T", title)
	assert.Equal(t, "C", content)
}

func TestRmSingleUnknownForced(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "rm", "7", "--force")
	assert.Contains(t, out, "No matching notes.")
}
