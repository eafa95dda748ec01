// ABOUTME: Note model representing a short text note with pin state.
// ABOUTME: Provides constructor, normalization, and display helpers.

package models

import (
	"strings"
	"time"
)

// PlaceholderTitle is stored in place of an empty title.
const PlaceholderTitle = "Untitled"

// EmptyNoteTitle is displayed for a note with neither title nor content.
const EmptyNoteTitle = "Empty note"

type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Pinned    bool      `json:"pinned"`
}

// NewNote builds a normalized, unpinned note. The caller assigns the ID.
func NewNote(id int, title, content string) *Note {
	now := time.Now()
	return &Note{
		ID:        id,
		Title:     NormalizeTitle(title),
		Content:   NormalizeContent(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt, never moving it before CreatedAt.
func (n *Note) Touch() {
	now := time.Now()
	if now.Before(n.CreatedAt) {
		now = n.CreatedAt
	}
	n.UpdatedAt = now
}

// NormalizeTitle trims whitespace and substitutes the placeholder for empty input.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return PlaceholderTitle
	}
	return title
}

// NormalizeContent trims whitespace and converts CRLF line endings to LF.
func NormalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.TrimSpace(content)
}

// HasPlaceholderTitle reports whether the note has no user-given title.
func (n *Note) HasPlaceholderTitle() bool {
	return n.Title == "" || n.Title == PlaceholderTitle
}

// DisplayTitle derives the title shown in lists. Notes without a real title
// borrow the first previewLen runes of their content.
func DisplayTitle(n *Note, previewLen int) string {
	if !n.HasPlaceholderTitle() {
		return n.Title
	}
	if n.Content == "" {
		return EmptyNoteTitle
	}
	return Truncate(n.Content, previewLen)
}

// RowPreview returns the content snippet shown under a list row.
func RowPreview(n *Note, length int) string {
	return Truncate(n.Content, length)
}

// Truncate cuts s to at most n runes, appending "..." when something was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
