// ABOUTME: Tests for Note model constructor and helpers.
// ABOUTME: Validates normalization, timestamps, and display derivation.

package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	note := NewNote(7, "  Hi  ", "  body ")

	if note.ID != 7 {
		t.Errorf("expected ID 7, got %d", note.ID)
	}
	if note.Title != "Hi" {
		t.Errorf("expected title %q, got %q", "Hi", note.Title)
	}
	if note.Content != "body" {
		t.Errorf("expected content %q, got %q", "body", note.Content)
	}
	if note.Pinned {
		t.Error("expected new note to be unpinned")
	}
	if note.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if !note.UpdatedAt.Equal(note.CreatedAt) {
		t.Error("expected UpdatedAt to equal CreatedAt")
	}
}

func TestNewNotePlaceholderTitle(t *testing.T) {
	note := NewNote(1, " ", "x")

	if note.Title != PlaceholderTitle {
		t.Errorf("expected placeholder title, got %q", note.Title)
	}
}

func TestNoteTouch(t *testing.T) {
	note := NewNote(1, "Test", "Content")
	originalUpdated := note.UpdatedAt

	time.Sleep(time.Millisecond)
	note.Touch()

	if !note.UpdatedAt.After(originalUpdated) {
		t.Error("expected UpdatedAt to be updated")
	}
}

func TestNoteTouchNeverBeforeCreated(t *testing.T) {
	note := NewNote(1, "Test", "Content")
	note.CreatedAt = time.Now().Add(time.Hour)

	note.Touch()

	if note.UpdatedAt.Before(note.CreatedAt) {
		t.Error("expected UpdatedAt >= CreatedAt")
	}
}

func TestDisplayTitle(t *testing.T) {
	long := strings.Repeat("a", 60)

	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{"real title", "Groceries", "milk", "Groceries"},
		{"placeholder borrows content", PlaceholderTitle, "milk", "milk"},
		{"empty title borrows content", "", "milk", "milk"},
		{"long content truncated", PlaceholderTitle, long, strings.Repeat("a", 50) + "..."},
		{"nothing at all", PlaceholderTitle, "", EmptyNoteTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Note{Title: tt.title, Content: tt.content}
			if got := DisplayTitle(n, 50); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	got := Truncate("привет мир", 6)
	if got != "привет..." {
		t.Errorf("expected rune-based cut, got %q", got)
	}
	if Truncate("short", 10) != "short" {
		t.Error("expected short string unchanged")
	}
}

func TestDefaultSettings(t *testing.T) {
	if !DefaultSettings().ShowWelcome {
		t.Error("expected ShowWelcome to default to true")
	}
}

func TestNormalizeContentLineEndings(t *testing.T) {
	got := NormalizeContent("  first\r\nsecond\r\n\tthird\r\n")
	if got != "first\nsecond\n\tthird" {
		t.Errorf("unexpected content %q", got)
	}
}
