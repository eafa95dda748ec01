// ABOUTME: Edit session holding the in-progress title/content buffers.
// ABOUTME: Detects unsaved changes and commits through the note store.

package editor

import (
	"errors"

	"github.com/harper/jotpad/internal/models"
)

// ErrTargetGone is returned by Commit when the edited note no longer exists.
var ErrTargetGone = errors.New("note being edited no longer exists")

// NoteWriter is the part of the store a session commits through.
type NoteWriter interface {
	AddNote(title, content string) (models.Note, error)
	UpdateNote(id int, title, content string) (models.Note, bool, error)
}

// Session edits one note, or a new one when the target id is zero.
type Session struct {
	target int

	title   string
	content string

	baseTitle   string
	baseContent string
}

// Start seeds a session from note, or an empty new-note session when nil.
func Start(note *models.Note) *Session {
	s := &Session{}
	if note != nil {
		s.target = note.ID
		s.title = note.Title
		s.content = note.Content
	}
	s.baseTitle, s.baseContent = s.title, s.content
	return s
}

func (s *Session) IsNew() bool     { return s.target == 0 }
func (s *Session) Target() int     { return s.target }
func (s *Session) Title() string   { return s.title }
func (s *Session) Content() string { return s.content }

func (s *Session) SetTitle(title string)     { s.title = title }
func (s *Session) SetContent(content string) { s.content = content }

// FocusTitle clears a placeholder title so the user can type a real one.
func (s *Session) FocusTitle() {
	if s.title == models.PlaceholderTitle {
		s.title = ""
	}
}

// IsDirty reports whether either buffer differs from the starting snapshot.
func (s *Session) IsDirty() bool {
	return s.title != s.baseTitle || s.content != s.baseContent
}

// Commit saves the buffers: a new note is added, an existing one updated.
func (s *Session) Commit(w NoteWriter) (models.Note, error) {
	if s.IsNew() {
		return w.AddNote(s.title, s.content)
	}
	note, ok, err := w.UpdateNote(s.target, s.title, s.content)
	if err != nil {
		return models.Note{}, err
	}
	if !ok {
		return models.Note{}, ErrTargetGone
	}
	return note, nil
}

// Discard drops the buffers without touching the store. Callers decide
// whether to confirm first by checking IsDirty.
func (s *Session) Discard() {
	s.title, s.content = s.baseTitle, s.baseContent
}
