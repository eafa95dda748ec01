// ABOUTME: Edit screen with a title input and a content area.
// ABOUTME: Mirrors both fields into an edit session for dirty checks and commit.

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/jotpad/internal/editor"
	"github.com/harper/jotpad/internal/models"
)

type editField int

const (
	fieldTitle editField = iota
	fieldContent
)

type editScreen struct {
	session *editor.Session
	title   textinput.Model
	content textarea.Model
	focus   editField
}

// newEditScreen opens note for editing, or a blank note when nil. New notes
// start in the title field, existing ones in the content.
func newEditScreen(note *models.Note, width, height int) *editScreen {
	s := &editScreen{session: editor.Start(note)}

	s.title = textinput.New()
	s.title.Placeholder = "Title"
	s.title.Prompt = ""
	s.title.CharLimit = 0
	s.title.SetValue(s.session.Title())

	s.content = textarea.New()
	s.content.Placeholder = "Write your note..."
	s.content.ShowLineNumbers = false
	s.content.CharLimit = 0
	s.content.Prompt = ""
	s.content.SetValue(s.session.Content())

	s.resize(width, height)
	if s.session.IsNew() {
		s.focusTitle()
	} else {
		s.focusContent()
	}
	return s
}

func (s *editScreen) resize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	s.title.Width = width - 4
	s.content.SetWidth(width - 2)
	s.content.SetHeight(max(height-10, 3))
}

// focusTitle clears a placeholder title as the field gains focus.
func (s *editScreen) focusTitle() {
	s.focus = fieldTitle
	s.session.FocusTitle()
	s.title.SetValue(s.session.Title())
	s.title.CursorEnd()
	s.content.Blur()
	s.title.Focus()
}

func (s *editScreen) focusContent() {
	s.focus = fieldContent
	s.title.Blur()
	s.content.Focus()
}

func (s *editScreen) switchField() {
	if s.focus == fieldTitle {
		s.focusContent()
	} else {
		s.focusTitle()
	}
}

// Update passes a message to the focused field and copies its value into
// the session only when the message changed it.
func (s *editScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == fieldTitle {
		before := s.title.Value()
		s.title, cmd = s.title.Update(msg)
		if after := s.title.Value(); after != before {
			s.session.SetTitle(after)
		}
	} else {
		before := s.content.Value()
		s.content, cmd = s.content.Update(msg)
		if after := s.content.Value(); after != before {
			s.session.SetContent(after)
		}
	}
	return cmd
}

// HandleBack leaves directly when nothing changed and asks first otherwise.
func (s *editScreen) HandleBack() backAction {
	if s.session.IsDirty() {
		return backConfirmDiscard
	}
	return backToMain
}

func (s *editScreen) View() string {
	var sb strings.Builder

	heading := "Edit note"
	if s.session.IsNew() {
		heading = "New note"
	}
	sb.WriteString(titleStyle.Render(heading))
	if s.session.IsDirty() {
		sb.WriteString(mutedStyle.Render("  (modified)"))
	}
	sb.WriteString("\n\n")

	titleLabel, contentLabel := labelStyle, labelStyle
	if s.focus == fieldTitle {
		titleLabel = focusedLabelStyle
	} else {
		contentLabel = focusedLabelStyle
	}

	sb.WriteString(titleLabel.Render("Title") + "\n")
	sb.WriteString(s.title.View() + "\n\n")
	sb.WriteString(contentLabel.Render("Content") + "\n")
	sb.WriteString(s.content.View() + "\n")
	return sb.String()
}
