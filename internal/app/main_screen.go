// ABOUTME: Main screen listing notes with cursor, selection and pin markers.
// ABOUTME: Reads from the store and keeps the selection in step with it.

package app

import (
	"fmt"
	"strings"

	"github.com/harper/jotpad/internal/models"
	"github.com/harper/jotpad/internal/selection"
	"github.com/harper/jotpad/internal/store"
	"github.com/harper/jotpad/internal/ui"
)

const emptyListText = "No notes yet. Press n to create your first note."

type mainScreen struct {
	notes  []models.Note
	cursor int
	sel    *selection.Controller

	previewLength    int
	rowPreviewLength int
}

func newMainScreen(previewLength, rowPreviewLength int) *mainScreen {
	return &mainScreen{
		sel:              selection.New(),
		previewLength:    previewLength,
		rowPreviewLength: rowPreviewLength,
	}
}

// refresh re-reads the sorted list and drops selected ids that are gone.
func (s *mainScreen) refresh(st *store.Store) {
	s.notes = st.GetAllSorted()
	s.sel.Prune(func(id int) bool {
		_, ok := st.GetNote(id)
		return ok
	})
	s.cursor = min(s.cursor, max(len(s.notes)-1, 0))
}

// focus moves the cursor onto id when it is listed.
func (s *mainScreen) focus(id int) {
	for i, n := range s.notes {
		if n.ID == id {
			s.cursor = i
			return
		}
	}
}

func (s *mainScreen) current() (models.Note, bool) {
	if s.cursor < 0 || s.cursor >= len(s.notes) {
		return models.Note{}, false
	}
	return s.notes[s.cursor], true
}

func (s *mainScreen) moveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *mainScreen) moveDown() {
	if s.cursor < len(s.notes)-1 {
		s.cursor++
	}
}

// targets are the ids an action applies to: the selection when one is
// active, else the note under the cursor.
func (s *mainScreen) targets() []int {
	if s.sel.IsSelecting() {
		return s.sel.Selected()
	}
	if n, ok := s.current(); ok {
		return []int{n.ID}
	}
	return nil
}

// HandleBack cancels selection mode. Nothing else on this screen consumes back.
func (s *mainScreen) HandleBack() backAction {
	if s.sel.IsSelecting() {
		s.sel.Cancel()
		return backConsumed
	}
	return backIgnored
}

func (s *mainScreen) View(st *store.Store, width int) string {
	var sb strings.Builder

	header := titleStyle.Render("jotpad")
	if s.sel.IsSelecting() {
		label := s.sel.PinButtonLabel(st.IsPinned)
		header += mutedStyle.Render(fmt.Sprintf("  %d selected • p %s • d Delete • esc Cancel", s.sel.Len(), label))
	}
	sb.WriteString(header + "\n\n")

	if len(s.notes) == 0 {
		sb.WriteString(mutedStyle.Render(emptyListText) + "\n")
		return sb.String()
	}

	for i, n := range s.notes {
		sb.WriteString(s.renderRow(n, i == s.cursor, width))
	}
	return sb.String()
}

func (s *mainScreen) renderRow(n models.Note, isCursor bool, width int) string {
	var prefix string
	if s.sel.IsSelecting() {
		if s.sel.Contains(n.ID) {
			prefix = "[x] "
		} else {
			prefix = "[ ] "
		}
	}
	pin := "  "
	if n.Pinned {
		pin = pinStyle.Render(ui.PinMarker)
	}

	title := ui.Fit(models.DisplayTitle(&n, s.previewLength), width-16)
	age := mutedStyle.Render(ui.Relative(n.UpdatedAt))
	line := fmt.Sprintf("%s%s %s  %s", prefix, pin, title, age)

	var row string
	switch {
	case isCursor:
		row = cursorRowStyle.Render("> " + line)
	case s.sel.Contains(n.ID):
		row = rowStyle.Render(selectedRowStyle.Render(line))
	default:
		row = rowStyle.Render(line)
	}
	row += "\n"

	if !n.HasPlaceholderTitle() && n.Content != "" {
		preview := strings.Join(strings.Fields(models.RowPreview(&n, s.rowPreviewLength)), " ")
		row += previewStyle.Render(ui.Fit(preview, width-8)) + "\n"
	}
	return row
}
