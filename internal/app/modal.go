// ABOUTME: Modal confirmation state owned by the root model.
// ABOUTME: An open modal takes every key before any screen sees it.

package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalConfirmDiscard
)

type modalState struct {
	kind modalKind
	ids  []int
}

func (m modalState) open() bool { return m.kind != modalNone }

func confirmDelete(ids []int) modalState {
	return modalState{kind: modalConfirmDelete, ids: ids}
}

func confirmDiscard() modalState {
	return modalState{kind: modalConfirmDiscard}
}

func (m modalState) View() string {
	var title, body string
	switch m.kind {
	case modalConfirmDelete:
		title = "Delete notes"
		if len(m.ids) == 1 {
			body = "Delete 1 note?"
		} else {
			body = fmt.Sprintf("Delete %d notes?", len(m.ids))
		}
	case modalConfirmDiscard:
		title = "Discard changes"
		body = "You have unsaved changes. Discard them?"
	default:
		return ""
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(title),
		"",
		body,
		"",
		mutedStyle.Render("y confirm • n cancel"),
	))
}
