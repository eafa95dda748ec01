// ABOUTME: Transient notices shown under the main view.
// ABOUTME: Each toast expires after a tick unless replaced by a newer one.

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 2 * time.Second

// toast is a short non-modal notice under the current screen.
type toast struct {
	text    string
	isError bool
	seq     int
}

type toastExpiredMsg struct{ seq int }

func (m *Model) showToast(text string) tea.Cmd {
	return m.setToast(text, false)
}

func (m *Model) showError(text string) tea.Cmd {
	return m.setToast(text, true)
}

func (m *Model) setToast(text string, isError bool) tea.Cmd {
	seq := m.toast.seq + 1
	m.toast = toast{text: text, isError: isError, seq: seq}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t toast) View() string {
	if t.text == "" {
		return ""
	}
	if t.isError {
		return errorToastStyle.Render("✗ " + t.text)
	}
	return toastStyle.Render("✓ " + t.text)
}
