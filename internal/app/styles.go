// ABOUTME: Lipgloss styles for the terminal app.
// ABOUTME: Shared by every screen, the modal and the toast.

package app

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#7D56F4")
	muted   = lipgloss.Color("241")
	success = lipgloss.Color("42")
	danger  = lipgloss.Color("196")
	warning = lipgloss.Color("214")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(primary).
			Padding(0, 1)

	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	cursorRowStyle   = lipgloss.NewStyle().PaddingLeft(1).Foreground(primary).Bold(true)
	selectedRowStyle = lipgloss.NewStyle().Foreground(warning)
	previewStyle     = lipgloss.NewStyle().Foreground(muted).PaddingLeft(6)
	mutedStyle       = lipgloss.NewStyle().Foreground(muted)
	pinStyle         = lipgloss.NewStyle().Foreground(warning)

	labelStyle        = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)

	toastStyle      = lipgloss.NewStyle().Foreground(success).Bold(true)
	errorToastStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2)
)
