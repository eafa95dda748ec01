// ABOUTME: Welcome and about screens.
// ABOUTME: The about text is markdown rendered with glamour.

package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type welcomeScreen struct {
	dontShowAgain bool
}

func (s *welcomeScreen) toggle() { s.dontShowAgain = !s.dontShowAgain }

func (s *welcomeScreen) HandleBack() backAction { return backToMain }

func (s *welcomeScreen) View() string {
	check := "[ ]"
	if s.dontShowAgain {
		check = "[x]"
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Welcome to jotpad") + "\n\n")
	sb.WriteString("Jot quick notes, pin the important ones and keep them on top.\n\n")
	sb.WriteString("  • n creates a note, enter opens one\n")
	sb.WriteString("  • space starts selecting several notes\n")
	sb.WriteString("  • p pins, d deletes\n\n")
	sb.WriteString(check + " Don't show this again " + mutedStyle.Render("(space)") + "\n\n")
	sb.WriteString(mutedStyle.Render("enter continue") + "\n")
	return sb.String()
}

const aboutMarkdown = `# jotpad

A small note pad for the terminal.

## Keys

| Key | Action |
|-----|--------|
| n | new note |
| enter | open note, or toggle it while selecting |
| space | start selecting, or toggle selection |
| p | pin or unpin |
| d | delete |
| c | copy note text |
| f | flashlight |
| b | brightness boost |
| esc | back |

Notes live in plain JSON files and can be shared with the ` + "`jotpad`" + ` CLI
and the MCP server at the same time.
`

type aboutScreen struct {
	rendered string
	width    int
}

func (s *aboutScreen) HandleBack() backAction { return backToMain }

func (s *aboutScreen) View(width int) string {
	if width <= 0 {
		width = 80
	}
	if s.rendered == "" || s.width != width {
		s.width = width
		s.rendered = renderMarkdown(aboutMarkdown, width)
	}
	return s.rendered
}

func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(min(width-4, 100)),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
