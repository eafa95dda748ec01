// ABOUTME: Terminal formatting for jotpad CLI output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harper/jotpad/internal/models"
	"github.com/mattn/go-runewidth"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// PinMarker prefixes pinned notes in lists.
const PinMarker = "📌"

// Options controls how notes are previewed.
type Options struct {
	PreviewLength    int
	RowPreviewLength int
	// Width limits each rendered line in terminal cells; zero means no limit.
	Width int
}

func DefaultOptions() Options {
	return Options{PreviewLength: 50, RowPreviewLength: 100}
}

// FormatNoteListItem renders a note as a list row: id, title, preview, age.
func FormatNoteListItem(note *models.Note, opts Options) string {
	var sb strings.Builder

	marker := "  "
	if note.Pinned {
		marker = yellow(PinMarker)
	}
	title := Fit(models.DisplayTitle(note, opts.PreviewLength), opts.Width-8)
	sb.WriteString(fmt.Sprintf("%s %s  %s\n", marker, faint(fmt.Sprintf("%4d", note.ID)), bold(title)))

	if preview := models.RowPreview(note, opts.RowPreviewLength); preview != "" && !note.HasPlaceholderTitle() {
		preview = strings.Join(strings.Fields(preview), " ")
		sb.WriteString(fmt.Sprintf("         %s\n", Fit(preview, opts.Width-9)))
	}

	sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Updated:"), faint(Relative(note.UpdatedAt))))

	return sb.String()
}

// Fit trims s to width terminal cells, ending in "..." when cut. Wide
// characters count as two cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// Relative renders t as "3 minutes ago" style text.
func Relative(t time.Time) string {
	return humanize.Time(t)
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	title := note.Title
	if note.Pinned {
		title = PinMarker + " " + title
	}
	sb.WriteString(fmt.Sprintf("%s\n", bold(title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Format("2006-01-02 15:04"))))
	sb.WriteString(fmt.Sprintf("%s %s %s\n", faint("Updated:"),
		faint(note.UpdatedAt.Format("2006-01-02 15:04")),
		cyan("("+Relative(note.UpdatedAt)+")")))

	sb.WriteString(Separator())
	return sb.String()
}

// FormatSummary renders the count line under a list.
func FormatSummary(shown, total, pinned int) string {
	return faint(fmt.Sprintf("%d of %d notes, %d pinned", shown, total, pinned)) + "\n"
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}
