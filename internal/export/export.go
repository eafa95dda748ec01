// ABOUTME: Export of notes to JSON or markdown files with YAML frontmatter.
// ABOUTME: Every export carries a document id so a re-import can be detected.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/jotpad/internal/models"
	"gopkg.in/yaml.v3"
)

const Version = "1.0"

type Note struct {
	ID        int       `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"-"`
	Pinned    bool      `json:"pinned" yaml:"pinned"`
	CreatedAt time.Time `json:"created_at" yaml:"created"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated"`
	ExportID  string    `json:"-" yaml:"export_id,omitempty"`
}

// Document is the JSON export layout.
type Document struct {
	ID         uuid.UUID `json:"id"`
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
	Notes      []Note    `json:"notes"`
}

// Build wraps notes in a new export document with a fresh id.
func Build(notes []models.Note) Document {
	doc := Document{
		ID:         uuid.New(),
		ExportedAt: time.Now(),
		Version:    Version,
		Notes:      make([]Note, 0, len(notes)),
	}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Pinned:    n.Pinned,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteJSONFile writes doc to path, or to w when path is empty or "-".
func WriteJSONFile(path string, w io.Writer, doc Document) error {
	if path == "" || path == "-" {
		return WriteJSON(w, doc)
	}
	f, err := os.Create(path) //nolint:gosec // User-specified output path
	if err != nil {
		return err
	}
	if err := WriteJSON(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteMarkdownDir writes one markdown file per note into dir.
func WriteMarkdownDir(dir string, doc Document) (int, error) {
	if dir == "" {
		dir = "export"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	for _, n := range doc.Notes {
		n.ExportID = doc.ID.String()

		var sb strings.Builder
		sb.WriteString("---\n")
		frontmatter, err := yaml.Marshal(n)
		if err != nil {
			return 0, fmt.Errorf("encode frontmatter for note %d: %w", n.ID, err)
		}
		sb.Write(frontmatter)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Content)
		sb.WriteString("\n")

		filePath := filepath.Join(dir, MarkdownFilename(n))
		if err := os.WriteFile(filePath, []byte(sb.String()), 0644); err != nil {
			return 0, err
		}
	}
	return len(doc.Notes), nil
}

// MarkdownFilename names a note's file by id and title so placeholder
// titles never collide.
func MarkdownFilename(n Note) string {
	title := n.Title
	if title == "" || title == models.PlaceholderTitle {
		title = "note"
	}
	return fmt.Sprintf("%04d-%s.md", n.ID, sanitizeFilename(title))
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	runes := []rune(name)
	if len(runes) > 100 {
		name = string(runes[:100])
	}
	return name
}
