// ABOUTME: Import of notes from a JSON export or markdown files.
// ABOUTME: Restores notes through the store, skipping exports already imported.

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/jotpad/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrAlreadyImported is returned when an export document was imported before.
var ErrAlreadyImported = errors.New("export already imported")

// Target is the part of the store an import writes into.
type Target interface {
	Restore(notes []models.Note) (int, error)
	WasImported(id uuid.UUID) bool
	MarkImported(id uuid.UUID) error
}

// Result summarizes one import.
type Result struct {
	Imported int
	Skipped  []string
}

// Import reads path, which may be a JSON export, a markdown file or a
// directory of markdown files, and restores its notes into t.
func Import(t Target, path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return importMarkdownDir(t, path)
	}
	if strings.HasSuffix(path, ".json") {
		return importJSON(t, path)
	}

	// A lone file does not mark its export as imported; the rest of that
	// export may still follow.
	n, _, err := ReadMarkdownFile(path)
	if err != nil {
		return Result{}, err
	}
	return restore(t, []models.Note{n}, nil, nil)
}

func ReadJSON(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse export %s: %w", path, err)
	}
	return doc, nil
}

func importJSON(t Target, path string) (Result, error) {
	doc, err := ReadJSON(path)
	if err != nil {
		return Result{}, err
	}
	if doc.ID != uuid.Nil && t.WasImported(doc.ID) {
		return Result{}, fmt.Errorf("%w: %s", ErrAlreadyImported, doc.ID)
	}

	notes := make([]models.Note, 0, len(doc.Notes))
	for _, en := range doc.Notes {
		notes = append(notes, models.Note{
			Title:     en.Title,
			Content:   en.Content,
			Pinned:    en.Pinned,
			CreatedAt: en.CreatedAt,
			UpdatedAt: en.UpdatedAt,
		})
	}

	var ids []uuid.UUID
	if doc.ID != uuid.Nil {
		ids = append(ids, doc.ID)
	}
	return restore(t, notes, ids, nil)
}

func importMarkdownDir(t Target, dir string) (Result, error) {
	var (
		notes   []models.Note
		ids     []uuid.UUID
		skipped []string
	)
	seen := map[uuid.UUID]bool{}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		n, exportID, err := ReadMarkdownFile(path)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		if id, ok := parseExportID(exportID); ok {
			if t.WasImported(id) {
				skipped = append(skipped, fmt.Sprintf("%s: %v", path, ErrAlreadyImported))
				return nil
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		notes = append(notes, n)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return restore(t, notes, ids, skipped)
}

// ReadMarkdownFile parses a markdown note, using frontmatter when present
// and the file name as title otherwise.
func ReadMarkdownFile(path string) (models.Note, string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return models.Note{}, "", err
	}

	if strings.TrimSpace(string(data)) == "" {
		return models.Note{}, "", fmt.Errorf("note is empty")
	}

	content := string(data)
	var front struct {
		Title    string    `yaml:"title"`
		Pinned   bool      `yaml:"pinned"`
		Created  time.Time `yaml:"created"`
		Updated  time.Time `yaml:"updated"`
		ExportID string    `yaml:"export_id"`
	}

	if strings.HasPrefix(content, "---\n") {
		parts := strings.SplitN(content, "---\n", 3)
		if len(parts) >= 3 {
			if err := yaml.Unmarshal([]byte(parts[1]), &front); err == nil {
				content = parts[2]
			}
		}
	}

	if front.Title == "" {
		front.Title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	content = strings.TrimSpace(content)

	return models.Note{
		Title:     front.Title,
		Content:   content,
		Pinned:    front.Pinned,
		CreatedAt: front.Created,
		UpdatedAt: front.Updated,
	}, front.ExportID, nil
}

func restore(t Target, notes []models.Note, ids []uuid.UUID, skipped []string) (Result, error) {
	count, err := t.Restore(notes)
	if err != nil {
		return Result{}, err
	}
	for _, id := range ids {
		if err := t.MarkImported(id); err != nil {
			return Result{Imported: count, Skipped: skipped}, err
		}
	}
	return Result{Imported: count, Skipped: skipped}, nil
}

func parseExportID(raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
