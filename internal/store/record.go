// ABOUTME: On-disk representation of notes in notes.json.
// ABOUTME: Converts between records and models, accepting legacy naive timestamps.

package store

import (
	"fmt"
	"time"

	"github.com/harper/jotpad/internal/models"
)

// noteRecord is one element of the notes.json array.
type noteRecord struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Pinned    bool   `json:"pinned"`
}

// seqRecord is the notes.seq.json document.
type seqRecord struct {
	LastID int `json:"last_id"`
}

// Layouts accepted when reading timestamps. Older files were written without
// a zone offset and are interpreted in local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	for i, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// toModel converts a record, repairing timestamps so UpdatedAt >= CreatedAt.
func (r *noteRecord) toModel() (*models.Note, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("note %d created_at: %w", r.ID, err)
	}
	updated, err := parseTimestamp(r.UpdatedAt)
	if err != nil {
		updated = created
	}
	if updated.Before(created) {
		updated = created
	}
	return &models.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: created,
		UpdatedAt: updated,
		Pinned:    r.Pinned,
	}, nil
}

func fromModel(n *models.Note) noteRecord {
	return noteRecord{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: formatTimestamp(n.CreatedAt),
		UpdatedAt: formatTimestamp(n.UpdatedAt),
		Pinned:    n.Pinned,
	}
}
