// ABOUTME: Note store backed by JSON documents in the data directory.
// ABOUTME: Owns note identity, ordering, pin state, and the persisted settings.

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/jotpad/internal/logging"
	"github.com/harper/jotpad/internal/models"
)

const (
	NotesFile    = "notes.json"
	SettingsFile = "settings.json"
	SeqFile      = "notes.seq.json"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	// ErrPersist wraps every failure to write a document. The in-memory
	// state is left as it was before the failed operation.
	ErrPersist = errors.New("save failed, changes not persisted")
)

// Store is the sole owner of notes and settings. Every mutating call writes
// the affected document before returning.
type Store struct {
	mu  sync.Mutex
	dir string

	notes    []*models.Note // insertion order, as on disk
	settings *models.Settings
	lastID   int

	logger *log.Logger
	write  func(path string, v any) error
}

// Open loads the store from dir. Missing or unreadable documents fall back to
// an empty collection and default settings; only a failure to create dir is
// returned as an error.
func Open(dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Store{
		dir:    dir,
		logger: logger,
		write:  writeJSONAtomic,
	}
	s.load()
	return s, nil
}

func (s *Store) Dir() string          { return s.dir }
func (s *Store) NotesPath() string    { return filepath.Join(s.dir, NotesFile) }
func (s *Store) SettingsPath() string { return filepath.Join(s.dir, SettingsFile) }
func (s *Store) seqPath() string      { return filepath.Join(s.dir, SeqFile) }

// Reload re-reads every document from disk, discarding in-memory state.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

func (s *Store) load() {
	s.notes = s.loadNotes()
	s.settings = s.loadSettings()

	var seq seqRecord
	if err := readJSON(s.seqPath(), &seq); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("ignoring unreadable id sequence", "path", s.seqPath(), "err", err)
	}
	s.lastID = seq.LastID
	s.repairIDs()
}

func (s *Store) loadNotes() []*models.Note {
	path := s.NotesPath()
	var records []noteRecord
	if err := readJSON(path, &records); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*models.Note{}
		}
		s.logger.Warn("notes document unreadable, starting empty", "path", path, "err", err)
		if dest, qerr := quarantine(path); qerr == nil {
			s.logger.Warn("moved unreadable notes document aside", "dest", dest)
		}
		return []*models.Note{}
	}

	notes := make([]*models.Note, 0, len(records))
	for i := range records {
		note, err := records[i].toModel()
		if err != nil {
			s.logger.Warn("skipping malformed note", "err", err)
			continue
		}
		if note.Title == "" {
			note.Title = models.PlaceholderTitle
		}
		notes = append(notes, note)
	}
	return notes
}

func (s *Store) loadSettings() *models.Settings {
	settings := models.DefaultSettings()
	if err := readJSON(s.SettingsPath(), settings); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("settings document unreadable, using defaults", "path", s.SettingsPath(), "err", err)
		}
		return models.DefaultSettings()
	}
	return settings
}

// repairIDs makes ids unique and advances lastID past every live id. Files
// written by older versions may hold duplicates.
func (s *Store) repairIDs() {
	for _, n := range s.notes {
		if n.ID > s.lastID {
			s.lastID = n.ID
		}
	}
	seen := make(map[int]bool, len(s.notes))
	repaired := false
	for _, n := range s.notes {
		if n.ID <= 0 || seen[n.ID] {
			s.lastID++
			s.logger.Warn("reassigned duplicate note id", "old", n.ID, "new", s.lastID)
			n.ID = s.lastID
			repaired = true
		}
		seen[n.ID] = true
	}
	if !repaired {
		return
	}
	if err := s.saveSeq(s.lastID); err != nil {
		s.logger.Error("persist repaired id sequence", "err", err)
		return
	}
	if err := s.saveNotes(s.notes); err != nil {
		s.logger.Error("persist repaired notes", "err", err)
	}
}

func (s *Store) saveNotes(notes []*models.Note) error {
	records := make([]noteRecord, len(notes))
	for i, n := range notes {
		records[i] = fromModel(n)
	}
	if err := s.write(s.NotesPath(), records); err != nil {
		s.logger.Error("write notes document", "path", s.NotesPath(), "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (s *Store) saveSettings(settings *models.Settings) error {
	if err := s.write(s.SettingsPath(), settings); err != nil {
		s.logger.Error("write settings document", "path", s.SettingsPath(), "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (s *Store) saveSeq(last int) error {
	if err := s.write(s.seqPath(), seqRecord{LastID: last}); err != nil {
		s.logger.Error("write id sequence", "path", s.seqPath(), "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// cloneNotes copies the collection so a failed write can be rolled back.
func cloneNotes(notes []*models.Note) []*models.Note {
	out := make([]*models.Note, len(notes))
	for i, n := range notes {
		c := *n
		out[i] = &c
	}
	return out
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// AddNote creates a note with a fresh id. The id is reserved in the sequence
// document before the note is written, so a crash can waste an id but never
// hand it out twice.
func (s *Store) AddNote(title, content string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.lastID + 1
	if err := s.saveSeq(id); err != nil {
		return models.Note{}, err
	}
	s.lastID = id

	note := models.NewNote(id, title, content)
	next := append(cloneNotes(s.notes), note)
	if err := s.saveNotes(next); err != nil {
		return models.Note{}, err
	}
	s.notes = next
	s.logger.Debug("note added", "id", id)
	return *note, nil
}

// UpdateNote replaces title and content. The bool is false when no note has id.
func (s *Store) UpdateNote(id int, title, content string) (models.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneNotes(s.notes)
	idx := slices.IndexFunc(next, func(n *models.Note) bool { return n.ID == id })
	if idx < 0 {
		return models.Note{}, false, nil
	}
	note := next[idx]
	note.Title = models.NormalizeTitle(title)
	note.Content = models.NormalizeContent(content)
	note.Touch()

	if err := s.saveNotes(next); err != nil {
		return models.Note{}, true, err
	}
	s.notes = next
	return *note, true, nil
}

// DeleteNotes removes every note whose id is in ids and writes once.
// Nothing is written when no id matched.
func (s *Store) DeleteNotes(ids []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := idSet(ids)
	next := make([]*models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if !set[n.ID] {
			next = append(next, n)
		}
	}
	deleted := len(s.notes) - len(next)
	if deleted == 0 {
		return 0, nil
	}
	if err := s.saveNotes(next); err != nil {
		return 0, err
	}
	s.notes = next
	s.logger.Debug("notes deleted", "count", deleted)
	return deleted, nil
}

// DeleteNote removes a single note, reporting whether it existed.
func (s *Store) DeleteNote(id int) (bool, error) {
	n, err := s.DeleteNotes([]int{id})
	return n == 1, err
}

func (s *Store) GetNote(id int) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID == id {
			return *n, true
		}
	}
	return models.Note{}, false
}

// GetAllSorted returns pinned notes first, then unpinned, each group ordered
// by UpdatedAt descending. Ties keep insertion order.
func (s *Store) GetAllSorted() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = *n
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Len returns the number of live notes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// TogglePin flips the pin state of every matching note independently.
func (s *Store) TogglePin(ids []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := idSet(ids)
	next := cloneNotes(s.notes)
	toggled := 0
	for _, n := range next {
		if !set[n.ID] {
			continue
		}
		n.Pinned = !n.Pinned
		n.Touch()
		toggled++
	}
	if toggled == 0 {
		return 0, nil
	}
	if err := s.saveNotes(next); err != nil {
		return 0, err
	}
	s.notes = next
	return toggled, nil
}

// IsPinned reports the pin state of id, false when absent.
func (s *Store) IsPinned(id int) bool {
	n, ok := s.GetNote(id)
	return ok && n.Pinned
}

func (s *Store) ShowWelcome() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.ShowWelcome
}

func (s *Store) SetShowWelcome(show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.settings
	next.ShowWelcome = show
	if err := s.saveSettings(&next); err != nil {
		return err
	}
	s.settings = &next
	return nil
}

// WasImported reports whether an export document was already merged.
func (s *Store) WasImported(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.settings.ImportedExports, id.String())
}

// MarkImported records an export document id in the settings document.
func (s *Store) MarkImported(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.settings.ImportedExports, id.String()) {
		return nil
	}
	next := *s.settings
	next.ImportedExports = append(slices.Clone(s.settings.ImportedExports), id.String())
	if err := s.saveSettings(&next); err != nil {
		return err
	}
	s.settings = &next
	return nil
}

// Restore re-inserts previously exported notes under fresh ids, keeping their
// timestamps and pin state. Used by import.
func (s *Store) Restore(notes []models.Note) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(notes) == 0 {
		return 0, nil
	}
	last := s.lastID + len(notes)
	if err := s.saveSeq(last); err != nil {
		return 0, err
	}
	first := s.lastID + 1
	s.lastID = last

	next := cloneNotes(s.notes)
	for i, n := range notes {
		c := n
		c.ID = first + i
		c.Title = models.NormalizeTitle(c.Title)
		c.Content = models.NormalizeContent(c.Content)
		if c.CreatedAt.IsZero() {
			c.Touch()
			c.CreatedAt = c.UpdatedAt
		}
		if c.UpdatedAt.Before(c.CreatedAt) {
			c.UpdatedAt = c.CreatedAt
		}
		next = append(next, &c)
	}
	if err := s.saveNotes(next); err != nil {
		return 0, err
	}
	s.notes = next
	return len(notes), nil
}
