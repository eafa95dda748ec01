// ABOUTME: Tests for the terminal app model driven by synthetic messages.
// ABOUTME: Covers screens, the back chain, modals, lifecycle cleanup and reloads.

package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/jotpad/internal/device"
	"github.com/harper/jotpad/internal/models"
	"github.com/harper/jotpad/internal/store"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

type harness struct {
	t       *testing.T
	m       *Model
	st      *store.Store
	dev     *device.Simulated
	copied  string
	lastCmd tea.Cmd
}

func newHarness(t *testing.T, setup func(st *store.Store)) *harness {
	t.Helper()
	st, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if setup != nil {
		setup(st)
	}
	h := &harness{t: t, st: st, dev: device.NewSimulated(nil)}
	h.m = New(Options{
		Store: st,
		Guard: device.NewGuard(h.dev, nil),
		Clipboard: func(s string) error {
			h.copied = s
			return nil
		},
	})
	return h
}

func skipWelcome(st *store.Store) {
	_ = st.SetShowWelcome(false)
}

func (h *harness) send(msgs ...tea.Msg) {
	h.t.Helper()
	for _, msg := range msgs {
		_, h.lastCmd = h.m.Update(msg)
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(keyRunes(string(r)))
	}
}

func (h *harness) quitRequested() bool {
	if h.lastCmd == nil {
		return false
	}
	_, ok := h.lastCmd().(tea.QuitMsg)
	return ok
}

func TestStartsOnWelcomeUntilDismissed(t *testing.T) {
	h := newHarness(t, nil)
	if h.m.screen != screenWelcome {
		t.Fatalf("expected welcome screen, got %s", h.m.screen)
	}

	h.send(keySpace, keyEnter)
	if h.m.screen != screenMain {
		t.Fatalf("expected main screen, got %s", h.m.screen)
	}
	if h.st.ShowWelcome() {
		t.Error("expected welcome to be disabled after checking the box")
	}

	h2 := newHarness(t, skipWelcome)
	if h2.m.screen != screenMain {
		t.Errorf("expected main screen when welcome is off, got %s", h2.m.screen)
	}
}

func TestWelcomeContinueWithoutCheckKeepsWelcome(t *testing.T) {
	h := newHarness(t, nil)
	h.send(keyEnter)
	if !h.st.ShowWelcome() {
		t.Error("expected welcome to stay enabled")
	}
}

func TestEmptyListMessage(t *testing.T) {
	h := newHarness(t, skipWelcome)
	if !strings.Contains(h.m.View(), emptyListText) {
		t.Error("expected empty list hint")
	}
}

func TestCreateNoteThroughEditor(t *testing.T) {
	h := newHarness(t, skipWelcome)

	h.send(keyRunes("n"))
	if h.m.screen != screenEdit {
		t.Fatalf("expected edit screen, got %s", h.m.screen)
	}
	h.typeText("Shopping")
	h.send(keyTab)
	h.typeText("eggs")
	h.send(keySave)

	if h.m.screen != screenMain {
		t.Fatalf("expected main screen after save, got %s", h.m.screen)
	}
	notes := h.st.GetAllSorted()
	if len(notes) != 1 || notes[0].Title != "Shopping" || notes[0].Content != "eggs" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if !strings.Contains(h.m.View(), "Shopping") {
		t.Error("expected the new note in the list")
	}
}

func TestEditBackWhenCleanReturnsToMain(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("a", "b")
	})
	h.send(keyEnter)
	if h.m.screen != screenEdit {
		t.Fatalf("expected edit screen, got %s", h.m.screen)
	}
	h.send(keyEsc)
	if h.m.screen != screenMain || h.m.modal.open() {
		t.Error("expected direct return to main without a modal")
	}
}

func TestEditBackWhenDirtyAsksFirst(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("a", "b")
	})
	h.send(keyEnter)
	h.typeText("zz")
	h.send(keyEsc)

	if h.m.modal.kind != modalConfirmDiscard {
		t.Fatal("expected discard confirmation")
	}

	// cancelling keeps the edit
	h.send(keyRunes("n"))
	if h.m.screen != screenEdit || h.m.modal.open() {
		t.Fatal("expected to stay editing after cancelling the modal")
	}

	h.send(keyEsc, keyRunes("y"))
	if h.m.screen != screenMain {
		t.Fatalf("expected main after discarding, got %s", h.m.screen)
	}
	n, _ := h.st.GetNote(1)
	if n.Content != "b" {
		t.Errorf("expected note untouched, got %q", n.Content)
	}
}

func TestSelectionDeleteFlow(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		for _, title := range []string{"one", "two", "three"} {
			_, _ = st.AddNote(title, "")
		}
	})

	h.send(keySpace)
	if !h.m.main.sel.IsSelecting() {
		t.Fatal("expected selection mode after long press")
	}
	h.send(keyDown, keyEnter)
	if h.m.main.sel.Len() != 2 {
		t.Fatalf("expected 2 selected, got %d", h.m.main.sel.Len())
	}
	if h.m.screen != screenMain {
		t.Fatal("expected tap in selection mode not to open the editor")
	}

	h.send(keyRunes("d"))
	if h.m.modal.kind != modalConfirmDelete || len(h.m.modal.ids) != 2 {
		t.Fatalf("expected delete confirmation for 2 notes, got %+v", h.m.modal)
	}
	h.send(keyRunes("y"))

	if h.st.Len() != 1 {
		t.Errorf("expected 1 note left, got %d", h.st.Len())
	}
	if h.m.main.sel.IsSelecting() {
		t.Error("expected selection cleared after delete")
	}
	if h.m.toast.text != "2 notes deleted" {
		t.Errorf("unexpected toast %q", h.m.toast.text)
	}
}

func TestPinSelectionShowsToast(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("one", "")
		_, _ = st.AddNote("two", "")
	})

	h.send(keySpace, keyRunes("p"))
	if h.m.toast.text != "Notes pinned" {
		t.Errorf("expected pinned toast, got %q", h.m.toast.text)
	}
	if h.m.main.sel.IsSelecting() {
		t.Error("expected selection cleared after pin")
	}
	if !h.m.main.notes[0].Pinned {
		t.Error("expected pinned note on top")
	}
}

func TestBackChainOnMain(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("one", "")
	})

	h.send(keySpace, keyEsc)
	if h.m.main.sel.IsSelecting() {
		t.Fatal("expected back to cancel selection")
	}
	if h.quitRequested() {
		t.Fatal("expected back to be consumed by selection")
	}

	h.send(keyRunes("a"))
	if h.m.screen != screenAbout {
		t.Fatal("expected about screen")
	}
	h.send(keyEsc)
	if h.m.screen != screenMain {
		t.Fatal("expected back from about to main")
	}

	h.send(keyEsc)
	if !h.quitRequested() {
		t.Error("expected back on idle main screen to quit")
	}
}

func TestLifecycleCleansUpDevice(t *testing.T) {
	h := newHarness(t, skipWelcome)
	h.dev.SetBrightness(0.3)

	h.send(keyRunes("f"), keyRunes("b"))
	if !h.dev.FlashlightOn() {
		t.Fatal("expected flashlight on")
	}

	h.send(tea.BlurMsg{})
	if h.dev.FlashlightOn() {
		t.Error("expected flashlight off after focus loss")
	}
	if level, _ := h.dev.Brightness(); level != 0.3 {
		t.Errorf("expected brightness restored to 0.3, got %v", level)
	}

	h.send(keyRunes("f"), keyRunes("q"))
	if h.dev.FlashlightOn() {
		t.Error("expected flashlight off after quit")
	}
	if !h.quitRequested() {
		t.Error("expected quit")
	}
}

func TestUnsupportedDeviceShowsError(t *testing.T) {
	st, _ := store.Open(t.TempDir(), nil)
	_ = st.SetShowWelcome(false)
	m := New(Options{Store: st})
	m.Update(keyRunes("f"))
	if !m.toast.isError || m.toast.text != "Flashlight not available" {
		t.Errorf("unexpected toast %+v", m.toast)
	}
}

func TestCopyNoteContent(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("t", "copy me")
	})
	h.send(keyRunes("c"))
	if h.copied != "copy me" {
		t.Errorf("expected content copied, got %q", h.copied)
	}

	h.m.copy = func(string) error { return errors.New("no clipboard") }
	h.send(keyRunes("c"))
	if !h.m.toast.isError {
		t.Error("expected error toast when clipboard fails")
	}
}

func TestExternalChangeReloadsAndPrunesSelection(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("one", "")
		_, _ = st.AddNote("two", "")
	})
	h.send(keySpace)

	other, err := store.Open(h.st.Dir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	selected := h.m.main.sel.Selected()[0]
	if _, err := other.DeleteNotes([]int{selected}); err != nil {
		t.Fatal(err)
	}

	h.send(notesChangedMsg{})
	if len(h.m.main.notes) != 1 {
		t.Errorf("expected 1 note after reload, got %d", len(h.m.main.notes))
	}
	if h.m.main.sel.IsSelecting() {
		t.Error("expected selection pruned to empty")
	}
}

func TestCommitAfterExternalDelete(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("one", "body")
	})
	h.send(keyEnter)
	h.typeText("!")

	_, _ = h.st.DeleteNotes([]int{1})
	h.send(keySave)

	if h.m.screen != screenMain {
		t.Fatalf("expected main screen, got %s", h.m.screen)
	}
	if !h.m.toast.isError {
		t.Error("expected error toast")
	}
	if h.st.Len() != 0 {
		t.Error("expected the deleted note to stay deleted")
	}
}

func TestModalBlocksScreenKeys(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("one", "")
	})
	h.send(keyRunes("d"))
	if !h.m.modal.open() {
		t.Fatal("expected modal")
	}
	h.send(keyRunes("a"))
	if h.m.screen != screenMain {
		t.Error("expected screen keys to be swallowed by the modal")
	}
	h.send(keyEsc)
	if h.m.modal.open() || h.st.Len() != 1 {
		t.Error("expected modal dismissed without deleting")
	}
}

type idleMsg struct{}

func TestUntouchedNoteWithTabsStaysClean(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("tabs", "a\tb\n\tc")
	})

	h.send(keyEnter, keyDown, idleMsg{})
	if h.m.edit.session.IsDirty() {
		t.Fatalf("expected clean session, working content %q", h.m.edit.session.Content())
	}

	h.send(keyEsc)
	if h.m.modal.open() || h.m.screen != screenMain {
		t.Fatal("expected esc to leave without a discard prompt")
	}
}

func TestUntouchedCRLFContentStaysClean(t *testing.T) {
	s := newEditScreen(&models.Note{ID: 1, Title: "crlf", Content: "a\r\nb"}, 80, 24)
	s.Update(idleMsg{})
	s.Update(keyDown)
	if s.session.IsDirty() {
		t.Fatalf("expected clean session, working content %q", s.session.Content())
	}
	if s.HandleBack() != backToMain {
		t.Error("expected back to leave without confirmation")
	}
}

func TestLongTitleKeptIntact(t *testing.T) {
	long := strings.Repeat("x", 250)
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote(long, "body")
	})

	h.send(keyEnter, keyTab, idleMsg{})
	if h.m.edit.session.IsDirty() {
		t.Fatal("expected clean session after focusing the long title")
	}

	h.send(keySave)
	n, _ := h.st.GetNote(1)
	if n.Title != long {
		t.Errorf("expected title of %d runes, got %d", len(long), len(n.Title))
	}
}

func TestEscClosesModalThroughBackChain(t *testing.T) {
	h := newHarness(t, func(st *store.Store) {
		skipWelcome(st)
		_, _ = st.AddNote("a", "b")
	})

	h.send(keyEnter, keyRunes("!"), keyEsc)
	if h.m.modal.kind != modalConfirmDiscard {
		t.Fatal("expected discard confirmation")
	}

	h.send(keyEsc)
	if h.m.modal.open() {
		t.Fatal("expected esc to close the modal")
	}
	if h.m.screen != screenEdit || !h.m.edit.session.IsDirty() {
		t.Error("expected to stay editing with the change kept")
	}
}
