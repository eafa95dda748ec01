// ABOUTME: Root bubbletea model for the jotpad terminal app.
// ABOUTME: Routes input through the modal, the back chain and the active screen.

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/harper/jotpad/internal/device"
	"github.com/harper/jotpad/internal/editor"
	"github.com/harper/jotpad/internal/logging"
	"github.com/harper/jotpad/internal/models"
	"github.com/harper/jotpad/internal/selection"
	"github.com/harper/jotpad/internal/store"
)

type screenID int

const (
	screenWelcome screenID = iota
	screenMain
	screenEdit
	screenAbout
)

func (s screenID) String() string {
	switch s {
	case screenWelcome:
		return "welcome"
	case screenMain:
		return "main"
	case screenEdit:
		return "edit"
	case screenAbout:
		return "about"
	}
	return "unknown"
}

// backAction is a screen's answer to the back key.
type backAction int

const (
	backIgnored backAction = iota
	backConsumed
	backToMain
	backConfirmDiscard
)

// Options configures the app shell.
type Options struct {
	Store  *store.Store
	Guard  *device.Guard
	Logger *log.Logger

	PreviewLength    int
	RowPreviewLength int

	// Watch reloads the list when another process rewrites the notes file.
	Watch bool

	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

type Model struct {
	store  *store.Store
	guard  *device.Guard
	logger *log.Logger
	copy   func(string) error

	screen  screenID
	welcome *welcomeScreen
	main    *mainScreen
	edit    *editScreen
	about   *aboutScreen

	modal modalState
	toast toast

	keys keyMap
	help help.Model

	watcher *noteWatcher

	width  int
	height int

	stopped bool
}

func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Guard == nil {
		opts.Guard = device.NewGuard(device.Unsupported{}, opts.Logger)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = 50
	}
	if opts.RowPreviewLength <= 0 {
		opts.RowPreviewLength = 100
	}

	m := &Model{
		store:   opts.Store,
		guard:   opts.Guard,
		logger:  opts.Logger,
		copy:    opts.Clipboard,
		welcome: &welcomeScreen{},
		main:    newMainScreen(opts.PreviewLength, opts.RowPreviewLength),
		about:   &aboutScreen{},
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.main.refresh(m.store)

	m.screen = screenMain
	if m.store.ShowWelcome() {
		m.screen = screenWelcome
	}

	if opts.Watch {
		w, err := watchFile(m.store.NotesPath(), m.logger)
		if err != nil {
			m.logger.Warn("file watch disabled", "err", err)
		} else {
			m.watcher = w
		}
	}

	m.logger.Info("app started", "screen", m.screen.String(), "notes", m.store.Len())
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.wait()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.edit != nil {
			m.edit.resize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.BlurMsg:
		m.pause("focus lost")
		return m, nil

	case tea.FocusMsg:
		m.logger.Info("app resumed")
		return m, nil

	case tea.SuspendMsg:
		m.pause("suspended")
		return m, nil

	case tea.ResumeMsg:
		m.logger.Info("app resumed")
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast = toast{}
		}
		return m, nil

	case notesChangedMsg:
		m.store.Reload()
		m.main.refresh(m.store)
		m.logger.Debug("notes reloaded after external change", "notes", m.store.Len())
		if m.watcher == nil {
			return m, nil
		}
		return m, m.watcher.wait()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.screen == screenEdit && m.edit != nil {
		return m, m.edit.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Suspend):
		m.pause("suspending")
		return tea.Suspend
	}

	if key.Matches(msg, m.keys.Back) {
		return m.handleBack()
	}

	// An open modal sees every other key first.
	if m.modal.open() {
		return m.handleModalKey(msg)
	}

	switch m.screen {
	case screenWelcome:
		return m.handleWelcomeKey(msg)
	case screenMain:
		return m.handleMainKey(msg)
	case screenEdit:
		return m.handleEditKey(msg)
	}
	return nil
}

// handleBack runs the back chain: open modal, then the current screen, then
// quit from the main screen.
func (m *Model) handleBack() tea.Cmd {
	if m.modal.open() {
		m.modal = modalState{}
		return nil
	}

	var action backAction
	switch m.screen {
	case screenWelcome:
		action = m.welcome.HandleBack()
	case screenMain:
		action = m.main.HandleBack()
	case screenEdit:
		action = m.edit.HandleBack()
	case screenAbout:
		action = m.about.HandleBack()
	}

	switch action {
	case backConsumed:
		return nil
	case backToMain:
		m.showMain()
		return nil
	case backConfirmDiscard:
		m.modal = confirmDiscard()
		return nil
	}
	return m.quit()
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		modal := m.modal
		m.modal = modalState{}
		return m.confirm(modal)
	case key.Matches(msg, m.keys.Cancel):
		m.modal = modalState{}
	}
	return nil
}

func (m *Model) confirm(modal modalState) tea.Cmd {
	switch modal.kind {
	case modalConfirmDelete:
		n, err := m.store.DeleteNotes(modal.ids)
		if err != nil {
			m.logger.Error("delete failed", "err", err)
			return m.showError(err.Error())
		}
		m.main.sel.Cancel()
		m.main.refresh(m.store)
		return m.showToast(deletedText(n))
	case modalConfirmDiscard:
		if m.edit != nil {
			m.edit.session.Discard()
		}
		m.showMain()
	}
	return nil
}

func deletedText(n int) string {
	if n == 1 {
		return "Note deleted"
	}
	return fmt.Sprintf("%d notes deleted", n)
}

func (m *Model) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.welcome.toggle()
	case key.Matches(msg, m.keys.Open):
		if err := m.store.SetShowWelcome(!m.welcome.dontShowAgain); err != nil {
			m.logger.Error("saving welcome preference failed", "err", err)
			m.showMain()
			return m.showError(err.Error())
		}
		m.showMain()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	s := m.main
	switch {
	case key.Matches(msg, m.keys.Up):
		s.moveUp()
	case key.Matches(msg, m.keys.Down):
		s.moveDown()

	case key.Matches(msg, m.keys.Open):
		note, ok := s.current()
		if !ok {
			return nil
		}
		if !s.sel.Tap(note.ID) {
			m.openEditor(&note)
		}

	case key.Matches(msg, m.keys.Select):
		if note, ok := s.current(); ok {
			s.sel.LongPress(note.ID)
		}

	case key.Matches(msg, m.keys.New):
		s.sel.Cancel()
		m.openEditor(nil)

	case key.Matches(msg, m.keys.Delete):
		if ids := s.targets(); len(ids) > 0 {
			m.modal = confirmDelete(ids)
		}

	case key.Matches(msg, m.keys.Pin):
		return m.togglePin()

	case key.Matches(msg, m.keys.Copy):
		note, ok := s.current()
		if !ok {
			return nil
		}
		if err := m.copy(note.Content); err != nil {
			m.logger.Warn("clipboard copy failed", "err", err)
			return m.showError("Clipboard not available")
		}
		return m.showToast("Copied to clipboard")

	case key.Matches(msg, m.keys.Light):
		on, ok := m.guard.ToggleFlashlight()
		if !ok {
			return m.showError("Flashlight not available")
		}
		return m.showToast("Flashlight " + onOff(on))

	case key.Matches(msg, m.keys.Bright):
		on, ok := m.guard.ToggleBrightness()
		if !ok {
			return m.showError("Brightness control not available")
		}
		return m.showToast("Brightness boost " + onOff(on))

	case key.Matches(msg, m.keys.About):
		m.screen = screenAbout

	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (m *Model) togglePin() tea.Cmd {
	s := m.main
	ids := s.targets()
	if len(ids) == 0 {
		return nil
	}

	var pinned, unpinned int
	switch {
	case s.sel.IsSelecting():
		pinned, unpinned = s.sel.PinSummary(m.store.IsPinned)
	case m.store.IsPinned(ids[0]):
		pinned = 1
	default:
		unpinned = 1
	}
	if _, err := m.store.TogglePin(ids); err != nil {
		m.logger.Error("pin toggle failed", "err", err)
		return m.showError(err.Error())
	}

	focus, _ := s.current()
	s.sel.Cancel()
	s.refresh(m.store)
	s.focus(focus.ID)
	return m.showToast(selection.PinToast(pinned, unpinned))
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.commitEdit()
	case key.Matches(msg, m.keys.SwitchField):
		m.edit.switchField()
		return nil
	}
	return m.edit.Update(msg)
}

func (m *Model) commitEdit() tea.Cmd {
	note, err := m.edit.session.Commit(m.store)
	switch {
	case errors.Is(err, editor.ErrTargetGone):
		m.showMain()
		return m.showError("Note was deleted elsewhere")
	case err != nil:
		m.logger.Error("saving note failed", "err", err)
		return m.showError(err.Error())
	}

	m.showMain()
	m.main.focus(note.ID)
	return m.showToast("Note saved")
}

func (m *Model) openEditor(note *models.Note) {
	m.edit = newEditScreen(note, m.width, m.height)
	m.screen = screenEdit
}

func (m *Model) showMain() {
	m.edit = nil
	m.main.refresh(m.store)
	m.screen = screenMain
}

// pause undoes device changes. It runs on every focus loss, suspend and quit.
func (m *Model) pause(reason string) {
	m.logger.Info("app paused", "reason", reason)
	m.guard.Cleanup()
}

func (m *Model) quit() tea.Cmd {
	m.Shutdown()
	return tea.Quit
}

// Shutdown releases the watcher and restores the device. Safe to call twice.
func (m *Model) Shutdown() {
	m.guard.Cleanup()
	if m.stopped {
		return
	}
	m.stopped = true
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	m.logger.Info("app stopped")
}

func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenWelcome:
		body = m.welcome.View()
	case screenMain:
		body = m.main.View(m.store, m.viewWidth())
	case screenEdit:
		body = m.edit.View()
	case screenAbout:
		body = m.about.View(m.viewWidth())
	}

	if m.modal.open() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.modal.View())
	}

	var sb strings.Builder
	sb.WriteString(body)
	if t := m.toast.View(); t != "" {
		sb.WriteString("\n" + t + "\n")
	}
	sb.WriteString("\n" + m.footer())
	return sb.String()
}

func (m *Model) footer() string {
	switch m.screen {
	case screenMain:
		return m.help.View(m.keys)
	case screenEdit:
		return m.help.View(editHelp{keys: m.keys})
	case screenAbout:
		return mutedStyle.Render("esc back")
	}
	return ""
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// Run starts the terminal program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Shutdown()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
