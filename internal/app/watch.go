// ABOUTME: Watches the notes document for writes made by other processes.
// ABOUTME: Debounced events become notesChangedMsg for the root model.

package app

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

type notesChangedMsg struct{}

type noteWatcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
	once    sync.Once
}

// watchFile watches the directory holding path, since atomic saves replace
// the file rather than writing it in place.
func watchFile(path string, logger *log.Logger) (*noteWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	nw := &noteWatcher{
		watcher: w,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	name := filepath.Base(path)

	go func() {
		var (
			timer  *time.Timer
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			close(nw.events)
		}()

		fire := func() {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case nw.events <- struct{}{}:
			default:
			}
		}

		for {
			select {
			case <-nw.done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("notes file changed", "op", event.Op.String())
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, fire)
				mu.Unlock()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("file watch error", "err", err)
			}
		}
	}()

	return nw, nil
}

// wait blocks until the next change and reports it to the program.
func (nw *noteWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-nw.events; !ok {
			return nil
		}
		return notesChangedMsg{}
	}
}

func (nw *noteWatcher) Close() error {
	var err error
	nw.once.Do(func() {
		close(nw.done)
		err = nw.watcher.Close()
	})
	return err
}
