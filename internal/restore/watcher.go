package restore

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher watches the geometry file for external changes and reloads the
// store after a short debounce, so hand edits and other processes are picked
// up without restarting.
type Watcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	logger  *slog.Logger

	changes chan struct{}
	done    chan struct{}

	// mu guards debounceTimer, reset by the watch goroutine and stopped by
	// Stop from the caller's goroutine.
	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for the store's file.
func NewWatcher(store *Store, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		store:   store,
		logger:  logger,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the directory containing the geometry file. The
// directory is watched rather than the file so atomic rename saves keep the
// watch alive.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.store.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	w.watcher.Close()
}

// Changes signals after the store reloaded due to an external change.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// watch is the main event loop.
func (w *Watcher) watch() {
	target := filepath.Base(w.store.Path())

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Reset debounce timer
			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			w.logger.Error("geometry watcher error", "error", err)
		}
	}
}

// reload refreshes the store and notifies listeners.
func (w *Watcher) reload() {
	if err := w.store.Reload(); err != nil {
		w.logger.Error("failed to reload geometry file", "error", err)
		return
	}

	select {
	case w.changes <- struct{}{}:
	default:
	}
}
