package restore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

// DefaultFileName is the geometry file under the config directory.
const DefaultFileName = "geometry.yaml"

// storeFile is the on-disk document.
type storeFile struct {
	Records map[string]Record `yaml:"records"`
}

// Store holds geometry records keyed by window and mode and persists them to
// one YAML file. Saves are write-through: every update rewrites the file.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	records map[string]Record
}

// NewStore opens (or creates) the store at path. A missing file is an empty
// store, not an error. A nil logger falls back to slog.Default().
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:    path,
		logger:  logger,
		records: make(map[string]Record),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the file, replacing the in-memory records. Used at startup
// and when the watcher reports an external change.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read geometry file: %w", err)
	}

	var doc storeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse geometry file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = doc.Records
	if s.records == nil {
		s.records = make(map[string]Record)
	}
	return nil
}

// Geometry returns the saved geometry for a window and mode.
func (s *Store) Geometry(windowID string, mode layout.WindowMode) (geometry.WindowGeometry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordKey(windowID, mode)]
	if !ok {
		return geometry.WindowGeometry{}, false
	}
	// A tabs-only placeholder carries no frame to restore.
	if rec.FrameWidth == 0 || rec.FrameHeight == 0 {
		return geometry.WindowGeometry{}, false
	}
	return rec.Geometry(), true
}

// Put saves the geometry for a window and mode and rewrites the file. The
// record's saved tabs are carried over.
func (s *Store) Put(windowID string, mode layout.WindowMode, g geometry.WindowGeometry) {
	s.mu.Lock()
	key := recordKey(windowID, mode)
	rec := NewRecord(windowID, mode, g)
	if old, ok := s.records[key]; ok {
		rec.LeadingTab = old.LeadingTab
		rec.TrailingTab = old.TrailingTab
	}
	s.records[key] = rec
	err := s.flushLocked()
	s.mu.Unlock()

	if err != nil {
		// Persistence failures must never break a transition.
		s.logger.Error("failed to save window geometry",
			"window", windowID, "mode", mode, "error", err)
	}
}

// PutTabs records the active sidebar tabs for a window and mode. A record
// with no saved geometry yet is created with zero geometry and filled in by a
// later Put.
func (s *Store) PutTabs(windowID string, mode layout.WindowMode, leading, trailing layout.Tab) {
	s.mu.Lock()
	key := recordKey(windowID, mode)
	rec, ok := s.records[key]
	if !ok {
		rec = NewRecord(windowID, mode, geometry.WindowGeometry{})
	}
	rec.LeadingTab = string(leading)
	rec.TrailingTab = string(trailing)
	s.records[key] = rec
	err := s.flushLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to save sidebar tabs",
			"window", windowID, "mode", mode, "error", err)
	}
}

// Tabs returns the saved sidebar tabs for a window and mode.
func (s *Store) Tabs(windowID string, mode layout.WindowMode) (leading, trailing layout.Tab, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := s.records[recordKey(windowID, mode)]
	if !found {
		return layout.TabNone, layout.TabNone, false
	}
	leading, trailing = rec.Tabs()
	return leading, trailing, true
}

// Forget drops all records of a window, for when it closes for good.
func (s *Store) Forget(windowID string) {
	s.mu.Lock()
	for key, rec := range s.records {
		if rec.WindowID == windowID {
			delete(s.records, key)
		}
	}
	err := s.flushLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to save window geometry", "window", windowID, "error", err)
	}
}

// LatestWindowID returns the window whose record was saved most recently,
// for reclaiming identity across launches.
func (s *Store) LatestWindowID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best string
	var bestAt time.Time
	for _, rec := range s.records {
		if rec.SavedAt.After(bestAt) {
			bestAt = rec.SavedAt
			best = rec.WindowID
		}
	}
	return best, best != ""
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// ForWindow binds the store to one window, yielding the narrow save hook the
// transition pipeline uses.
func (s *Store) ForWindow(windowID string) *WindowStore {
	return &WindowStore{store: s, windowID: windowID}
}

// flushLocked writes the document atomically. Callers hold s.mu.
func (s *Store) flushLocked() error {
	data, err := yaml.Marshal(storeFile{Records: s.records})
	if err != nil {
		return fmt.Errorf("failed to marshal geometry records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".geometry-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp geometry file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write geometry file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close geometry file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// WindowStore is a Store scoped to one window ID.
type WindowStore struct {
	store    *Store
	windowID string
}

// SaveGeometry persists the geometry for the bound window in the given mode.
func (w *WindowStore) SaveGeometry(mode layout.WindowMode, g geometry.WindowGeometry) {
	w.store.Put(w.windowID, mode, g)
}

// Geometry returns the saved geometry of the bound window for a mode.
func (w *WindowStore) Geometry(mode layout.WindowMode) (geometry.WindowGeometry, bool) {
	return w.store.Geometry(w.windowID, mode)
}

// SaveTabs records the bound window's active sidebar tabs for a mode.
func (w *WindowStore) SaveTabs(mode layout.WindowMode, leading, trailing layout.Tab) {
	w.store.PutTabs(w.windowID, mode, leading, trailing)
}

// Tabs returns the bound window's saved sidebar tabs for a mode.
func (w *WindowStore) Tabs(mode layout.WindowMode) (leading, trailing layout.Tab, ok bool) {
	return w.store.Tabs(w.windowID, mode)
}

func recordKey(windowID string, mode layout.WindowMode) string {
	return windowID + "/" + mode.String()
}
