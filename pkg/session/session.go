// Package session coordinates the file store, the editor-model cache, and
// the single active document. Every user action funnels through a Session,
// which leaves store and cache mutually consistent before returning.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/log"

	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/editor"
	"github.com/miniide/miniide-cli/pkg/logging"
	"github.com/miniide/miniide-cli/pkg/models"
	"github.com/miniide/miniide-cli/pkg/store"
	"github.com/miniide/miniide-cli/pkg/tree"
)

// DefaultAutosaveInterval is the quiet period after the last edit before a
// pending autosave fires.
const DefaultAutosaveInterval = 900 * time.Millisecond

var (
	// ErrConflict is returned when a create or rename would duplicate an id.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when the target of an operation is absent.
	ErrNotFound = errors.New("not found")
)

// Options tune session behavior.
type Options struct {
	// AutosaveInterval overrides the debounce quiet period; zero selects
	// the default.
	AutosaveInterval time.Duration
}

// Session owns the workspace state for one editing session. All mutators are
// safe to call from the autosave timer goroutine as well as the event loop.
type Session struct {
	mu      sync.Mutex
	store   *store.Store
	cache   *editor.Cache
	widget  editor.Widget
	console console.Console
	logger  *log.Logger

	current  string
	schedule func(func())
}

// New builds a session over an opened store, binds the widget to the first
// record, and eagerly materializes models for the existing collection.
func New(st *store.Store, w editor.Widget, c console.Console, opts Options) (*Session, error) {
	interval := opts.AutosaveInterval
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	s := &Session{
		store:    st,
		cache:    editor.NewCache(),
		widget:   w,
		console:  c,
		logger:   logging.Get("session"),
		schedule: debounce.New(interval),
	}

	records := st.List()
	if len(records) == 0 {
		// The store seeds itself, so this only happens with a corrupted
		// blob; synthesize the sentinel rather than start empty.
		sentinel := models.Sentinel()
		if err := st.Upsert(sentinel); err != nil {
			return nil, fmt.Errorf("initialize sentinel: %w", err)
		}
		records = st.List()
	}

	for _, r := range records {
		s.cache.GetOrCreate(r.ID, r.Content, r.Language)
	}

	s.current = records[0].ID
	s.bindCurrent()
	w.OnContentChange(s.OnWidgetEdit)
	return s, nil
}

// CurrentID returns the active document's id.
func (s *Session) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentFile returns the active document's record.
func (s *Session) CurrentFile() (models.FileRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(s.current)
}

// Records returns the collection in stored order.
func (s *Session) Records() []models.FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

// Tree derives the folder/file tree for the current collection.
func (s *Session) Tree() *tree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tree.Build(s.store.List())
}

// CollapsedFolders returns the persisted collapse markers.
func (s *Session) CollapsedFolders() map[string]bool {
	return s.store.CollapsedSet()
}

// Model returns the live model for id, if materialized.
func (s *Session) Model(id string) *editor.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(id)
}

// SetCurrent makes id the active document and binds its model to the widget,
// creating the model from the persisted record on first access.
func (s *Session) SetCurrent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Exists(id) {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	s.current = id
	s.bindCurrent()
	return nil
}

// bindCurrent binds the widget to the current record's model. Callers hold
// the mutex.
func (s *Session) bindCurrent() {
	rec, ok := s.store.Get(s.current)
	if !ok {
		return
	}
	m := s.cache.GetOrCreate(rec.ID, rec.Content, rec.Language)
	s.widget.Bind(m)
	s.widget.SetLanguage(rec.Language)
}

// OnWidgetEdit propagates a widget content change into the active record and
// schedules the debounced autosave. Invoked by the widget on every edit.
func (s *Session) OnWidgetEdit(text string) {
	s.mu.Lock()
	if m := s.cache.Get(s.current); m != nil {
		m.SetValue(text)
	}
	s.store.SetContent(s.current, text)
	s.mu.Unlock()

	s.schedule(s.autosave)
}

func (s *Session) autosave() {
	s.mu.Lock()
	err := s.store.Save()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("autosave failed", "error", err)
		s.console.Append(console.KindError, fmt.Sprintf("Auto-save failed: %v", err))
		return
	}
	s.console.Append(console.KindLog, "Auto-saved")
}

// Flush persists immediately, used at quit so a pending debounce is not
// lost. The timer may still fire afterwards; saving twice is harmless.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save()
}

// SaveAll persists the collection on explicit request.
func (s *Session) SaveAll() {
	s.mu.Lock()
	err := s.store.Save()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("save failed", "error", err)
		s.console.Append(console.KindError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	s.console.Append(console.KindLog, "Saved")
}

// SetLanguage applies an explicit language override to a record, retagging
// its live model and re-binding when it is the current document.
func (s *Session) SetLanguage(id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("set language on %s: %w", id, ErrNotFound)
	}
	rec.Language = models.NormalizeLanguage(tag)
	if err := s.store.Upsert(rec); err != nil {
		s.reportSaveError(err)
	}
	if m := s.cache.Get(id); m != nil {
		m.SetLanguage(rec.Language)
	}
	if s.current == id {
		s.bindCurrent()
	}
	return nil
}

// ToggleFolder flips and persists a folder's collapse marker.
func (s *Session) ToggleFolder(folderPath string) {
	collapsed := s.store.Collapsed(folderPath)
	if err := s.store.SetCollapsed(folderPath, !collapsed); err != nil {
		s.logger.Warn("persist folder state failed", "folder", folderPath, "error", err)
	}
}

// reportSaveError surfaces a persistence failure without aborting the
// operation; the in-memory state stays authoritative. Callers hold the
// mutex, so the console line is appended directly.
func (s *Session) reportSaveError(err error) {
	s.logger.Error("persist failed", "error", err)
	s.console.Append(console.KindError, fmt.Sprintf("Save failed: %v", err))
}
