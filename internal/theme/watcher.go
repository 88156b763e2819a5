package theme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/fsnotify/fsnotify"
)

// Source reads the currently stored theme.
type Source func(ctx context.Context) (domain.Theme, error)

// Watcher follows theme toggles made by other processes sharing the same
// database. It watches the database directory and re-reads the preference
// whenever the database or its WAL is written, publishing on the bus only
// when the value actually changed.
type Watcher struct {
	dbPath string
	read   Source
	bus    *Bus
	logger *slog.Logger

	mu   sync.Mutex
	last domain.Theme
}

func NewWatcher(dbPath string, read Source, bus *Bus, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{dbPath: dbPath, read: read, bus: bus, logger: logger}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.dbPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.dbPath), err)
	}

	current, err := w.read(ctx)
	if err != nil {
		return fmt.Errorf("reading theme: %w", err)
	}
	w.setLast(current)

	// Local toggles reach subscribers directly; remember them so the
	// resulting file write is not announced twice.
	unsubscribe := w.bus.Subscribe(func(c Change) { w.setLast(c.Theme()) })
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.check(ctx)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), filepath.Base(w.dbPath))
}

func (w *Watcher) check(ctx context.Context) {
	t, err := w.read(ctx)
	if err != nil {
		w.logger.Warn("theme watcher read failed", "error", err)
		return
	}

	w.mu.Lock()
	changed := t != w.last
	w.last = t
	w.mu.Unlock()

	if changed {
		w.logger.Debug("theme changed externally", "theme", string(t))
		w.bus.Publish(ChangeOf(t))
	}
}

func (w *Watcher) setLast(t domain.Theme) {
	w.mu.Lock()
	w.last = t
	w.mu.Unlock()
}
