package theme

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeStore struct {
	mu sync.Mutex
	t  domain.Theme
}

func (f *fakeStore) set(t domain.Theme) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

func (f *fakeStore) read(context.Context) (domain.Theme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcher_PublishesExternalToggle(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "debtpad.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("x"), 0o644))

	store := &fakeStore{t: domain.ThemeDark}
	bus := NewBus()
	got := make(chan Change, 4)
	bus.Subscribe(func(c Change) { got <- c })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := NewWatcher(dbPath, store.read, bus, quietLogger())
	go func() { done <- w.Run(ctx) }()

	// Wait until the initial read has happened before changing the store.
	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.last == domain.ThemeDark
	}, time.Second, 5*time.Millisecond)

	store.set(domain.ThemeLight)
	require.Eventually(t, func() bool {
		_ = os.WriteFile(dbPath+"-wal", []byte(time.Now().String()), 0o644)
		select {
		case c := <-got:
			assert.False(t, c.IsDark)
			return true
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresUnchangedTheme(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "debtpad.db")
	store := &fakeStore{t: domain.ThemeLight}
	bus := NewBus()
	w := NewWatcher(dbPath, store.read, bus, quietLogger())

	published := 0
	bus.Subscribe(func(Change) { published++ })

	w.setLast(domain.ThemeLight)
	w.check(context.Background())
	assert.Zero(t, published)

	store.set(domain.ThemeDark)
	w.check(context.Background())
	assert.Equal(t, 1, published)
}

func TestWatcher_MissingDirectoryFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "debtpad.db"), (&fakeStore{}).read, NewBus(), quietLogger())
	err := w.Run(context.Background())
	assert.Error(t, err)
}
