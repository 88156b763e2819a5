// Package theme carries the light/dark notification between the component
// that toggles it and the animators that repaint with it.
package theme

import (
	"sync"

	"github.com/alexanderramin/debtpad/internal/domain"
)

// Change is published whenever the theme is toggled.
type Change struct {
	IsDark bool
}

// Theme converts the notification back to the stored preference.
func (c Change) Theme() domain.Theme {
	if c.IsDark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// ChangeOf builds the notification for t.
func ChangeOf(t domain.Theme) Change {
	return Change{IsDark: t.IsDark()}
}

// Bus fans a Change out to every subscriber. Subscribers run synchronously
// on the publishing goroutine, outside the bus lock. A Change equal to the
// last one delivered is dropped, so a toggle announced by both the service
// and the file watcher reaches subscribers once.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Change)

	last Change
	sent bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Change))}
}

// Subscribe registers fn and returns a func that removes it.
func (b *Bus) Subscribe(fn func(Change)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers c and reports whether it was new.
func (b *Bus) Publish(c Change) bool {
	b.mu.Lock()
	if b.sent && c == b.last {
		b.mu.Unlock()
		return false
	}
	b.last, b.sent = c, true
	fns := make([]func(Change), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
	return true
}
