package theme

import (
	"sync/atomic"

	"github.com/alexanderramin/debtpad/internal/domain"
)

// Latch holds the most recently published theme for render loops that poll
// once per frame instead of reacting to the bus directly.
type Latch struct {
	dark        atomic.Bool
	unsubscribe func()
}

// NewLatch starts at initial and follows bus until Close. bus may be nil.
func NewLatch(bus *Bus, initial domain.Theme) *Latch {
	l := &Latch{unsubscribe: func() {}}
	l.dark.Store(initial.IsDark())
	if bus != nil {
		l.unsubscribe = bus.Subscribe(func(c Change) { l.dark.Store(c.IsDark) })
	}
	return l
}

func (l *Latch) Dark() bool { return l.dark.Load() }

// Set records a change made by the loop itself.
func (l *Latch) Set(dark bool) { l.dark.Store(dark) }

func (l *Latch) Close() { l.unsubscribe() }
