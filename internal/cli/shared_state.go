package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Theme is the last theme seen, from startup or a bus notification.
	Theme domain.Theme

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app, Theme: domain.ThemeDark}
	if app.Theme != nil {
		if t, err := app.Theme.Current(context.Background()); err == nil {
			s.Theme = t
		}
	}
	return s
}

// Now is the clock every derived value is computed against.
func (s *SharedState) Now() time.Time {
	return s.App.now()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
