package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/flock"
	"github.com/alexanderramin/debtpad/internal/theme"
	"github.com/spf13/cobra"
)

// WindowRunner opens a width×height window animating f until it is closed
// or ctx is cancelled. The window reads the theme from latch each frame and
// flips it with toggle.
type WindowRunner func(ctx context.Context, f *flock.Flock, latch *theme.Latch,
	toggle func(context.Context) (domain.Theme, error), width, height int) error

func newFlockCmd(app *App) *cobra.Command {
	var (
		width, height int
		terminal      bool
	)

	cmd := &cobra.Command{
		Use:   "flock",
		Short: "Open the animated flock background",
		Long: "Open the animated flock background in a window. Move the pointer to scatter the flock, " +
			"press T to toggle the theme and Esc to close.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(ctxOrBackground(cmd))
			defer cancel()

			if terminal || app.RunWindow == nil {
				return runTUIWith(ctx, app, func(s *SharedState) View { return newFlockView(s) })
			}
			if width <= 0 || height <= 0 {
				return errors.New("--width and --height must be positive")
			}

			t, err := app.Theme.Current(ctx)
			if err != nil {
				return err
			}
			latch := theme.NewLatch(app.Bus, t)
			defer latch.Close()
			go watchTheme(ctx, app)

			f := newFlock(app.Config, float64(width), float64(height))
			f.SetDark(t.IsDark())
			return app.RunWindow(ctx, f, latch, app.Theme.Toggle, width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1024, "Window width in pixels")
	cmd.Flags().IntVar(&height, "height", 640, "Window height in pixels")
	cmd.Flags().BoolVar(&terminal, "terminal", false, "Animate in the terminal instead of a window")
	return cmd
}
