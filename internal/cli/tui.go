package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctxOrBackground(cmd), app)
		},
	}
}

func runTUI(ctx context.Context, app *App) error {
	return runTUIWith(ctx, app, nil)
}

// runTUIWith starts the full-screen program. When first is non-nil it is
// pushed on top of the dashboard before the program starts.
func runTUIWith(ctx context.Context, app *App, first func(*SharedState) View) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newAppModel(app)
	if first != nil {
		m.viewStack = append(m.viewStack, first(m.state))
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if app.Bus != nil {
		unsubscribe := app.Bus.Subscribe(func(c theme.Change) {
			go p.Send(themeChangedMsg{dark: c.IsDark})
		})
		defer unsubscribe()
	}
	go watchTheme(ctx, app)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// watchTheme follows theme changes made by other processes until ctx ends.
// In-memory databases are private to this process so there is nothing to
// watch.
func watchTheme(ctx context.Context, app *App) {
	path := app.Config.DBPath
	if app.Bus == nil || path == "" || path == db.MemoryPath {
		return
	}
	w := theme.NewWatcher(path, app.Theme.Current, app.Bus, app.logger())
	if err := w.Run(ctx); err != nil {
		app.logger().Warn("theme watcher stopped", "error", err)
	}
}
