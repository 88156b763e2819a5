package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/alexanderramin/debtpad/internal/config"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/alexanderramin/debtpad/internal/theme"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ledger    service.LedgerService
	Platforms service.PlatformService
	Loans     service.LoanService
	Theme     service.ThemeService
	Snapshot  service.SnapshotService
	Catalog   *catalog.Catalog

	// Bus carries theme changes between the services, the file watcher and
	// the renderers.
	Bus    *theme.Bus
	Config config.Config
	Logger *slog.Logger

	// RunWindow opens the graphical flock window. Nil disables the flock
	// command's window.
	RunWindow WindowRunner

	// IsInteractive reports whether the bare command should start the TUI.
	IsInteractive func() bool
	// Now overrides the wall clock.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewRootCmd creates the top-level "debtpad" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "debtpad",
		Short:         "Personal debt ledger with a flocking background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(ctxOrBackground(cmd), app)
			}
			return printStatus(cmd, app)
		},
	}

	root.AddCommand(
		newPlatformCmd(app),
		newLoanCmd(app),
		newIncomeCmd(app),
		newStatusCmd(app),
		newThemeCmd(app),
		newCatalogCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newFlockCmd(app),
		newServeCmd(app),
		newTUICmd(app),
	)

	return root
}

func ctxOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printStatus(cmd *cobra.Command, app *App) error {
	d, err := app.Ledger.Dashboard(ctxOrBackground(cmd), app.now())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(d, 120))
	return nil
}
