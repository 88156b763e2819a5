package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/httpapi"
	"github.com/alexanderramin/debtpad/internal/reminder"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr     string
		schedule string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and run the overdue reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(ctxOrBackground(cmd))
			defer cancel()
			logger := app.logger()

			if schedule != "" {
				sched := reminder.NewScheduler(app.Ledger, logger)
				if err := sched.Register(schedule); err != nil {
					return err
				}
				if _, err := sched.RunOnce(ctx); err != nil {
					logger.Warn("initial overdue scan failed", "error", err)
				}
				sched.Start()
				defer func() {
					stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
					defer stop()
					sched.Stop(stopCtx)
				}()
			}

			srv := httpapi.New(httpapi.Deps{
				Ledger:    app.Ledger,
				Platforms: app.Platforms,
				Loans:     app.Loans,
				Theme:     app.Theme,
				Snapshot:  app.Snapshot,
				Catalog:   app.Catalog,
			}, logger)

			// The watcher only logs its failures; the server ending stops it.
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				defer cancel()
				return srv.ListenAndServe(gctx, addr)
			})
			g.Go(func() error {
				watchTheme(gctx, app)
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.HTTPAddr, "Listen address")
	cmd.Flags().StringVar(&schedule, "reminder", app.Config.ReminderSchedule,
		`Cron schedule for the overdue scan, e.g. "@every 1h"; empty disables it`)
	return cmd
}
