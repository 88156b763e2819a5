package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/cli"
	"github.com/alexanderramin/debtpad/internal/config"
	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/flock"
	"github.com/alexanderramin/debtpad/internal/flock/window"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/alexanderramin/debtpad/internal/theme"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.LogCalls {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	ledgerRepo := repository.NewSQLiteLedgerRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	bus := theme.NewBus()
	app := &cli.App{
		Ledger:    service.NewLedgerService(ledgerRepo, uow, observers...),
		Platforms: service.NewPlatformService(ledgerRepo, uow, observers...),
		Loans:     service.NewLoanService(ledgerRepo, uow, observers...),
		Theme:     service.NewThemeService(settingsRepo, uow, bus, observers...),
		Snapshot:  service.NewSnapshotService(ledgerRepo, uow, observers...),
		Catalog:   cat,
		Bus:       bus,
		Config:    cfg,
		Logger:    logger,
		RunWindow: func(ctx context.Context, f *flock.Flock, latch *theme.Latch,
			toggle func(context.Context) (domain.Theme, error), width, height int) error {
			opts := window.DefaultOptions()
			opts.Width, opts.Height = width, height
			return window.Run(ctx, f, latch, toggle, opts, logger)
		},
	}

	// Detect interactive terminal for the bare command.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
