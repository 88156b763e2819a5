package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/robfig/cron/v3"
)

// LedgerLoader is the read side of the ledger service.
type LedgerLoader interface {
	Load(ctx context.Context) (*domain.Ledger, error)
}

// Scheduler runs the overdue scan on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	loader LedgerLoader
	logger *slog.Logger
	now    func() time.Time
}

func NewScheduler(loader LedgerLoader, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		loader: loader,
		logger: logger,
		now:    time.Now,
	}
}

// Register adds the overdue scan under spec, a standard five-field cron
// expression or a descriptor such as "@every 1h".
func (s *Scheduler) Register(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("overdue scan failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the schedule and waits for a running scan to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce scans the ledger now and logs one line per overdue loan.
func (s *Scheduler) RunOnce(ctx context.Context) ([]Finding, error) {
	l, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	findings := Scan(l, s.now())
	for _, f := range findings {
		s.logger.InfoContext(ctx, "loan overdue",
			"platform", f.PlatformName,
			"platform_id", f.PlatformID,
			"loan_id", f.LoanID,
			"due_date", f.DueDate.Format(domain.DateLayout),
			"days_overdue", f.DaysOverdue,
			"outstanding", f.Owed.StringFixed(2),
		)
	}
	s.logger.DebugContext(ctx, "overdue scan complete", "overdue", len(findings))
	return findings, nil
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
