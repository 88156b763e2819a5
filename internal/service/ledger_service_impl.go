package service

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/db"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	store ledgerStore
}

func NewLedgerService(ledgers repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) LedgerService {
	return &ledgerService{store: newLedgerStore(ledgers, uow, observers)}
}

func (s *ledgerService) Load(ctx context.Context) (*domain.Ledger, error) {
	return s.store.load(ctx)
}

// SetIncome stores the monthly income. Negative values are clamped to zero
// so the freedom estimate never divides by a negative income.
func (s *ledgerService) SetIncome(ctx context.Context, income decimal.Decimal) (err error) {
	startedAt := time.Now()
	defer func() {
		s.store.observe(ctx, "set-income", startedAt, map[string]any{"income": income.String()}, err)
	}()

	if income.IsNegative() {
		income = decimal.Zero
	}
	return s.store.mutate(ctx, func(l *domain.Ledger) error {
		l.Income = income
		return nil
	})
}

func (s *ledgerService) Dashboard(ctx context.Context, now time.Time) (app.Dashboard, error) {
	l, err := s.store.load(ctx)
	if err != nil {
		return app.Dashboard{}, err
	}
	return app.BuildDashboard(l, now), nil
}
