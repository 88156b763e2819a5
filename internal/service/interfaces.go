package service

import (
	"context"
	"time"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerService interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	SetIncome(ctx context.Context, income decimal.Decimal) error
	Dashboard(ctx context.Context, now time.Time) (app.Dashboard, error)
}

type PlatformService interface {
	Create(ctx context.Context, name, icon string) (*domain.Platform, error)
	Update(ctx context.Context, id, name, icon string) (*domain.Platform, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Platform, error)
	List(ctx context.Context) ([]*domain.Platform, error)
	Resolve(ctx context.Context, input string) (*domain.Platform, error)
	LoanList(ctx context.Context, id string, now time.Time) (app.LoanList, error)
}

type LoanService interface {
	Create(ctx context.Context, platformID string, in LoanInput) (*domain.Loan, error)
	Update(ctx context.Context, loanID string, in LoanInput) (*domain.Loan, error)
	Delete(ctx context.Context, loanID string) error
	Get(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByPlatform(ctx context.Context, platformID string) ([]*domain.Loan, error)
	Resolve(ctx context.Context, input string) (*domain.Loan, error)
}

type ThemeService interface {
	Current(ctx context.Context) (domain.Theme, error)
	Set(ctx context.Context, t domain.Theme) error
	Toggle(ctx context.Context) (domain.Theme, error)
}

type SnapshotService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (*domain.Ledger, error)
}
