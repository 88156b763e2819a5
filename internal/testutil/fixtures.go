package testutil

import (
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform options
type PlatformOption func(*domain.Platform)

func WithIcon(icon string) PlatformOption {
	return func(p *domain.Platform) {
		p.Icon = icon
	}
}

func WithLoans(loans ...*domain.Loan) PlatformOption {
	return func(p *domain.Platform) {
		p.Loans = append(p.Loans, loans...)
	}
}

func NewTestPlatform(name string, opts ...PlatformOption) *domain.Platform {
	p := &domain.Platform{
		ID:    uuid.New().String(),
		Name:  name,
		Icon:  domain.DefaultPlatformIcon,
		Loans: []*domain.Loan{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Loan options
type LoanOption func(*domain.Loan)

func WithRate(pct float64) LoanOption {
	return func(l *domain.Loan) {
		l.Rate = decimal.NewFromFloat(pct)
	}
}

func WithTerm(months int) LoanOption {
	return func(l *domain.Loan) {
		l.Term = months
	}
}

func WithDate(d time.Time) LoanOption {
	return func(l *domain.Loan) {
		l.Date = domain.Today(d)
	}
}

func WithPenalty(v float64) LoanOption {
	return func(l *domain.Loan) {
		l.Penalty = decimal.NewFromFloat(v)
	}
}

func WithPaid(v float64) LoanOption {
	return func(l *domain.Loan) {
		l.PaidAmount = decimal.NewFromFloat(v)
	}
}

// NewTestLoan returns a 12-month interest-free loan originated today.
func NewTestLoan(amount float64, opts ...LoanOption) *domain.Loan {
	l := &domain.Loan{
		ID:         uuid.New().String(),
		Amount:     decimal.NewFromFloat(amount),
		Rate:       decimal.Zero,
		Date:       domain.Today(time.Now()),
		Term:       12,
		Penalty:    decimal.Zero,
		PaidAmount: decimal.Zero,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewTestLedger builds a ledger from the given income and platforms.
func NewTestLedger(income float64, platforms ...*domain.Platform) *domain.Ledger {
	l := domain.NewLedger()
	l.Income = decimal.NewFromFloat(income)
	l.Platforms = append(l.Platforms, platforms...)
	return l
}
