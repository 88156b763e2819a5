package ledger

import (
	"testing"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, refNow)
	assert.True(t, s.TotalDebt.IsZero())
	assert.True(t, s.Remaining.IsZero())
	assert.False(t, s.HasOverdue)
	assert.Zero(t, s.LoanCount)
}

func TestSummarize_MixedStatuses(t *testing.T) {
	now := domain.Today(refNow)

	active := loanAt(365, 1000, 10, 24) // interest 100
	active.PaidAmount = dec(200)
	active.Penalty = dec(10)

	overdue := loanAt(365, 500, 0, 1)
	overdue.Penalty = dec(30)

	paid := loanAt(365, 300, 20, 1)
	paid.PaidAmount = dec(300)
	paid.Penalty = dec(99)

	s := Summarize([]*domain.Loan{active, overdue, paid}, now)

	assert.InDelta(t, 1800.0, s.TotalDebt.InexactFloat64(), 1e-9)
	assert.InDelta(t, 500.0, s.TotalPaid.InexactFloat64(), 1e-9)
	assert.InDelta(t, 800+100+500.0, s.OutstandingPrincipal.InexactFloat64(), 1e-6)
	assert.InDelta(t, 100.0, s.Interest.InexactFloat64(), 1e-6)
	assert.InDelta(t, 40.0, s.Fines.InexactFloat64(), 1e-9, "paid loans contribute no fines")
	assert.InDelta(t, 1440.0, s.Remaining.InexactFloat64(), 1e-6)
	assert.True(t, s.HasOverdue)
	assert.Equal(t, 3, s.LoanCount)
	assert.Equal(t, 1, s.ActiveCount)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 1, s.PaidCount)
}

func TestSummarize_TotalDebtIgnoresPayments(t *testing.T) {
	l := loanAt(50, 1000, 12, 6)
	before := Summarize([]*domain.Loan{l}, refNow)

	l.PaidAmount = dec(1000)
	after := Summarize([]*domain.Loan{l}, refNow)

	assert.True(t, before.TotalDebt.Equal(after.TotalDebt))
	assert.True(t, after.Remaining.IsZero())
}

func TestSummarizeLedger_SpansPlatforms(t *testing.T) {
	l := &domain.Ledger{Platforms: []*domain.Platform{
		{ID: "a", Loans: []*domain.Loan{loanAt(0, 100, 0, 1)}},
		{ID: "b", Loans: []*domain.Loan{loanAt(0, 200, 0, 1)}},
	}}
	s := SummarizeLedger(l, domain.Today(refNow))
	assert.True(t, s.TotalDebt.Equal(decimal.NewFromInt(300)))
}
