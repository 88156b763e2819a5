package ledger

import (
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func loanAt(daysAgo int, amount, rate float64, term int) *domain.Loan {
	return &domain.Loan{
		ID:         "l",
		Amount:     dec(amount),
		Rate:       dec(rate),
		Date:       domain.Today(refNow).AddDate(0, 0, -daysAgo),
		Term:       term,
		Penalty:    decimal.Zero,
		PaidAmount: decimal.Zero,
	}
}

func TestDeriveLoan_ActiveWithinTerm(t *testing.T) {
	// 100 days is past a 3-month term, so use 4 months to stay active.
	l := loanAt(100, 1000, 12, 4)
	now := domain.Today(refNow)

	st := DeriveLoan(l, now)

	assert.Equal(t, domain.LoanActive, st.Status)
	assert.False(t, st.IsOverdue)
	assert.Zero(t, st.DaysOverdue)
	assert.InDelta(t, 32.88, st.AccruedInterest.InexactFloat64(), 0.01)
}

func TestDeriveLoan_OverduePastTerm(t *testing.T) {
	l := loanAt(100, 1000, 12, 1)
	now := domain.Today(refNow)

	st := DeriveLoan(l, now)

	assert.Equal(t, domain.LoanOverdue, st.Status)
	assert.True(t, st.IsOverdue)
	assert.Greater(t, st.DaysOverdue, 0)
	// Interest is independent of status.
	active := DeriveLoan(loanAt(100, 1000, 12, 4), now)
	assert.True(t, active.AccruedInterest.Equal(st.AccruedInterest))
}

func TestDeriveLoan_FullyPaidRegardlessOfTime(t *testing.T) {
	l := loanAt(400, 1000, 12, 1)
	l.PaidAmount = dec(1000)
	l.Penalty = dec(50)

	st := DeriveLoan(l, refNow)

	assert.Equal(t, domain.LoanPaid, st.Status)
	assert.False(t, st.IsOverdue)
	assert.True(t, st.Owed.IsZero())
	assert.True(t, st.AccruedInterest.IsPositive(), "interest keeps accruing after payoff")
}

func TestDeriveLoan_OverpaidCountsAsPaid(t *testing.T) {
	l := loanAt(10, 100, 5, 1)
	l.PaidAmount = dec(150)

	st := DeriveLoan(l, refNow)
	assert.Equal(t, domain.LoanPaid, st.Status)
	assert.True(t, st.PrincipalRemaining.IsZero())
}

func TestDeriveLoan_OverdueByMinutesIsOneDay(t *testing.T) {
	l := &domain.Loan{Amount: dec(10), Date: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), Term: 1}

	st := DeriveLoan(l, time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC))
	assert.Equal(t, domain.LoanOverdue, st.Status)
	assert.Equal(t, 1, st.DaysOverdue)

	st = DeriveLoan(l, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.LoanActive, st.Status, "due instant itself is not overdue")
}

func TestDeriveLoan_InterestZeroCases(t *testing.T) {
	zeroRate := loanAt(200, 1000, 0, 12)
	assert.True(t, DeriveLoan(zeroRate, refNow).AccruedInterest.IsZero())

	sameDay := loanAt(0, 1000, 18, 12)
	assert.True(t, DeriveLoan(sameDay, sameDay.Date).AccruedInterest.IsZero())

	future := loanAt(-30, 1000, 18, 12)
	st := DeriveLoan(future, refNow)
	assert.True(t, st.AccruedInterest.IsZero(), "no negative interest before origination")
	assert.Zero(t, st.DaysElapsed)
}

func TestDeriveLoan_InterestMonotonicInNow(t *testing.T) {
	l := loanAt(30, 2500, 7.5, 6)

	prev := decimal.Zero
	for d := -10; d <= 400; d += 7 {
		st := DeriveLoan(l, l.Date.AddDate(0, 0, d))
		require.True(t, st.AccruedInterest.GreaterThanOrEqual(prev), "day %d", d)
		prev = st.AccruedInterest
	}
}

func TestDeriveLoan_OwedIncludesPenaltyAndInterest(t *testing.T) {
	l := loanAt(365, 1000, 10, 24)
	l.PaidAmount = dec(400)
	l.Penalty = dec(25)

	st := DeriveLoan(l, domain.Today(refNow))

	assert.InDelta(t, 600.0, st.PrincipalRemaining.InexactFloat64(), 1e-9)
	assert.InDelta(t, 100.0, st.AccruedInterest.InexactFloat64(), 1e-6)
	assert.InDelta(t, 725.0, st.Owed.InexactFloat64(), 1e-6)
}

func TestDeriveLoan_UndatedIsActiveWithoutInterest(t *testing.T) {
	l := loanAt(0, 1000, 12, 3)
	l.Date = time.Time{}
	l.Penalty = dec(20)

	st := DeriveLoan(l, refNow)

	assert.Equal(t, domain.LoanActive, st.Status)
	assert.Zero(t, st.DaysOverdue)
	assert.True(t, st.DueDate.IsZero())
	assert.True(t, st.AccruedInterest.IsZero())
	assert.InDelta(t, 1020.0, st.Owed.InexactFloat64(), 1e-9)
}
