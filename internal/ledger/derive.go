// Package ledger derives display state from stored loan records. Nothing it
// computes is persisted: every value depends on the wall clock passed in.
package ledger

import (
	"math"
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

const hoursPerDay = 24

type LoanState struct {
	DueDate     time.Time
	IsOverdue   bool
	DaysOverdue int
	Status      domain.LoanStatus
	DaysElapsed float64

	// AccruedInterest is simple interest on the full principal from the
	// origination date to now. It keeps growing past the due date and is
	// not stopped by payoff.
	AccruedInterest decimal.Decimal

	// PrincipalRemaining is max(0, Amount - PaidAmount).
	PrincipalRemaining decimal.Decimal

	// Owed is what the loan adds to the outstanding burden: remaining
	// principal plus interest plus penalty, or zero once paid.
	Owed decimal.Decimal
}

// DeriveLoan computes the time-dependent state of a loan at now.
func DeriveLoan(loan *domain.Loan, now time.Time) LoanState {
	due := loan.DueDate()
	var daysElapsed float64
	if loan.IsDated() {
		daysElapsed = math.Max(0, now.Sub(loan.Date).Hours()/hoursPerDay)
	}

	st := LoanState{
		DueDate:     due,
		DaysElapsed: daysElapsed,
		Status:      domain.LoanActive,
	}

	st.AccruedInterest = loan.Amount.
		Mul(loan.Rate).Div(hundred).
		Mul(decimal.NewFromFloat(daysElapsed)).Div(daysPerYear)

	st.PrincipalRemaining = decimal.Max(decimal.Zero, loan.Amount.Sub(loan.PaidAmount))

	switch {
	case loan.IsPaid():
		st.Status = domain.LoanPaid
	case loan.IsDated() && now.After(due):
		st.Status = domain.LoanOverdue
		st.IsOverdue = true
		st.DaysOverdue = int(math.Ceil(now.Sub(due).Hours() / hoursPerDay))
	}

	if st.Status != domain.LoanPaid {
		st.Owed = st.PrincipalRemaining.Add(st.AccruedInterest).Add(loan.Penalty)
	}
	return st
}
