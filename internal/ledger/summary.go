package ledger

import (
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary aggregates loans for a platform card or the whole ledger.
type Summary struct {
	// TotalDebt is every principal ever borrowed; payoff never lowers it.
	TotalDebt decimal.Decimal
	// TotalPaid is the sum of recorded payments across all loans.
	TotalPaid decimal.Decimal

	// OutstandingPrincipal includes accrued interest of unpaid loans.
	OutstandingPrincipal decimal.Decimal
	Interest             decimal.Decimal
	Fines                decimal.Decimal
	Remaining            decimal.Decimal

	HasOverdue bool

	LoanCount    int
	ActiveCount  int
	OverdueCount int
	PaidCount    int
}

// Summarize folds the derived state of each loan into a Summary. Active and
// overdue loans contribute identically; paid loans contribute nothing
// outstanding.
func Summarize(loans []*domain.Loan, now time.Time) Summary {
	s := Summary{
		TotalDebt:            decimal.Zero,
		TotalPaid:            decimal.Zero,
		OutstandingPrincipal: decimal.Zero,
		Interest:             decimal.Zero,
		Fines:                decimal.Zero,
	}

	for _, l := range loans {
		st := DeriveLoan(l, now)
		s.LoanCount++
		s.TotalDebt = s.TotalDebt.Add(l.Amount)
		s.TotalPaid = s.TotalPaid.Add(l.PaidAmount)

		switch st.Status {
		case domain.LoanPaid:
			s.PaidCount++
			continue
		case domain.LoanOverdue:
			s.OverdueCount++
			s.HasOverdue = true
		default:
			s.ActiveCount++
		}

		s.OutstandingPrincipal = s.OutstandingPrincipal.
			Add(st.PrincipalRemaining).
			Add(st.AccruedInterest)
		s.Interest = s.Interest.Add(st.AccruedInterest)
		s.Fines = s.Fines.Add(l.Penalty)
	}

	s.Remaining = s.OutstandingPrincipal.Add(s.Fines)
	return s
}

// SummarizeLedger aggregates every loan of every platform.
func SummarizeLedger(l *domain.Ledger, now time.Time) Summary {
	return Summarize(l.Loans(), now)
}
