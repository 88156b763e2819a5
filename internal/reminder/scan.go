// Package reminder periodically reports overdue loans.
package reminder

import (
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/shopspring/decimal"
)

// Finding is one overdue loan.
type Finding struct {
	PlatformID   string
	PlatformName string
	LoanID       string
	DueDate      time.Time
	DaysOverdue  int
	Owed         decimal.Decimal
}

// Scan lists every overdue loan in display order.
func Scan(l *domain.Ledger, now time.Time) []Finding {
	var out []Finding
	for _, p := range l.Platforms {
		for _, loan := range p.Loans {
			st := ledger.DeriveLoan(loan, now)
			if st.Status != domain.LoanOverdue {
				continue
			}
			out = append(out, Finding{
				PlatformID:   p.ID,
				PlatformName: p.Name,
				LoanID:       loan.ID,
				DueDate:      st.DueDate,
				DaysOverdue:  st.DaysOverdue,
				Owed:         st.Owed,
			})
		}
	}
	return out
}
