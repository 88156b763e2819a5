package app

import (
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/shopspring/decimal"
)

// LoanList is the per-platform screen.
type LoanList struct {
	PlatformID string    `json:"platform_id"`
	Icon       string    `json:"icon"`
	Name       string    `json:"name"`
	Rows       []LoanRow `json:"rows"`
}

type LoanRow struct {
	LoanID      string            `json:"loan_id"`
	Status      domain.LoanStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	Amount      decimal.Decimal   `json:"amount"`
	Rate        decimal.Decimal   `json:"rate"`
	Date        string            `json:"date"`
	Term        int               `json:"term"`
	DueDate     string            `json:"due_date"`
	DaysOverdue int               `json:"days_overdue"`
	Interest    decimal.Decimal   `json:"interest"`
	Paid        decimal.Decimal   `json:"paid"`
	Penalty     decimal.Decimal   `json:"penalty"`
	Owed        decimal.Decimal   `json:"owed"`
	Actions     []Action          `json:"actions"`
}

// BuildLoanList derives one row per loan in display order.
func BuildLoanList(p *domain.Platform, now time.Time) LoanList {
	list := LoanList{
		PlatformID: p.ID,
		Icon:       p.Icon,
		Name:       p.Name,
		Rows:       make([]LoanRow, 0, len(p.Loans)),
	}
	if list.Icon == "" {
		list.Icon = domain.DefaultPlatformIcon
	}

	for _, l := range p.Loans {
		st := ledger.DeriveLoan(l, now)
		list.Rows = append(list.Rows, LoanRow{
			LoanID:      l.ID,
			Status:      st.Status,
			StatusLabel: st.Status.Label(),
			Amount:      l.Amount,
			Rate:        l.Rate,
			Date:        domain.FormatDay(l.Date),
			Term:        l.Term,
			DueDate:     domain.FormatDay(st.DueDate),
			DaysOverdue: st.DaysOverdue,
			Interest:    st.AccruedInterest,
			Paid:        l.PaidAmount,
			Penalty:     l.Penalty,
			Owed:        st.Owed,
			Actions: []Action{
				{Kind: ActionEditLoan, Label: "Edit", PlatformID: p.ID, LoanID: l.ID},
				{Kind: ActionDeleteLoan, Label: "Delete", PlatformID: p.ID, LoanID: l.ID, Confirm: true},
			},
		})
	}
	return list
}
