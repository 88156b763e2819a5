package app

import (
	"time"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/shopspring/decimal"
)

// Dashboard is the top-level screen: global stats, the freedom estimate and
// one card per platform.
type Dashboard struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Stats       Stats          `json:"stats"`
	Freedom     FreedomPanel   `json:"freedom"`
	Cards       []PlatformCard `json:"cards"`
}

type Stats struct {
	TotalDebt     decimal.Decimal `json:"total_debt"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	Interest      decimal.Decimal `json:"interest"`
	Fines         decimal.Decimal `json:"fines"`
	PlatformCount int             `json:"platform_count"`
	LoanCount     int             `json:"loan_count"`
	OverdueCount  int             `json:"overdue_count"`
	HasOverdue    bool            `json:"has_overdue"`
}

type FreedomPanel struct {
	State    ledger.FreedomState `json:"state"`
	Income   decimal.Decimal     `json:"income"`
	Months   *decimal.Decimal    `json:"months,omitempty"`
	Progress float64             `json:"progress"`
	Quote    string              `json:"quote"`
}

type PlatformCard struct {
	PlatformID string          `json:"platform_id"`
	Icon       string          `json:"icon"`
	Name       string          `json:"name"`
	LoanCount  int             `json:"loan_count"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	Remaining  decimal.Decimal `json:"remaining"`
	Interest   decimal.Decimal `json:"interest"`
	Paid       decimal.Decimal `json:"paid"`
	Fines      decimal.Decimal `json:"fines"`
	Overdue    bool            `json:"overdue"`
	Actions    []Action        `json:"actions"`
}

// IsEmpty reports whether the ledger has no platforms yet.
func (d Dashboard) IsEmpty() bool { return len(d.Cards) == 0 }

// BuildDashboard derives the dashboard for l at now. Nothing derived here is
// written back to the ledger.
func BuildDashboard(l *domain.Ledger, now time.Time) Dashboard {
	global := ledger.SummarizeLedger(l, now)
	horizon := ledger.Freedom(global, l.Income)

	d := Dashboard{
		GeneratedAt: now,
		Stats: Stats{
			TotalDebt:     global.TotalDebt,
			TotalPaid:     global.TotalPaid,
			Remaining:     global.Remaining,
			Interest:      global.Interest,
			Fines:         global.Fines,
			PlatformCount: len(l.Platforms),
			LoanCount:     global.LoanCount,
			OverdueCount:  global.OverdueCount,
			HasOverdue:    global.HasOverdue,
		},
		Freedom: FreedomPanel{
			State:    horizon.State,
			Income:   l.Income,
			Months:   horizon.Months,
			Progress: horizon.Progress,
			Quote:    horizon.Quote,
		},
		Cards: make([]PlatformCard, 0, len(l.Platforms)),
	}

	for _, p := range l.Platforms {
		d.Cards = append(d.Cards, buildCard(p, now))
	}
	return d
}

func buildCard(p *domain.Platform, now time.Time) PlatformCard {
	s := ledger.Summarize(p.Loans, now)
	return PlatformCard{
		PlatformID: p.ID,
		Icon:       domain.CoalesceStr(p.Icon, domain.DefaultPlatformIcon),
		Name:       p.Name,
		LoanCount:  s.LoanCount,
		TotalDebt:  s.TotalDebt,
		Remaining:  s.Remaining,
		Interest:   s.Interest,
		Paid:       s.TotalPaid,
		Fines:      s.Fines,
		Overdue:    s.HasOverdue,
		Actions: []Action{
			{Kind: ActionOpenPlatform, Label: "Open", PlatformID: p.ID},
			{Kind: ActionDeletePlatform, Label: "Delete", PlatformID: p.ID, Confirm: true},
		},
	}
}
