package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero", "0", "￥0.00"},
		{"grouped", "1234.56", "￥1,234.56"},
		{"rounds", "99.999", "￥100.00"},
		{"millions", "2500000", "￥2,500,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		wantPct string
	}{
		{"empty", 0, "  0%"},
		{"half", 0.5, " 50%"},
		{"full", 1, "100%"},
		{"over clamps", 1.7, "100%"},
		{"negative clamps", -0.2, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.True(t, strings.HasSuffix(got, tt.wantPct), got)
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	bar0 := RenderCompactBar(0.0, 4, true)
	assert.Contains(t, bar0, emptyBlock)
	assert.NotContains(t, bar0, filledBlock)

	bar100 := RenderCompactBar(1.0, 4, true)
	assert.Contains(t, bar100, filledBlock)
	assert.NotContains(t, bar100, "%")
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, StatusPill(domain.LoanOverdue, 3), "Overdue 3d")
	assert.Contains(t, StatusPill(domain.LoanPaid, 0), "Paid off")
	assert.Contains(t, StatusPill(domain.LoanActive, 0), "Repaying")
}

func TestFreedomText(t *testing.T) {
	months := decimal.RequireFromString("12.34")
	assert.Equal(t, "🎉 Free!", FreedomText(app.FreedomPanel{State: ledger.FreedomFree}))
	assert.Equal(t, "12.3 months", FreedomText(app.FreedomPanel{State: ledger.FreedomEstimating, Months: &months}))
	assert.Equal(t, "Set your monthly income", FreedomText(app.FreedomPanel{State: ledger.FreedomNeedsIncome}))
}

func TestFormatDashboard_EmptyLedger(t *testing.T) {
	d := app.BuildDashboard(domain.NewLedger(), time.Now())
	out := FormatDashboard(d, 120)
	assert.Contains(t, out, "No platforms yet")
	assert.Contains(t, out, "Set your monthly income")
}

func TestLayoutCards_WrapsToWidth(t *testing.T) {
	cards := make([]app.PlatformCard, 3)
	for i := range cards {
		cards[i] = app.PlatformCard{PlatformID: "p", Icon: "🏦", Name: "Bank"}
	}
	narrow := LayoutCards(cards, CardWidth+5, -1)
	wide := LayoutCards(cards, 3*(CardWidth+5), -1)
	assert.Greater(t, lipgloss.Height(narrow), lipgloss.Height(wide))
}

func TestFormatLoanList(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &domain.Platform{ID: "p1", Name: "Card", Icon: "💳", Loans: []*domain.Loan{{
		ID:     "loan-0001-abcdef",
		Amount: decimal.NewFromInt(1000),
		Rate:   decimal.NewFromInt(10),
		Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Term:   1,
	}}}
	out := FormatLoanList(app.BuildLoanList(p, now))
	assert.Contains(t, out, "￥1,000.00")
	assert.Contains(t, out, "days overdue!")
	assert.Contains(t, out, "2025-02-01")

	empty := FormatLoanList(app.BuildLoanList(&domain.Platform{ID: "p2", Name: "Empty"}, now))
	assert.Contains(t, empty, "No loans recorded yet.")
}

func TestFormatCatalogPage(t *testing.T) {
	items := []catalog.Item{{Name: "A", URL: "https://a"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}}

	first := FormatCatalogPage("Tools", catalog.Paginate(items, 1, 4), 0)
	assert.Contains(t, first, "https://a")
	assert.NotContains(t, first, " E ")
	assert.Contains(t, first, "[ 1 ]")

	single := FormatCatalogPage("Tools", catalog.Paginate(items[:2], 1, 4), -1)
	assert.NotContains(t, single, "[ 1 ]")
}

func TestLedgerTree(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := domain.NewLedger()
	l.Platforms = append(l.Platforms, &domain.Platform{ID: "p1", Name: "Card", Icon: "💳", Loans: []*domain.Loan{
		{ID: "a", Amount: decimal.NewFromInt(100), Date: now, PaidAmount: decimal.NewFromInt(100)},
		{ID: "b", Amount: decimal.NewFromInt(200), Date: now, Term: 2},
	}})
	d := app.BuildDashboard(l, now)
	lists := map[string]app.LoanList{"p1": app.BuildLoanList(l.Platforms[0], now)}

	items := LedgerTree(d, lists)
	assert.Len(t, items, 3)
	assert.Equal(t, 0, items[0].Level)
	assert.Equal(t, domain.LoanPaid, items[1].Status)
	assert.True(t, items[2].IsLast)

	out := RenderTree(items)
	assert.Contains(t, out, treeBranch)
	assert.Contains(t, out, treeCorner)
}

func TestPaidShare(t *testing.T) {
	c := app.PlatformCard{Paid: decimal.NewFromInt(250), Remaining: decimal.NewFromInt(750)}
	assert.InDelta(t, 0.25, PaidShare(c), 1e-9)
	assert.Zero(t, PaidShare(app.PlatformCard{}))
}

func TestRenderTable_AlignsNumericColumnsRight(t *testing.T) {
	out := RenderTable(
		[]Column{Col("NAME"), NumCol("OWED")},
		[][]string{{"Bank", "5.00"}, {"Card", "1,250.00"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	// Right-aligned cells end in the same visible column.
	w := lipgloss.Width(lines[2])
	assert.Equal(t, w, lipgloss.Width(lines[3]))
	assert.True(t, strings.HasSuffix(lines[2], "    5.00"))
	assert.True(t, strings.HasSuffix(lines[3], "1,250.00"))

	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatLoanList_UndatedLoan(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &domain.Platform{ID: "p1", Name: "Card", Loans: []*domain.Loan{{
		ID:     "loan-undated",
		Amount: decimal.NewFromInt(300),
		Term:   2,
	}}}
	out := FormatLoanList(app.BuildLoanList(p, now))
	assert.Contains(t, out, "undated")
	assert.NotContains(t, out, "0001-01-01")
}
