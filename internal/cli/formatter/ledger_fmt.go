package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/ledger"
	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the inner width of a platform card.
const CardWidth = 30

// FormatStats renders the global stats strip.
func FormatStats(s app.Stats) string {
	cells := []string{
		Dim("TOTAL DEBT ") + Bold(Money(s.TotalDebt)),
		Dim("PAID ") + StyleGreen.Render(Money(s.TotalPaid)),
		Dim("REMAINING ") + StyleRed.Render(Money(s.Remaining)),
		Dim("FINES ") + StyleRed.Render(Money(s.Fines)),
	}
	line := strings.Join(cells, Dim("  │  "))
	if s.HasOverdue {
		line += "  " + StyleRed.Render(fmt.Sprintf("▲ %d overdue", s.OverdueCount))
	}
	return line
}

// FreedomText is the headline of the freedom panel.
func FreedomText(f app.FreedomPanel) string {
	switch f.State {
	case ledger.FreedomFree:
		return "🎉 Free!"
	case ledger.FreedomEstimating:
		if f.Months != nil {
			return Months(*f.Months) + " months"
		}
	}
	return "Set your monthly income"
}

// FormatFreedom renders the freedom estimate with its payoff bar and quote.
func FormatFreedom(f app.FreedomPanel, barWidth int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("FREEDOM") + "  " + Bold(FreedomText(f)))
	if f.Income.IsPositive() {
		b.WriteString(Dim("  at " + Money(f.Income) + "/month"))
	}
	b.WriteString("\n")
	b.WriteString(RenderProgress(f.Progress, barWidth))
	b.WriteString("\n")
	b.WriteString(Dim(f.Quote))
	return b.String()
}

// FormatCard renders one platform card.
func FormatCard(c app.PlatformCard, selected bool) string {
	var b strings.Builder
	name := c.Icon + " " + Bold(c.Name)
	if badge := OverdueBadge(c.Overdue); badge != "" {
		name += " " + badge
	}
	b.WriteString(name + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d LOANS", c.LoanCount)) + "\n")
	b.WriteString(KeyValue("REMAINING", StyleRed.Render(Money(c.Remaining)), 9) + "\n")
	b.WriteString(KeyValue("INTEREST", StyleYellow.Render(Money(c.Interest)), 9) + "\n")
	b.WriteString(KeyValue("PAID", StyleGreen.Render(Money(c.Paid)), 9) + "\n")
	b.WriteString(KeyValue("FINES", StyleRed.Render(Money(c.Fines)), 9) + "\n")
	b.WriteString(RenderCompactBar(PaidShare(c), CardWidth-2, c.LoanCount == 0))

	content := lipgloss.NewStyle().Width(CardWidth).Render(b.String())
	return RenderCard(content, c.Overdue, selected)
}

// PaidShare is the part of a platform's debt already repaid, counting
// outstanding interest and fines as debt.
func PaidShare(c app.PlatformCard) float64 {
	total := c.Paid.Add(c.Remaining)
	if !total.IsPositive() {
		return 0
	}
	return c.Paid.Div(total).InexactFloat64()
}

// LayoutCards flows rendered cards into rows that fit width. selected is the
// index of the highlighted card, or -1.
func LayoutCards(cards []app.PlatformCard, width, selected int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max(1, width/(CardWidth+5))

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(len(cards), start+perRow)
		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered = append(rendered, FormatCard(cards[i], i == selected)+" ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return strings.Join(rows, "\n")
}

// FormatDashboard renders the whole dashboard for non-interactive output.
func FormatDashboard(d app.Dashboard, width int) string {
	var b strings.Builder
	b.WriteString(FormatStats(d.Stats))
	b.WriteString("\n\n")
	b.WriteString(FormatFreedom(d.Freedom, 24))
	b.WriteString("\n\n")
	if d.IsEmpty() {
		b.WriteString(Dim("No platforms yet. Add one with: debtpad platform add <name>"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(LayoutCards(d.Cards, width, -1))
	b.WriteString("\n")
	return b.String()
}

// LoanDetail renders the extra information shown beside a loan amount:
// days overdue, accrued interest and payments for unpaid loans.
func LoanDetail(r app.LoanRow) string {
	var parts []string
	if r.DaysOverdue > 0 {
		parts = append(parts, StyleRed.Render(fmt.Sprintf("%d days overdue!", r.DaysOverdue)))
	}
	if r.Status != domain.LoanPaid {
		if r.Interest.IsPositive() {
			parts = append(parts, StyleYellow.Render("+ interest "+Money(r.Interest)))
		}
		if r.Paid.IsPositive() {
			parts = append(parts, StyleGreen.Render("paid "+Money(r.Paid)))
		}
	}
	if r.Penalty.IsPositive() {
		parts = append(parts, StyleYellow.Render("fine "+Money(r.Penalty)))
	}
	return strings.Join(parts, "  ")
}

// DayOrUndated shows a dim placeholder for loans imported without a date.
func DayOrUndated(day string) string {
	if day == "" {
		return Dim("undated")
	}
	return day
}

// FormatLoanList renders a platform's loans as a table.
func FormatLoanList(l app.LoanList) string {
	var b strings.Builder
	b.WriteString(Header(l.Icon + " " + l.Name))
	b.WriteString("\n\n")
	if len(l.Rows) == 0 {
		b.WriteString(Dim("No loans recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(l.Rows))
	for _, r := range l.Rows {
		rows = append(rows, []string{
			TruncID(r.LoanID),
			StyleBold.Render(Money(r.Amount)),
			Percent(r.Rate),
			DayOrUndated(r.Date),
			FormatTerm(r.Term),
			DayOrUndated(r.DueDate),
			StatusPill(r.Status, r.DaysOverdue),
			Money(r.Owed),
			LoanDetail(r),
		})
	}
	b.WriteString(RenderTable(
		[]Column{
			Col("ID"), NumCol("AMOUNT"), NumCol("RATE"), Col("DATE"), Col("TERM"),
			Col("DUE"), Col("STATUS"), NumCol("OWED"), Col(""),
		},
		rows,
	))
	return b.String()
}
