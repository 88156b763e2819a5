package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style used for a loan status.
func StatusColor(s domain.LoanStatus) lipgloss.Style {
	switch s {
	case domain.LoanOverdue:
		return StyleRed
	case domain.LoanPaid:
		return StyleDim
	default:
		return StyleGreen
	}
}

// StatusPill returns a colored status indicator such as "● Overdue 3d".
func StatusPill(s domain.LoanStatus, daysOverdue int) string {
	text := "● " + s.Label()
	switch s {
	case domain.LoanOverdue:
		text = fmt.Sprintf("▲ %s %dd", s.Label(), daysOverdue)
	case domain.LoanPaid:
		text = "✔ " + s.Label()
	}
	return StatusColor(s).Render(text)
}

// OverdueBadge marks a platform card that holds at least one overdue loan.
func OverdueBadge(overdue bool) string {
	if !overdue {
		return ""
	}
	return StyleRed.Render("[ OVERDUE ]")
}

// ThemeBadge renders the current theme as a glyph and name.
func ThemeBadge(t domain.Theme) string {
	if t.IsDark() {
		return StylePurple.Render("☾ dark")
	}
	return StyleYellow.Render("☀ light")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
