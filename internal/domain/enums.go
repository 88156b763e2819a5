package domain

type LoanStatus string

const (
	LoanActive  LoanStatus = "active"
	LoanOverdue LoanStatus = "overdue"
	LoanPaid    LoanStatus = "paid"
)

// Label returns the short human label used on loan rows.
func (s LoanStatus) Label() string {
	switch s {
	case LoanPaid:
		return "Paid off"
	case LoanOverdue:
		return "Overdue"
	default:
		return "Repaying"
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored preference to a Theme. Anything other than an
// explicit "light" falls back to dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t != ThemeLight }

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// DefaultPlatformIcon is used when a platform is created without a glyph.
const DefaultPlatformIcon = "🏦"

// PlatformIcons are the suggested glyphs offered by the platform form.
var PlatformIcons = []string{"🏦", "💳", "📱", "🛒", "🚗", "🏠", "🎓", "💰"}
