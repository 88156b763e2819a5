package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// debtpadHuhTheme returns a custom huh theme using the Gruvbox palette.
func debtpadHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(debtpadHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects blank input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateAmount accepts only a positive number.
func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return domain.ErrLoanAmountRequired
	}
	return nil
}

// validateOptionalNumber accepts empty or any number.
func validateOptionalNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDay(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// iconOptions lists the suggested glyphs, keeping current first when it is
// not one of them.
func iconOptions(current string) []huh.Option[string] {
	icons := domain.PlatformIcons
	if current != "" && !containsString(icons, current) {
		icons = append([]string{current}, icons...)
	}
	opts := make([]huh.Option[string], 0, len(icons))
	for _, ic := range icons {
		opts = append(opts, huh.NewOption(ic, ic))
	}
	return opts
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// wizardPlatform creates a huh form for a platform's name and icon.
func wizardPlatform(name, icon *string) *huh.Form {
	if *icon == "" {
		*icon = domain.DefaultPlatformIcon
	}
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Platform name").
				Placeholder("e.g. Credit Card").
				Value(name).
				Validate(validateRequired("Platform name")),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions(*icon)...).
				Value(icon),
		),
	)
}

// wizardLoan creates a huh form for every editable loan field.
func wizardLoan(f *service.LoanForm) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("1000").
				Value(&f.Amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Annual rate (%)").
				Placeholder("0").
				Value(&f.Rate).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("Borrowed on").
				Description("YYYY-MM-DD, blank for today").
				Value(&f.Date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Term (months)").
				Placeholder("0").
				Value(&f.Term).
				Validate(validateOptionalNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Penalty").
				Placeholder("0").
				Value(&f.Penalty).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("Paid so far").
				Placeholder("0").
				Value(&f.PaidAmount).
				Validate(validateOptionalNumber),
		),
	)
}

// wizardIncome creates a huh form for the monthly income.
func wizardIncome(result *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Placeholder("0").
				Value(result).
				Validate(validateOptionalNumber),
		),
	)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
