package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// mutationDoneMsg reports the outcome of a ledger change. The appModel shows
// the output and reloads every view on the stack.
type mutationDoneMsg struct {
	output string
}

// mutate runs fn off the update loop and reports its result.
func mutate(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(context.Background())
		if err != nil {
			return mutationDoneMsg{output: errorLine(err)}
		}
		return mutationDoneMsg{output: out}
	}
}

func okLine(text string) string {
	return formatter.StyleGreen.Render("✔") + " " + text
}

// ── shared operations ────────────────────────────────────────────────────────

func execCreatePlatform(ctx context.Context, a *App, name, icon string) (string, error) {
	p, err := a.Platforms.Create(ctx, name, icon)
	if err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Added %s %s %s", p.Icon, formatter.Bold(p.Name), formatter.TruncID(p.ID))), nil
}

func execUpdatePlatform(ctx context.Context, a *App, id, name, icon string) (string, error) {
	p, err := a.Platforms.Update(ctx, id, name, icon)
	if err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Updated %s %s", p.Icon, formatter.Bold(p.Name))), nil
}

func execDeletePlatform(ctx context.Context, a *App, id string) (string, error) {
	p, err := a.Platforms.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := a.Platforms.Delete(ctx, id); err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Deleted %s and %d loan(s)", formatter.Bold(p.Name), len(p.Loans))), nil
}

func execCreateLoan(ctx context.Context, a *App, platformID string, in service.LoanInput) (string, error) {
	l, err := a.Loans.Create(ctx, platformID, in)
	if err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Recorded %s borrowed %s %s",
		formatter.Bold(formatter.Money(l.Amount)), domain.FormatDay(l.Date), formatter.TruncID(l.ID))), nil
}

func execUpdateLoan(ctx context.Context, a *App, loanID string, in service.LoanInput) (string, error) {
	l, err := a.Loans.Update(ctx, loanID, in)
	if err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Updated loan %s", formatter.Bold(formatter.Money(l.Amount)))), nil
}

func execDeleteLoan(ctx context.Context, a *App, loanID string) (string, error) {
	l, err := a.Loans.Get(ctx, loanID)
	if err != nil {
		return "", err
	}
	if err := a.Loans.Delete(ctx, loanID); err != nil {
		return "", err
	}
	return okLine(fmt.Sprintf("Deleted loan %s", formatter.Bold(formatter.Money(l.Amount)))), nil
}

func execSetIncome(ctx context.Context, a *App, raw string) (string, error) {
	income := decimal.Max(decimal.Zero, service.CoerceDecimal(raw))
	if err := a.Ledger.SetIncome(ctx, income); err != nil {
		return "", err
	}
	return okLine("Monthly income set to " + formatter.Bold(formatter.Money(income))), nil
}

// ── view-tree actions ────────────────────────────────────────────────────────

// dispatchAction interprets an Action carried by the view tree. Actions
// marked Confirm go through a yes/no form first.
func dispatchAction(state *SharedState, a app.Action) tea.Cmd {
	if !a.Confirm {
		return runAction(state, a)
	}
	confirmed := new(bool)
	form := wizardConfirm(confirmTitle(a), confirmed)
	return startWizardCmd(state, a.Label, form, func() tea.Cmd {
		if !*confirmed {
			return outputCmd(formatter.Dim("Cancelled."))
		}
		return runAction(state, a)
	})
}

func confirmTitle(a app.Action) string {
	switch a.Kind {
	case app.ActionDeletePlatform:
		return "Delete this platform and all of its loans?"
	case app.ActionDeleteLoan:
		return "Delete this loan?"
	}
	return a.Label + "?"
}

func runAction(state *SharedState, a app.Action) tea.Cmd {
	switch a.Kind {
	case app.ActionOpenPlatform:
		return pushView(newLoanListView(state, a.PlatformID))
	case app.ActionDeletePlatform:
		return mutate(func(ctx context.Context) (string, error) {
			return execDeletePlatform(ctx, state.App, a.PlatformID)
		})
	case app.ActionEditLoan:
		return editLoanWizard(state, a.LoanID)
	case app.ActionDeleteLoan:
		return mutate(func(ctx context.Context) (string, error) {
			return execDeleteLoan(ctx, state.App, a.LoanID)
		})
	}
	return outputCmd(errorLine(fmt.Errorf("unknown action %q", a.Kind)))
}

// ── wizards ──────────────────────────────────────────────────────────────────

func newPlatformWizard(state *SharedState) tea.Cmd {
	var name, icon string
	return startWizardCmd(state, "New platform", wizardPlatform(&name, &icon), func() tea.Cmd {
		return mutate(func(ctx context.Context) (string, error) {
			return execCreatePlatform(ctx, state.App, name, icon)
		})
	})
}

func editPlatformWizard(state *SharedState, platformID string) tea.Cmd {
	p, err := state.App.Platforms.Get(context.Background(), platformID)
	if err != nil {
		return outputCmd(errorLine(err))
	}
	name, icon := p.Name, p.Icon
	return startWizardCmd(state, "Edit platform", wizardPlatform(&name, &icon), func() tea.Cmd {
		return mutate(func(ctx context.Context) (string, error) {
			return execUpdatePlatform(ctx, state.App, platformID, name, icon)
		})
	})
}

func addLoanWizard(state *SharedState, platformID string) tea.Cmd {
	f := &service.LoanForm{Date: domain.Today(state.Now()).Format(domain.DateLayout)}
	return startWizardCmd(state, "New loan", wizardLoan(f), func() tea.Cmd {
		in := f.Input(state.Now())
		return mutate(func(ctx context.Context) (string, error) {
			return execCreateLoan(ctx, state.App, platformID, in)
		})
	})
}

func editLoanWizard(state *SharedState, loanID string) tea.Cmd {
	l, err := state.App.Loans.Get(context.Background(), loanID)
	if err != nil {
		return outputCmd(errorLine(err))
	}
	f := new(service.LoanForm)
	*f = service.FormFromLoan(l)
	return startWizardCmd(state, "Edit loan", wizardLoan(f), func() tea.Cmd {
		in := f.Input(state.Now())
		return mutate(func(ctx context.Context) (string, error) {
			return execUpdateLoan(ctx, state.App, loanID, in)
		})
	})
}

func incomeWizard(state *SharedState) tea.Cmd {
	var raw string
	if l, err := state.App.Ledger.Load(context.Background()); err == nil && !l.Income.IsZero() {
		raw = l.Income.String()
	}
	return startWizardCmd(state, "Income", wizardIncome(&raw), func() tea.Cmd {
		return mutate(func(ctx context.Context) (string, error) {
			return execSetIncome(ctx, state.App, raw)
		})
	})
}

// toggleTheme flips the stored theme. The new theme is also announced on
// the bus by the service; the direct message keeps the TUI correct when no
// bus subscriber is attached.
func toggleTheme(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		t, err := state.App.Theme.Toggle(context.Background())
		if err != nil {
			return cmdOutputMsg{output: errorLine(err)}
		}
		return themeChangedMsg{dark: t.IsDark()}
	}
}
