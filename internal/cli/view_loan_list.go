package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// loanListLoadedMsg signals that a platform's loan rows have been loaded.
type loanListLoadedMsg struct {
	list app.LoanList
	err  error
}

// loanListView shows the loans of one platform with a row cursor.
type loanListView struct {
	state      *SharedState
	platformID string
	list       app.LoanList
	loading    bool
	err        error
	cursor     int
}

func newLoanListView(state *SharedState, platformID string) *loanListView {
	return &loanListView{state: state, platformID: platformID, loading: true}
}

func (v *loanListView) ID() ViewID { return ViewLoanList }

func (v *loanListView) Title() string {
	if v.list.Name == "" {
		return "Loans"
	}
	return v.list.Name
}

func (v *loanListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add loan")),
		key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
	}
}

func (v *loanListView) Init() tea.Cmd {
	return v.load()
}

func (v *loanListView) load() tea.Cmd {
	state, id := v.state, v.platformID
	return func() tea.Msg {
		list, err := state.App.Platforms.LoanList(context.Background(), id, state.Now())
		return loanListLoadedMsg{list: list, err: err}
	}
}

func (v *loanListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loanListLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.list = msg.list
			v.cursor = min(v.cursor, max(0, len(v.list.Rows)-1))
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *loanListView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.list.Rows)-1 {
			v.cursor++
		}
	case "enter", "e":
		return v, v.rowAction(app.ActionEditLoan)
	case "d", "delete":
		return v, v.rowAction(app.ActionDeleteLoan)
	case "a", "n":
		if v.err == nil {
			return v, addLoanWizard(v.state, v.platformID)
		}
	case "r":
		if v.err == nil {
			return v, editPlatformWizard(v.state, v.platformID)
		}
	}
	return v, nil
}

func (v *loanListView) rowAction(kind app.ActionKind) tea.Cmd {
	if v.cursor >= len(v.list.Rows) {
		return nil
	}
	a, ok := app.Find(v.list.Rows[v.cursor].Actions, kind)
	if !ok {
		return nil
	}
	return dispatchAction(v.state, a)
}

func (v *loanListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	var b strings.Builder
	b.WriteString(formatter.Header(v.list.Icon + " " + v.list.Name))
	b.WriteString("\n\n")

	if len(v.list.Rows) == 0 {
		b.WriteString(formatter.Dim("No loans recorded yet. Press a to add one."))
		return b.String()
	}

	for i, r := range v.list.Rows {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		amount := formatter.Bold(formatter.Money(r.Amount))
		if detail := formatter.LoanDetail(r); detail != "" {
			amount += "  " + detail
		}
		b.WriteString(marker + amount + "\n")
		b.WriteString("    " + formatter.Dim(formatter.DayOrUndated(r.Date)+" borrowed | "+formatter.FormatTerm(r.Term)+" | ") +
			formatter.StatusPill(r.Status, r.DaysOverdue) + "\n")
		b.WriteString("    " + formatter.Dim("due "+formatter.DayOrUndated(r.DueDate)+" | owed ") + formatter.Money(r.Owed) + "\n")
		if i < len(v.list.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
