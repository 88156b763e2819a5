package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/debtpad/internal/app"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data app.Dashboard
	err  error
}

// dashboardView is the home screen of the TUI: the stats strip, the
// freedom estimate and a selectable grid of platform cards.
type dashboardView struct {
	state   *SharedState
	data    app.Dashboard
	loading bool
	err     error
	cursor  int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new platform")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "income")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "catalog")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flock")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

func (v *dashboardView) load() tea.Cmd {
	state := v.state
	return func() tea.Msg {
		d, err := state.App.Ledger.Dashboard(context.Background(), state.Now())
		return dashboardLoadedMsg{data: d, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.data = msg.data
			v.cursor = min(v.cursor, max(0, len(v.data.Cards)-1))
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *dashboardView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	perRow := v.perRow()
	switch msg.String() {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < len(v.data.Cards)-1 {
			v.cursor++
		}
	case "up", "k":
		if v.cursor-perRow >= 0 {
			v.cursor -= perRow
		}
	case "down", "j":
		if v.cursor+perRow < len(v.data.Cards) {
			v.cursor += perRow
		}
	case "enter":
		return v, v.cardAction(app.ActionOpenPlatform)
	case "d", "delete":
		return v, v.cardAction(app.ActionDeletePlatform)
	case "n":
		return v, newPlatformWizard(v.state)
	case "i":
		return v, incomeWizard(v.state)
	case "t":
		return v, toggleTheme(v.state)
	case "c":
		return v, pushView(newCatalogView(v.state))
	case "f":
		return v, pushView(newFlockView(v.state))
	}
	return v, nil
}

// cardAction dispatches the selected card's action of the given kind.
func (v *dashboardView) cardAction(kind app.ActionKind) tea.Cmd {
	if v.cursor >= len(v.data.Cards) {
		return nil
	}
	a, ok := app.Find(v.data.Cards[v.cursor].Actions, kind)
	if !ok {
		return nil
	}
	return dispatchAction(v.state, a)
}

func (v *dashboardView) perRow() int {
	return max(1, v.state.Width/(formatter.CardWidth+5))
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	var b strings.Builder
	b.WriteString(formatter.FormatStats(v.data.Stats))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatFreedom(v.data.Freedom, 24))
	b.WriteString("\n\n")

	if v.data.IsEmpty() {
		b.WriteString(formatter.Dim("No platforms yet. Press n to add one."))
		return b.String()
	}
	b.WriteString(formatter.LayoutCards(v.data.Cards, v.state.Width, v.cursor))
	return b.String()
}
