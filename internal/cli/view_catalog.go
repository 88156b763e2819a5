package cli

import (
	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// catalogView pages through the tools and games lists.
type catalogView struct {
	state   *SharedState
	section catalog.Section
	page    int
	cursor  int
}

func newCatalogView(state *SharedState) *catalogView {
	return &catalogView{state: state, section: catalog.SectionTools, page: 1}
}

func (v *catalogView) ID() ViewID    { return ViewCatalog }
func (v *catalogView) Title() string { return v.section.Title() }

func (v *catalogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tools/games")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "page")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show link")),
	}
}

func (v *catalogView) Init() tea.Cmd { return nil }

func (v *catalogView) current() catalog.Page {
	var items []catalog.Item
	if v.state.App.Catalog != nil {
		items = v.state.App.Catalog.Items(v.section)
	}
	return catalog.Paginate(items, v.page, catalog.PerPage)
}

func (v *catalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	p := v.current()
	switch s := keyMsg.String(); s {
	case "tab":
		if v.section == catalog.SectionTools {
			v.section = catalog.SectionGames
		} else {
			v.section = catalog.SectionTools
		}
		v.page, v.cursor = 1, 0
	case "left", "h":
		v.goTo(p.Page - 1)
	case "right", "l":
		v.goTo(p.Page + 1)
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(p.Items)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(p.Items) {
			item := p.Items[v.cursor]
			body := formatter.StyleBlue.Render(item.URL)
			if item.Description != "" {
				body += "\n" + formatter.Dim(item.Description)
			}
			return v, outputCmd(formatter.RenderBox(item.Name, body))
		}
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			v.goTo(int(s[0] - '0'))
		}
	}
	return v, nil
}

// goTo moves to page n; Paginate clamps out-of-range pages.
func (v *catalogView) goTo(n int) {
	v.page = n
	v.page = v.current().Page
	v.cursor = 0
}

func (v *catalogView) View() string {
	return formatter.FormatCatalogPage(v.section.Title(), v.current(), v.cursor)
}
