package cli

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/alexanderramin/debtpad/internal/config"
	"github.com/alexanderramin/debtpad/internal/flock"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// One terminal cell covers this many world units, roughly a character cell
// in pixels.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	flockFrame = time.Second / 30

	// headerLines is how far the content area sits below the top row.
	headerLines = 2
)

// newFlock builds a flock sized in world units from the configured count
// and seed. A zero seed picks a random layout.
func newFlock(cfg config.Config, width, height float64) *flock.Flock {
	params := flock.DefaultParams()
	params.Count = cfg.FlockCount
	var rng *rand.Rand
	if cfg.FlockSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.FlockSeed, cfg.FlockSeed))
	}
	return flock.New(params, width, height, rng)
}

// cellGrid is a flock.Painter that rasterises particles into terminal
// cells, keeping the strongest alpha per cell.
type cellGrid struct {
	cols, rows int
	alpha      []uint8
}

func (g *cellGrid) reset(cols, rows int) {
	g.cols, g.rows = cols, rows
	if cap(g.alpha) < cols*rows {
		g.alpha = make([]uint8, cols*rows)
	}
	g.alpha = g.alpha[:cols*rows]
	clear(g.alpha)
}

func (g *cellGrid) FillCircle(x, y, _ float64, c color.RGBA) {
	col, row := int(x/cellWidth), int(y/cellHeight)
	if x < 0 || y < 0 || col >= g.cols || row >= g.rows {
		return
	}
	if i := row*g.cols + col; c.A > g.alpha[i] {
		g.alpha[i] = c.A
	}
}

// glyph maps a straight alpha to a dot of matching weight.
func glyph(a uint8) rune {
	switch {
	case a == 0:
		return ' '
	case a >= 140:
		return '●'
	case a >= 110:
		return '•'
	default:
		return '·'
	}
}

func (g *cellGrid) lines() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for c := 0; c < g.cols; c++ {
			b.WriteRune(glyph(g.alpha[r*g.cols+c]))
		}
		out[r] = b.String()
	}
	return out
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

type flockTickMsg time.Time

func flockTick() tea.Cmd {
	return tea.Tick(flockFrame, func(t time.Time) tea.Msg { return flockTickMsg(t) })
}

// flockView animates the particle background in the terminal. Mouse motion
// repels the flock and T flips the theme.
type flockView struct {
	state *SharedState
	flock *flock.Flock
	grid  cellGrid
	cols  int
	rows  int

	// sized is false until the terminal size is known. The first size
	// reseeds the flock over the real viewport.
	sized bool
}

func newFlockView(state *SharedState) *flockView {
	v := &flockView{state: state}
	v.seed(state.Width, state.ContentHeight())
	v.sized = state.Width > 0
	return v
}

func (v *flockView) seed(cols, rows int) {
	v.cols, v.rows = max(1, cols), max(1, rows)
	v.flock = newFlock(v.state.App.Config, float64(v.cols)*cellWidth, float64(v.rows)*cellHeight)
	v.flock.SetDark(v.state.Theme.IsDark())
}

func (v *flockView) ID() ViewID    { return ViewFlock }
func (v *flockView) Title() string { return "Flock" }

func (v *flockView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
}

func (v *flockView) Init() tea.Cmd { return flockTick() }

func (v *flockView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flockTickMsg:
		v.flock.Step()
		return v, flockTick()

	case tea.WindowSizeMsg:
		v.resize(msg.Width, v.state.ContentHeight())
		return v, nil

	case tea.MouseMsg:
		v.point(msg.X, msg.Y-headerLines)
		return v, nil

	case themeChangedMsg:
		v.flock.SetDark(msg.dark)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "t" {
			return v, toggleTheme(v.state)
		}
	}
	return v, nil
}

func (v *flockView) resize(cols, rows int) {
	if !v.sized {
		v.sized = cols > 0
		v.seed(cols, rows)
		return
	}
	v.cols, v.rows = max(1, cols), max(1, rows)
	v.flock.Resize(float64(v.cols)*cellWidth, float64(v.rows)*cellHeight)
}

// point moves the pointer to the centre of the cell under the mouse, or
// parks it when the mouse is outside the content area.
func (v *flockView) point(col, row int) {
	if col < 0 || row < 0 || col >= v.cols || row >= v.rows {
		v.flock.ClearPointer()
		return
	}
	v.flock.SetPointer((float64(col)+0.5)*cellWidth, (float64(row)+0.5)*cellHeight)
}

func (v *flockView) View() string {
	v.grid.reset(v.cols, v.rows)
	v.flock.Paint(&v.grid)

	style := lipgloss.NewStyle().
		Foreground(hexColor(v.flock.Color())).
		Background(hexColor(v.flock.Background()))

	lines := v.grid.lines()
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
