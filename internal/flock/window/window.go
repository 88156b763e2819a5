// Package window shows the flock in a desktop window.
package window

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/flock"
	"github.com/alexanderramin/debtpad/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToggleFunc flips and persists the theme.
type ToggleFunc func(ctx context.Context) (domain.Theme, error)

type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

func DefaultOptions() Options {
	return Options{Title: "debtpad", Width: 1024, Height: 640, TPS: 60}
}

type game struct {
	ctx    context.Context
	flock  *flock.Flock
	latch  *theme.Latch
	toggle ToggleFunc
	logger *slog.Logger
}

// Run opens the window and blocks until it is closed, Esc is pressed or ctx
// is cancelled. T toggles the theme through toggle.
func Run(ctx context.Context, f *flock.Flock, latch *theme.Latch, toggle ToggleFunc, opts Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	g := &game{ctx: ctx, flock: f, latch: latch, toggle: toggle, logger: logger}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) && g.toggle != nil {
		t, err := g.toggle(g.ctx)
		if err != nil {
			g.logger.Warn("theme toggle failed", "error", err)
		} else {
			g.latch.Set(t.IsDark())
		}
	}
	g.flock.SetDark(g.latch.Dark())

	x, y := ebiten.CursorPosition()
	w, h := g.flock.Size()
	if x < 0 || y < 0 || float64(x) >= w || float64(y) >= h {
		g.flock.ClearPointer()
	} else {
		g.flock.SetPointer(float64(x), float64(y))
	}

	g.flock.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.flock.Background())
	g.flock.Paint(screenPainter{dst: screen})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.flock.Size()
	if float64(outsideWidth) != w || float64(outsideHeight) != h {
		g.flock.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

type screenPainter struct {
	dst *ebiten.Image
}

func (p screenPainter) FillCircle(x, y, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(p.dst, float32(x), float32(y), float32(r), premultiply(c), true)
}

// premultiply converts straight alpha to the premultiplied form color.RGBA
// is defined to hold.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
