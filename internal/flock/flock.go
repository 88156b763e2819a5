// Package flock animates the decorative particle background. A Flock owns
// all animation state; renderers drive it with Step and read it back through
// Paint.
package flock

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// parkedPointer is where the pointer sits when it is outside the viewport.
const parkedPointer = -1000

type Particle struct {
	X, Y   float64
	VX, VY float64
	// Size is the base radius before the breathing offset.
	Size  float64
	Phase float64
}

// Painter draws one filled circle. Implementations map world units to their
// own surface. c carries straight, not premultiplied, alpha.
type Painter interface {
	FillCircle(x, y, r float64, c color.RGBA)
}

type Flock struct {
	params    Params
	particles []Particle
	prev      []Particle

	width, height float64
	pointerX      float64
	pointerY      float64
	dark          bool
	breath        float64
}

// New seeds params.Count particles uniformly over the viewport. rng is
// consumed only here; nil uses a randomly seeded source.
func New(params Params, width, height float64, rng *rand.Rand) *Flock {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Flock{
		params:    params,
		particles: make([]Particle, params.Count),
		prev:      make([]Particle, params.Count),
		width:     width,
		height:    height,
		pointerX:  parkedPointer,
		pointerY:  parkedPointer,
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			VX:    (rng.Float64() - 0.5) * 2,
			VY:    (rng.Float64() - 0.5) * 2,
			Size:  rng.Float64()*2 + 1,
			Phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return f
}

// Step advances the breath clock and every particle by one frame. All
// steering reads the previous frame, so the update does not depend on
// particle order.
func (f *Flock) Step() {
	f.breath += f.params.BreathStep
	copy(f.prev, f.particles)
	for i := range f.particles {
		f.steer(i)
	}
}

func (f *Flock) steer(i int) {
	p := &f.particles[i]
	self := f.prev[i]
	pr := f.params

	var sepX, sepY, alignX, alignY, cohX, cohY float64
	neighbors := 0
	for j, other := range f.prev {
		if j == i {
			continue
		}
		dx := self.X - other.X
		dy := self.Y - other.Y
		d := math.Hypot(dx, dy)

		// Coincident particles have no direction to push along.
		if d < pr.SeparationRadius && d > 0 {
			sepX += dx / d
			sepY += dy / d
		}
		if d < pr.NeighborRadius {
			alignX += other.VX
			alignY += other.VY
			cohX += other.X
			cohY += other.Y
			neighbors++
		}
	}

	if neighbors > 0 {
		n := float64(neighbors)
		alignX = (alignX/n - self.VX) * pr.AlignWeight
		alignY = (alignY/n - self.VY) * pr.AlignWeight
		cohX = (cohX/n - self.X) * pr.CohesionWeight
		cohY = (cohY/n - self.Y) * pr.CohesionWeight
	}

	p.VX += sepX*pr.SeparationWeight + alignX + cohX
	p.VY += sepY*pr.SeparationWeight + alignY + cohY

	f.repel(p, self)
	clampSpeed(p, pr.MaxSpeed)

	if p.X < pr.EdgeMargin {
		p.VX += pr.EdgeNudge
	}
	if p.X > f.width-pr.EdgeMargin {
		p.VX -= pr.EdgeNudge
	}
	if p.Y < pr.EdgeMargin {
		p.VY += pr.EdgeNudge
	}
	if p.Y > f.height-pr.EdgeMargin {
		p.VY -= pr.EdgeNudge
	}

	p.X += p.VX
	p.Y += p.VY
}

// repel pushes p away from the pointer. A particle exactly under the pointer
// is pushed along its current heading, or +X when it is not moving.
func (f *Flock) repel(p *Particle, self Particle) {
	dx := self.X - f.pointerX
	dy := self.Y - f.pointerY
	d := math.Hypot(dx, dy)
	if d >= f.params.PointerRadius {
		return
	}

	force := (1 - d/f.params.PointerRadius) * f.params.PointerForce
	var angle float64
	switch {
	case d > 0:
		angle = math.Atan2(dy, dx)
	case p.VX != 0 || p.VY != 0:
		angle = math.Atan2(p.VY, p.VX)
	}
	p.VX += math.Cos(angle) * force
	p.VY += math.Sin(angle) * force
}

func clampSpeed(p *Particle, limit float64) {
	speed := math.Hypot(p.VX, p.VY)
	if speed > limit {
		p.VX = p.VX / speed * limit
		p.VY = p.VY / speed * limit
	}
}

// Paint draws every particle with the current breathing radius and alpha.
func (f *Flock) Paint(dst Painter) {
	base := f.Color()
	for _, p := range f.particles {
		s := math.Sin(f.breath + p.Phase)
		r := p.Size + s*f.params.BreathAmplitude
		alpha := (f.params.AlphaBase + s*f.params.AlphaSwing) * f.params.AlphaScale
		c := base
		c.A = uint8(math.Round(clamp01(alpha) * 255))
		dst.FillCircle(p.X, p.Y, r, c)
	}
}

// Color is the opaque particle color for the current theme.
func (f *Flock) Color() color.RGBA {
	if f.dark {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// Background is the clear color for the current theme.
func (f *Flock) Background() color.RGBA {
	if f.dark {
		return color.RGBA{R: 0x1d, G: 0x20, B: 0x21, A: 255}
	}
	return color.RGBA{R: 0xfb, G: 0xf1, B: 0xc7, A: 255}
}

func (f *Flock) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// ClearPointer parks the pointer far outside the viewport.
func (f *Flock) ClearPointer() {
	f.pointerX, f.pointerY = parkedPointer, parkedPointer
}

// Pointer returns the current pointer position.
func (f *Flock) Pointer() (x, y float64) {
	return f.pointerX, f.pointerY
}

// Resize changes the viewport. Particles keep their positions and drift back
// inside through the edge turn-back.
func (f *Flock) Resize(width, height float64) {
	f.width, f.height = width, height
}

func (f *Flock) Size() (width, height float64) {
	return f.width, f.height
}

func (f *Flock) SetDark(dark bool) { f.dark = dark }

func (f *Flock) Dark() bool { return f.dark }

// Breath returns the global breath clock.
func (f *Flock) Breath() float64 { return f.breath }

// Particles returns a copy of the current particle state.
func (f *Flock) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
