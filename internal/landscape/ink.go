package landscape

import (
	"ink-ridge/internal/core"
	pcore "ink-ridge/pkg/core"
)

// InkPool holds the decaying trail left by the pointer.
type InkPool struct {
	params    InkParams
	palette   Palette
	rng       *pcore.RNG
	particles []Particle
	moves     uint64
}

// NewInkPool returns an empty trail.
func NewInkPool(p InkParams, palette Palette, rng *pcore.RNG) *InkPool {
	return &InkPool{params: p, palette: palette, rng: rng}
}

// PointerMove counts a move event and spawns a droplet on every
// params.Throttle-th one. It reports whether a droplet was spawned.
func (p *InkPool) PointerMove(x, y float64) bool {
	n := p.moves
	p.moves++
	if n%uint64(max(p.params.Throttle, 1)) != 0 {
		return false
	}
	p.Spawn(x, y)
	return true
}

// Spawn adds one droplet at (x, y) with full life.
func (p *InkPool) Spawn(x, y float64) {
	p.particles = append(p.particles, Particle{
		X:       x,
		Y:       y,
		VX:      p.rng.Spread(p.params.Speed),
		VY:      p.rng.Spread(p.params.Speed),
		Size:    p.rng.Range(p.params.SizeMin, p.params.SizeMax),
		Life:    1,
		MaxLife: 1,
		Color:   pcore.Pick(p.rng, p.palette.InkA, p.palette.InkB),
	})
}

// Particles exposes the live droplets.
func (p *InkPool) Particles() []Particle { return p.particles }

// Len reports how many droplets are alive.
func (p *InkPool) Len() int { return len(p.particles) }

// Update ages, shrinks and moves every droplet, dropping the spent ones.
func (p *InkPool) Update() {
	kept := p.particles[:0]
	for _, q := range p.particles {
		q.Life -= p.params.Decay
		if q.Life <= 0 {
			continue
		}
		q.Size *= p.params.Shrink
		q.X += q.VX
		q.Y += q.VY
		kept = append(kept, q)
	}
	p.particles = kept
}

// Draw paints every droplet; alpha follows remaining life, damped so ink
// never reaches full opacity.
func (p *InkPool) Draw(s core.Surface) {
	for i := range p.particles {
		q := &p.particles[i]
		s.FillCircle(q.X, q.Y, q.Size, core.Fade(q.Color, q.Life*p.params.AlphaDamp))
	}
}
