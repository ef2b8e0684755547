package landscape

import (
	"image/color"
	"math"

	"ink-ridge/internal/core"
	pcore "ink-ridge/pkg/core"
)

// Particle is a round mote owned by exactly one pool.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64
	MaxLife float64
	Color   color.NRGBA
}

// DustPool is the fixed population of ambient gold motes. Motes never expire;
// leaving the viewport wraps them to the opposite edge.
type DustPool struct {
	params    DustParams
	particles []Particle
}

// NewDustPool scatters p.Count motes uniformly across size.
func NewDustPool(p DustParams, c color.NRGBA, size core.Size, rng *pcore.RNG) *DustPool {
	d := &DustPool{params: p, particles: make([]Particle, p.Count)}
	for i := range d.particles {
		d.particles[i] = Particle{
			X:       rng.Range(0, float64(size.W)),
			Y:       rng.Range(0, float64(size.H)),
			VX:      rng.Spread(p.Speed),
			VY:      rng.Spread(p.Speed),
			Size:    rng.Range(p.SizeMin, p.SizeMax),
			Life:    math.Inf(1),
			MaxLife: math.Inf(1),
			Color:   c,
		}
	}
	return d
}

// Particles exposes the motes for inspection.
func (d *DustPool) Particles() []Particle { return d.particles }

// Len reports the population.
func (d *DustPool) Len() int { return len(d.particles) }

// Update drifts every mote along a time and position dependent oscillation
// and wraps it toroidally inside w×h.
func (d *DustPool) Update(t, w, h float64) {
	p := d.params
	for i := range d.particles {
		m := &d.particles[i]
		m.X += m.VX + math.Sin(t*p.DriftRate+m.Y*0.01)*p.Drift
		m.Y += m.VY + math.Cos(t*p.DriftRate+m.X*0.01)*p.Drift
		m.X = wrap(m.X, w)
		m.Y = wrap(m.Y, h)
	}
}

func wrap(v, limit float64) float64 {
	if v > limit {
		return 0
	}
	if v < 0 {
		return limit
	}
	return v
}

// Alpha is the twinkle opacity of a mote at x.
func (d *DustPool) Alpha(t, x float64) float64 {
	a := d.params.TwinkleBase + d.params.TwinkleAmp*math.Sin(t*2+x*0.05)
	return math.Max(0, math.Min(1, a))
}

// Draw paints every mote.
func (d *DustPool) Draw(s core.Surface, t float64) {
	for i := range d.particles {
		m := &d.particles[i]
		s.FillCircle(m.X, m.Y, m.Size, core.Fade(m.Color, d.Alpha(t, m.X)))
	}
}
