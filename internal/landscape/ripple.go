package landscape

import (
	"image/color"

	"ink-ridge/internal/core"
	pcore "ink-ridge/pkg/core"
)

// Ripple is an expanding ring spawned by a click.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Opacity   float64
	Color     color.NRGBA
}

// RipplePool holds the active rings.
type RipplePool struct {
	params  RippleParams
	palette Palette
	rng     *pcore.RNG
	ripples []Ripple
}

// NewRipplePool returns an empty pool.
func NewRipplePool(p RippleParams, palette Palette, rng *pcore.RNG) *RipplePool {
	return &RipplePool{params: p, palette: palette, rng: rng}
}

// Spawn starts a ring at (x, y). MaxRadius varies per ring but never bounds
// growth.
func (p *RipplePool) Spawn(x, y float64) {
	p.ripples = append(p.ripples, Ripple{
		X:         x,
		Y:         y,
		MaxRadius: p.rng.Range(p.params.MaxRadiusMin, p.params.MaxRadiusMax),
		Opacity:   p.params.Opacity,
		Color:     pcore.Pick(p.rng, p.palette.RippleA, p.palette.RippleB),
	})
}

// Ripples exposes the active rings.
func (p *RipplePool) Ripples() []Ripple { return p.ripples }

// Len reports how many rings are active.
func (p *RipplePool) Len() int { return len(p.ripples) }

// Update grows and fades every ring, dropping the invisible ones.
func (p *RipplePool) Update() {
	kept := p.ripples[:0]
	for _, r := range p.ripples {
		r.Radius += p.params.Growth
		r.Opacity -= p.params.Fade
		if r.Opacity <= 0 {
			continue
		}
		kept = append(kept, r)
	}
	p.ripples = kept
}

// LineWidth widens the outer ring as it fades, like ink bleeding into paper.
func (p *RipplePool) LineWidth(r Ripple) float64 {
	return p.params.BaseWidth + (1-r.Opacity)*p.params.BleedWidth
}

// Draw strokes each ring, plus a thinner inner echo once it has grown past
// the inner threshold.
func (p *RipplePool) Draw(s core.Surface) {
	for _, r := range p.ripples {
		width := p.LineWidth(r)
		s.StrokeCircle(r.X, r.Y, r.Radius, width, core.Fade(r.Color, r.Opacity))
		if r.Radius > p.params.InnerThreshold {
			s.StrokeCircle(r.X, r.Y, r.Radius-p.params.InnerOffset, width*0.5, core.Fade(r.Color, r.Opacity/2))
		}
	}
}
