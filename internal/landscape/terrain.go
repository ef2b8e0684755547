package landscape

import (
	"image/color"
	"math"

	"ink-ridge/internal/core"
)

// LayerConfig describes one mountain silhouette. YOffset is a fraction of the
// surface height; Amplitude and Roughness are in pixels.
type LayerConfig struct {
	GradientTop    color.NRGBA
	GradientBottom color.NRGBA
	Stroke         color.NRGBA

	YOffset   float64
	Amplitude float64
	Frequency float64
	Speed     float64
	Opacity   float64
	Roughness float64
}

// Height returns the vertical displacement of a layer's ridge at x. The
// roughness term runs against the parallax shift so the three waves never
// crest together.
func Height(x, t, parallax float64, l LayerConfig) float64 {
	shifted := x + parallax*l.Speed
	primary := l.Amplitude * math.Sin(shifted*l.Frequency+t*0.1)
	detail := 0.3 * l.Amplitude * math.Sin(shifted*l.Frequency*2.5+t*0.2)
	rough := l.Roughness * math.Sin((x-parallax*l.Speed)*l.Frequency*5)
	return primary + detail + rough
}

// crest is the largest displacement Height can produce for l.
func crest(l LayerConfig) float64 {
	return math.Abs(l.Amplitude)*1.3 + math.Abs(l.Roughness)
}

// LayerRenderer draws silhouettes. It holds only style values, so rendering
// the same inputs twice produces the same path.
type LayerRenderer struct {
	Step        float64
	StrokeWidth float64
	BreathAmp   float64
	BreathSpeed float64
}

// NewLayerRenderer builds a renderer from terrain params.
func NewLayerRenderer(p TerrainParams) LayerRenderer {
	step := p.SampleStep
	if step < 1 {
		step = 1
	}
	return LayerRenderer{
		Step:        step,
		StrokeWidth: p.StrokeWidth,
		BreathAmp:   p.BreathAmp,
		BreathSpeed: p.BreathSpeed,
	}
}

// Breathing is the scene-wide vertical pulse shared by every layer.
func (r LayerRenderer) Breathing(t float64) float64 {
	return r.BreathAmp * math.Sin(t*r.BreathSpeed)
}

// Baseline returns the resting ridge height of l for a surface of height h.
func (r LayerRenderer) Baseline(h float64, l LayerConfig, t float64) float64 {
	return h*l.YOffset + r.Breathing(t)
}

// TopEdge samples the ridge left to right at the renderer step. The right edge
// is always included so the silhouette spans the full width.
func (r LayerRenderer) TopEdge(w, h float64, l LayerConfig, t, parallax float64) []core.Point {
	base := r.Baseline(h, l, t)
	n := int(math.Ceil(w/r.Step)) + 1
	pts := make([]core.Point, 0, n)
	for x := 0.0; x < w; x += r.Step {
		pts = append(pts, core.Point{X: x, Y: base - Height(x, t, parallax, l)})
	}
	pts = append(pts, core.Point{X: w, Y: base - Height(w, t, parallax, l)})
	return pts
}

// Render fills and outlines one layer. The fill runs at the layer opacity and
// alpha is back at 1 before the stroke.
func (r LayerRenderer) Render(s core.Surface, w, h float64, l LayerConfig, t, parallax float64) {
	if w <= 0 || h <= 0 {
		return
	}
	edge := r.TopEdge(w, h, l, t, parallax)

	fill := make([]core.Point, 0, len(edge)+2)
	fill = append(fill, core.Point{X: 0, Y: h})
	fill = append(fill, edge...)
	fill = append(fill, core.Point{X: w, Y: h})

	top := r.Baseline(h, l, t) - crest(l)
	s.SetAlpha(l.Opacity)
	s.FillPolygon(fill, core.Gradient{Y0: top, Y1: h, Top: l.GradientTop, Bottom: l.GradientBottom})
	s.SetAlpha(1)

	s.StrokePolyline(r.TopEdge(w, h, l, t, parallax), r.StrokeWidth, l.Stroke)
}
