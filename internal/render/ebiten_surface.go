//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ink-ridge/internal/core"
)

var whiteImage *ebiten.Image

// whiteSubImage returns a 1x1 white source for solid triangle fills.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenSurface adapts an ebiten screen image to core.Surface. Bind it to the
// screen at the start of every Draw call.
type EbitenSurface struct {
	dst   *ebiten.Image
	alpha float64

	vs []ebiten.Vertex
	is []uint16
}

var _ core.Surface = (*EbitenSurface)(nil)

// NewEbitenSurface returns an unbound surface; it reports zero size until
// Bind is called.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{alpha: 1}
}

// Bind points the surface at dst.
func (s *EbitenSurface) Bind(dst *ebiten.Image) {
	s.dst = dst
	s.alpha = 1
}

func (s *EbitenSurface) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() { s.dst.Clear() }

func (s *EbitenSurface) SetAlpha(a float64) { s.alpha = a }

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), core.Fade(c, s.alpha), false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), core.Fade(c, s.alpha), true)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), core.Fade(c, s.alpha), true)
}

func (s *EbitenSurface) FillPolygon(pts []core.Point, g core.Gradient) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	trace(&path, pts)
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	span := g.Y1 - g.Y0
	for i := range s.vs {
		v := &s.vs[i]
		t := 0.0
		if span != 0 {
			t = (float64(v.DstY) - g.Y0) / span
		}
		s.paint(v, lerpNRGBA(g.Top, g.Bottom, t))
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage(), op)
}

func (s *EbitenSurface) StrokePolyline(pts []core.Point, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	trace(&path, pts)

	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range s.vs {
		s.paint(&s.vs[i], c)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage(), op)
}

func (s *EbitenSurface) paint(v *ebiten.Vertex, c color.NRGBA) {
	c = core.Fade(c, s.alpha)
	v.SrcX = 1
	v.SrcY = 1
	v.ColorR = float32(c.R) / 255
	v.ColorG = float32(c.G) / 255
	v.ColorB = float32(c.B) / 255
	v.ColorA = float32(c.A) / 255
}

func trace(path *vector.Path, pts []core.Point) {
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
}
