package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"ink-ridge/internal/core"
)

// GGSurface draws onto a software-rasterized gg context. Drawing errors are
// kept rather than returned so a frame always runs to completion; Err reports
// the first one since the last Clear.
type GGSurface struct {
	dc    *gg.Context
	alpha float64
	err   error
}

var _ core.Surface = (*GGSurface)(nil)

// NewGGSurface allocates a w×h surface.
func NewGGSurface(w, h int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(w, h), alpha: 1}
}

// Resize reallocates the backing pixmap when the size changes.
func (s *GGSurface) Resize(w, h int) error {
	return s.dc.Resize(w, h)
}

// Image exposes the rendered pixels.
func (s *GGSurface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the current frame as PNG.
func (s *GGSurface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// Err reports the first drawing error of the current frame.
func (s *GGSurface) Err() error { return s.err }

// Close releases the context.
func (s *GGSurface) Close() error { return s.dc.Close() }

func (s *GGSurface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

func (s *GGSurface) Clear() {
	s.err = nil
	s.dc.Clear()
}

func (s *GGSurface) SetAlpha(a float64) { s.alpha = a }

func (s *GGSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.dc.SetFillBrush(gg.Solid(s.rgba(c)))
	s.dc.DrawRectangle(x, y, w, h)
	s.keep(s.dc.Fill())
}

func (s *GGSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	s.dc.SetFillBrush(gg.Solid(s.rgba(c)))
	s.dc.DrawCircle(cx, cy, r)
	s.keep(s.dc.Fill())
}

func (s *GGSurface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(s.rgba(c)))
	s.dc.SetLineWidth(width)
	s.dc.DrawCircle(cx, cy, r)
	s.keep(s.dc.Stroke())
}

func (s *GGSurface) FillPolygon(pts []core.Point, g core.Gradient) {
	if len(pts) < 3 {
		return
	}
	brush := gg.NewLinearGradientBrush(0, g.Y0, 0, g.Y1).
		AddColorStop(0, s.rgba(g.Top)).
		AddColorStop(1, s.rgba(g.Bottom))
	s.dc.SetFillBrush(brush)
	s.trace(pts)
	s.dc.ClosePath()
	s.keep(s.dc.Fill())
}

func (s *GGSurface) StrokePolyline(pts []core.Point, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(s.rgba(c)))
	s.dc.SetLineWidth(width)
	s.trace(pts)
	s.keep(s.dc.Stroke())
}

func (s *GGSurface) trace(pts []core.Point) {
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
}

func (s *GGSurface) rgba(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(core.Fade(c, s.alpha).A)/255,
	)
}

func (s *GGSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}
