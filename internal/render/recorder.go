package render

import (
	"image/color"
	"slices"

	"ink-ridge/internal/core"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpAlpha
	OpRect
	OpCircle
	OpRing
	OpPolygon
	OpPolyline
)

var opNames = [...]string{"clear", "alpha", "rect", "circle", "ring", "polygon", "polyline"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded call. Alpha is the global alpha in effect when the call
// was made.
type Op struct {
	Kind     OpKind
	X, Y     float64
	W, H     float64
	R        float64
	Width    float64
	Alpha    float64
	Color    color.NRGBA
	Gradient core.Gradient
	Points   []core.Point
}

// Recorder is a Surface that keeps a log of every call instead of drawing.
type Recorder struct {
	W, H  int
	Ops   []Op
	alpha float64
}

var _ core.Surface = (*Recorder)(nil)

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, alpha: 1}
}

// Reset drops recorded calls and restores alpha.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.alpha = 1
}

// Resize changes the reported size.
func (r *Recorder) Resize(w, h int) { r.W, r.H = w, h }

// Alpha reports the current global alpha.
func (r *Recorder) Alpha() float64 { return r.alpha }

// OfKind returns the recorded calls of kind k in call order.
func (r *Recorder) OfKind(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Index returns the position of the first recorded op matching fn, or -1.
func (r *Recorder) Index(fn func(Op) bool) int {
	return slices.IndexFunc(r.Ops, fn)
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() { r.add(Op{Kind: OpClear}) }

func (r *Recorder) SetAlpha(a float64) {
	r.alpha = a
	r.add(Op{Kind: OpAlpha})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.add(Op{Kind: OpCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpRing, X: cx, Y: cy, R: rad, Width: width, Color: c})
}

func (r *Recorder) FillPolygon(pts []core.Point, g core.Gradient) {
	r.add(Op{Kind: OpPolygon, Gradient: g, Points: slices.Clone(pts)})
}

func (r *Recorder) StrokePolyline(pts []core.Point, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpPolyline, Width: width, Color: c, Points: slices.Clone(pts)})
}

func (r *Recorder) add(op Op) {
	op.Alpha = r.alpha
	r.Ops = append(r.Ops, op)
}
