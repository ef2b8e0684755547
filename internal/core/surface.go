package core

import "image/color"

// Point is a position in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Gradient is a vertical two-stop linear gradient running from Top at Y0 to
// Bottom at Y1.
type Gradient struct {
	Y0, Y1      float64
	Top, Bottom color.NRGBA
}

// Surface is the 2D drawing context a scene paints onto each tick.
//
// SetAlpha sets a global opacity multiplied into every subsequent draw until
// changed again, mirroring a canvas globalAlpha.
type Surface interface {
	Size() (w, h int)
	Clear()
	SetAlpha(a float64)
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	FillPolygon(pts []Point, g Gradient)
	StrokePolyline(pts []Point, width float64, c color.NRGBA)
}

// Fade scales the alpha channel of c by a, clamped to [0, 1].
func Fade(c color.NRGBA, a float64) color.NRGBA {
	if a <= 0 {
		c.A = 0
		return c
	}
	if a >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Hex parses "#rrggbb" or "#rrggbbaa" into an opaque-by-default color.
// Malformed input yields opaque black.
func Hex(s string) color.NRGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	c := color.NRGBA{A: 0xff}
	if len(s) != 6 && len(s) != 8 {
		return c
	}
	var v [4]uint8
	v[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return c
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
