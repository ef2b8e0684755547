package core

import (
	"image/color"
	"testing"
	"time"
)

func TestClockMonotonic(t *testing.T) {
	var c Clock
	if got := c.Advance(2 * time.Second); got != 0 {
		t.Fatalf("first advance = %v, want 0", got)
	}
	if got := c.Advance(2500 * time.Millisecond); got != 0.5 {
		t.Fatalf("second advance = %v, want 0.5", got)
	}
	if got := c.Advance(time.Second); got != 0.5 {
		t.Fatalf("backwards timestamp moved time to %v", got)
	}
	if c.Frame() != 3 {
		t.Fatalf("frame = %d, want 3", c.Frame())
	}
	c.Reset()
	if c.Frame() != 0 || c.Seconds() != 0 {
		t.Fatal("reset did not clear clock")
	}
}

func TestFade(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 200}
	if got := Fade(c, 0.5); got.A != 100 || got.R != 10 {
		t.Fatalf("Fade(0.5) = %+v", got)
	}
	if got := Fade(c, -1); got.A != 0 {
		t.Fatalf("negative alpha not clamped: %+v", got)
	}
	if got := Fade(c, 3); got != c {
		t.Fatalf("alpha above one changed color: %+v", got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#c9a227"); got != (color.NRGBA{R: 0xc9, G: 0xa2, B: 0x27, A: 0xff}) {
		t.Fatalf("Hex rgb = %+v", got)
	}
	if got := Hex("11223380"); got.A != 0x80 {
		t.Fatalf("Hex rgba alpha = %d", got.A)
	}
	if got := Hex("#zz0000"); got != (color.NRGBA{A: 0xff}) {
		t.Fatalf("malformed hex = %+v", got)
	}
}
