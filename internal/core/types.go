package core

import "time"

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Empty reports whether the size cannot hold any pixels.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Scene defines the contract a frame-driven animated view implements.
// Tick is invoked once per display refresh; PointerMove and PointerClick may
// arrive between ticks and must only mutate state, never draw.
type Scene interface {
	Name() string
	Tick(s Surface, ts time.Duration)
	PointerMove(x, y float64)
	PointerClick(x, y float64)
}
