package landscape

// PointerState tracks the pointer relative to the viewport center. X and Y
// ease toward the target once per frame and only jump on Reset.
type PointerState struct {
	TargetX, TargetY float64
	X, Y             float64
}

// Aim records a raw pointer position on a w×h viewport.
func (p *PointerState) Aim(x, y, w, h float64) {
	p.TargetX = x - w/2
	p.TargetY = y - h/2
}

// Smooth moves the current position ratio of the way toward the target.
func (p *PointerState) Smooth(ratio float64) {
	p.X += (p.TargetX - p.X) * ratio
	p.Y += (p.TargetY - p.Y) * ratio
}

// Reset snaps both positions to the viewport center.
func (p *PointerState) Reset() {
	*p = PointerState{}
}
