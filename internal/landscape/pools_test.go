package landscape

import (
	"math"
	"testing"

	"ink-ridge/internal/core"
	"ink-ridge/internal/render"
	pcore "ink-ridge/pkg/core"
)

func testPalette() Palette {
	p, _ := LookupPreset(DefaultPreset)
	return p.Palette
}

func TestDustCountStable(t *testing.T) {
	p := DefaultConfig().Params.Dust
	d := NewDustPool(p, testPalette().Dust, core.Size{W: 800, H: 600}, pcore.NewRNG(1))
	for i := 0; i < 500; i++ {
		d.Update(float64(i)/60, 800, 600)
		if d.Len() != p.Count {
			t.Fatalf("frame %d: %d motes, want %d", i, d.Len(), p.Count)
		}
	}
	for _, m := range d.Particles() {
		if m.X < 0 || m.X > 800 || m.Y < 0 || m.Y > 600 {
			t.Fatalf("mote escaped the viewport: %+v", m)
		}
		if !math.IsInf(m.Life, 1) {
			t.Fatalf("dust life = %v, want +Inf", m.Life)
		}
	}
}

func TestDustWrapsAfterShrink(t *testing.T) {
	p := DefaultConfig().Params.Dust
	p.Count = 1
	p.Drift = 0
	d := NewDustPool(p, testPalette().Dust, core.Size{W: 800, H: 600}, pcore.NewRNG(1))
	d.particles[0] = Particle{X: 750, Y: 100}
	d.Update(0, 400, 300)
	if got := d.particles[0]; got.X != 0 || got.Y != 100 {
		t.Fatalf("mote at %v,%v, want 0,100", got.X, got.Y)
	}
	d.particles[0] = Particle{X: -0.5, Y: 310}
	d.Update(0, 400, 300)
	if got := d.particles[0]; got.X != 400 || got.Y != 0 {
		t.Fatalf("mote at %v,%v, want 400,0", got.X, got.Y)
	}
}

func TestDustAlphaClamped(t *testing.T) {
	p := DefaultConfig().Params.Dust
	p.TwinkleBase, p.TwinkleAmp = 0.9, 0.5
	d := NewDustPool(p, testPalette().Dust, core.Size{W: 10, H: 10}, pcore.NewRNG(1))
	for x := 0.0; x < 200; x += 3 {
		if a := d.Alpha(1, x); a < 0 || a > 1 {
			t.Fatalf("alpha %v out of range at x=%v", a, x)
		}
	}
}

func TestInkDecayAndShrink(t *testing.T) {
	ink := NewInkPool(DefaultConfig().Params.Ink, testPalette(), pcore.NewRNG(3))
	ink.Spawn(100, 100)
	ink.particles[0].Size = 4
	for i := 0; i < 10; i++ {
		ink.Update()
	}
	if ink.Len() != 1 {
		t.Fatalf("droplet gone after 10 ticks")
	}
	q := ink.Particles()[0]
	if math.Abs(q.Life-0.8) > 1e-9 {
		t.Fatalf("life = %v, want 0.8", q.Life)
	}
	if want := 4 * math.Pow(0.98, 10); math.Abs(q.Size-want) > 1e-9 {
		t.Fatalf("size = %v, want %v", q.Size, want)
	}
}

func TestInkSurvivorsInvariant(t *testing.T) {
	ink := NewInkPool(DefaultConfig().Params.Ink, testPalette(), pcore.NewRNG(9))
	for i := 0; i < 20; i++ {
		ink.Spawn(float64(i), float64(i))
	}
	prev := make([]float64, ink.Len())
	for i, q := range ink.Particles() {
		prev[i] = q.Size
	}
	for step := 0; step < 30; step++ {
		ink.Update()
		for i, q := range ink.Particles() {
			if q.Life <= 0 || q.Life > 1 {
				t.Fatalf("step %d: life %v out of (0,1]", step, q.Life)
			}
			if q.Size > prev[i] {
				t.Fatalf("step %d: size grew from %v to %v", step, prev[i], q.Size)
			}
			prev[i] = q.Size
		}
	}
}

func TestInkRemovedWhenSpent(t *testing.T) {
	ink := NewInkPool(DefaultConfig().Params.Ink, testPalette(), pcore.NewRNG(3))
	ink.Spawn(0, 0)
	ink.Spawn(5, 5)
	ink.particles[0].Life = 0.01
	ink.Update()
	if ink.Len() != 1 {
		t.Fatalf("pool has %d droplets, want 1", ink.Len())
	}
	if math.Abs(ink.Particles()[0].Life-0.98) > 1e-9 {
		t.Fatalf("survivor life = %v", ink.Particles()[0].Life)
	}
	for i := 0; i < 60; i++ {
		ink.Update()
	}
	if ink.Len() != 0 {
		t.Fatalf("pool still has %d droplets", ink.Len())
	}
}

func TestInkThrottle(t *testing.T) {
	ink := NewInkPool(DefaultConfig().Params.Ink, testPalette(), pcore.NewRNG(3))
	spawned := 0
	for i := 0; i < 10; i++ {
		if ink.PointerMove(1, 1) {
			spawned++
		}
	}
	if spawned != 5 || ink.Len() != 5 {
		t.Fatalf("spawned %d (pool %d), want 5", spawned, ink.Len())
	}
}

func TestInkDrawAlphaFollowsLife(t *testing.T) {
	pal := testPalette()
	pal.InkA.A, pal.InkB.A = 255, 255
	ink := NewInkPool(DefaultConfig().Params.Ink, pal, pcore.NewRNG(3))
	ink.Spawn(1, 1)
	ink.particles[0].Life = 0.5
	rec := render.NewRecorder(10, 10)
	ink.Draw(rec)
	c := rec.OfKind(render.OpCircle)
	if len(c) != 1 || c[0].Color.A < 76 || c[0].Color.A > 77 {
		t.Fatalf("circle ops %+v, want one with alpha near 0.3", c)
	}
}

func TestRippleInnerRing(t *testing.T) {
	rp := NewRipplePool(DefaultConfig().Params.Ripple, testPalette(), pcore.NewRNG(5))
	rp.Spawn(50, 50)
	for i := 0; i < 13; i++ {
		rp.Update()
	}
	rec := render.NewRecorder(100, 100)
	rp.Draw(rec)
	if rings := rec.OfKind(render.OpRing); len(rings) != 1 {
		t.Fatalf("radius %v: %d rings, want 1", rp.Ripples()[0].Radius, len(rings))
	}

	rp.Update()
	rec.Reset()
	rp.Draw(rec)
	r := rp.Ripples()[0]
	if r.Radius != 21 {
		t.Fatalf("radius = %v, want 21", r.Radius)
	}
	rings := rec.OfKind(render.OpRing)
	if len(rings) != 2 {
		t.Fatalf("%d rings, want 2", len(rings))
	}
	if rings[1].R != 6 {
		t.Fatalf("inner ring radius = %v, want 6", rings[1].R)
	}
	if rings[1].Width != rings[0].Width*0.5 {
		t.Fatalf("inner width %v, outer %v", rings[1].Width, rings[0].Width)
	}
	if want := 1 + (1-r.Opacity)*3; math.Abs(rings[0].Width-want) > 1e-9 {
		t.Fatalf("outer width = %v, want %v", rings[0].Width, want)
	}
}

func TestRippleRemovedWhenFaded(t *testing.T) {
	rp := NewRipplePool(DefaultConfig().Params.Ripple, testPalette(), pcore.NewRNG(5))
	rp.Spawn(0, 0)
	for i := 0; i < 79; i++ {
		rp.Update()
	}
	if rp.Len() != 1 {
		t.Fatal("ripple removed too early")
	}
	for i := 0; i < 2; i++ {
		rp.Update()
	}
	if rp.Len() != 0 {
		t.Fatalf("ripple still present with opacity %v", rp.Ripples()[0].Opacity)
	}
}

func TestRippleMaxRadiusRange(t *testing.T) {
	rp := NewRipplePool(DefaultConfig().Params.Ripple, testPalette(), pcore.NewRNG(5))
	for i := 0; i < 50; i++ {
		rp.Spawn(0, 0)
	}
	for _, r := range rp.Ripples() {
		if r.MaxRadius < 60 || r.MaxRadius >= 120 {
			t.Fatalf("max radius %v out of [60,120)", r.MaxRadius)
		}
		if r.Opacity != 0.8 || r.Radius != 0 {
			t.Fatalf("unexpected spawn state %+v", r)
		}
	}
}

func TestPointerSmoothing(t *testing.T) {
	var p PointerState
	p.Aim(500, 300, 800, 600)
	if p.TargetX != 100 || p.TargetY != 0 {
		t.Fatalf("target = %v,%v", p.TargetX, p.TargetY)
	}
	p.Smooth(0.05)
	if math.Abs(p.X-5) > 1e-9 {
		t.Fatalf("x after one frame = %v, want 5", p.X)
	}
	p.Smooth(0.05)
	if math.Abs(p.X-9.75) > 1e-9 {
		t.Fatalf("x after two frames = %v, want 9.75", p.X)
	}
	p.Reset()
	if p != (PointerState{}) {
		t.Fatalf("reset left %+v", p)
	}
}
