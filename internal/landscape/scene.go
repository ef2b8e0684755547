package landscape

import (
	"strconv"
	"time"

	"ink-ridge/internal/core"
	pcore "ink-ridge/pkg/core"
)

// Scene owns every piece of mutable view state: the clock, the pointer and
// the three pools. Input handlers and Tick must be called from the same
// goroutine.
type Scene struct {
	cfg    Config
	preset Preset
	ridge  LayerRenderer
	rng    *pcore.RNG

	clock   core.Clock
	size    core.Size
	now     float64
	pointer PointerState

	dust    *DustPool
	ink     *InkPool
	ripples *RipplePool
}

var _ core.Scene = (*Scene)(nil)

// New builds a scene for a viewport of the given size. An unknown preset
// falls back to DefaultPreset.
func New(cfg Config, size core.Size) *Scene {
	preset, ok := LookupPreset(cfg.Preset)
	if !ok {
		preset, _ = LookupPreset(DefaultPreset)
		cfg.Preset = preset.Name
	}
	s := &Scene{
		cfg:    cfg,
		preset: preset,
		ridge:  NewLayerRenderer(cfg.Params.Terrain),
		size:   size,
	}
	s.Reset(cfg.Seed)
	return s
}

// Reset reseeds the scene and starts it over: time returns to zero, the
// pointer recenters, dust is scattered again and the trails are cleared.
func (s *Scene) Reset(seed int64) {
	p := s.cfg.Params
	s.cfg.Seed = seed
	s.rng = pcore.NewRNG(seed)
	s.clock.Reset()
	s.now = 0
	s.pointer.Reset()
	s.dust = NewDustPool(p.Dust, s.preset.Palette.Dust, s.size, s.rng)
	s.ink = NewInkPool(p.Ink, s.preset.Palette, s.rng)
	s.ripples = NewRipplePool(p.Ripple, s.preset.Palette, s.rng)
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "landscape/" + s.preset.Name }

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return s.cfg }

// Size reports the viewport size observed on the last tick.
func (s *Scene) Size() core.Size { return s.size }

// Pointer exposes the shared pointer record.
func (s *Scene) Pointer() PointerState { return s.pointer }

// Dust exposes the ambient pool.
func (s *Scene) Dust() *DustPool { return s.dust }

// Ink exposes the trail pool.
func (s *Scene) Ink() *InkPool { return s.ink }

// Ripples exposes the ring pool.
func (s *Scene) Ripples() *RipplePool { return s.ripples }

// Frame reports how many ticks have run.
func (s *Scene) Frame() uint64 { return s.clock.Frame() }

// Time reports the scene time of the last tick in seconds.
func (s *Scene) Time() float64 { return s.now }

// PointerMove retargets parallax and feeds the ink trail.
func (s *Scene) PointerMove(x, y float64) {
	s.pointer.Aim(x, y, float64(s.size.W), float64(s.size.H))
	s.ink.PointerMove(x, y)
}

// PointerClick starts a ripple.
func (s *Scene) PointerClick(x, y float64) {
	s.ripples.Spawn(x, y)
}

// Tick advances and paints one frame. A missing or empty surface skips the
// frame without touching any state.
func (s *Scene) Tick(surf core.Surface, ts time.Duration) {
	if surf == nil {
		return
	}
	w, h := surf.Size()
	size := core.Size{W: w, H: h}
	if size.Empty() {
		return
	}
	s.size = size
	fw, fh := float64(w), float64(h)

	t := s.clock.Advance(ts)
	s.now = t
	s.pointer.Smooth(s.cfg.Params.Smoothing)

	surf.SetAlpha(1)
	surf.Clear()
	s.paintBackground(surf, fw, fh)

	for _, l := range s.preset.Layers {
		s.ridge.Render(surf, fw, fh, l, t, s.pointer.X)
	}

	s.dust.Update(t, fw, fh)
	s.dust.Draw(surf, t)
	s.ripples.Update()
	s.ripples.Draw(surf)
	s.ink.Update()
	s.ink.Draw(surf)

	surf.SetAlpha(1)
}

// paintBackground lays down the paper color and a fresh scatter of grain.
func (s *Scene) paintBackground(surf core.Surface, w, h float64) {
	pal := s.preset.Palette
	bg := s.cfg.Params.Background
	surf.FillRect(0, 0, w, h, pal.Paper)
	grain := core.Fade(pal.Grain, bg.DotAlpha)
	for i := 0; i < bg.Dots; i++ {
		surf.FillCircle(s.rng.Range(0, w), s.rng.Range(0, h), s.rng.Range(bg.DotMin, bg.DotMax), grain)
	}
}

// Stats exposes live counters for the HUD.
func (s *Scene) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Preset", Value: s.preset.Name},
		{Label: "Frame", Value: strconv.FormatUint(s.clock.Frame(), 10)},
		{Label: "Time", Value: strconv.FormatFloat(s.now, 'f', 2, 64) + "s"},
		{Label: "Size", Value: strconv.Itoa(s.size.W) + "x" + strconv.Itoa(s.size.H)},
		{Label: "Dust", Value: strconv.Itoa(s.dust.Len())},
		{Label: "Ink", Value: strconv.Itoa(s.ink.Len())},
		{Label: "Ripples", Value: strconv.Itoa(s.ripples.Len())},
		{Label: "Parallax", Value: strconv.FormatFloat(s.pointer.X, 'f', 1, 64)},
	}
}
