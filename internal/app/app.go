//go:build ebiten

package app

import (
	"log/slog"
	"sync/atomic"
	"time"

	"ink-ridge/internal/audio"
	"ink-ridge/internal/landscape"
	"ink-ridge/internal/render"
	"ink-ridge/internal/telemetry"
	"ink-ridge/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a landscape scene to the ebiten.Game interface. Update polls
// input and forwards it to the scene; Draw runs exactly one scene tick.
type Game struct {
	scene   *landscape.Scene
	surface *render.EbitenSurface
	hud     *ui.HUD
	sound   *audio.SoundManager
	perf    *telemetry.PerfCollector
	logger  *slog.Logger

	showHUD bool
	start   time.Time
	lastX   int
	lastY   int
	tracked bool
	stopped atomic.Bool
}

// New constructs a Game for the provided scene. sound may be nil.
func New(scene *landscape.Scene, sound *audio.SoundManager, showHUD bool, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	perf := telemetry.NewPerfCollector(120)
	return &Game{
		scene:   scene,
		surface: render.NewEbitenSurface(),
		hud:     ui.NewHUD(scene, perf),
		sound:   sound,
		perf:    perf,
		logger:  logger,
		showHUD: showHUD,
	}
}

// Stop makes the next Update return ebiten.Termination. Safe to call from
// any goroutine and more than once.
func (g *Game) Stop() {
	if g.stopped.CompareAndSwap(false, true) {
		g.logger.Info("stopping", "frames", g.scene.Frame())
	}
}

// Update handles keys and pointer input.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(g.scene.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reset(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	if !g.tracked || mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY, g.tracked = mx, my, true
		g.scene.PointerMove(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(mx, my)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.scene.PointerMove(float64(tx), float64(ty))
		g.click(tx, ty)
	}
	if g.hud != nil {
		g.hud.Update()
	}
	return nil
}

func (g *Game) reset(seed int64) {
	g.scene.Reset(seed)
	g.start = time.Time{}
	g.tracked = false
	g.logger.Info("reset", "seed", seed)
}

func (g *Game) click(x, y int) {
	g.scene.PointerClick(float64(x), float64(y))
	if g.sound != nil {
		g.sound.PlayChime(float64(x), float64(g.scene.Size().W))
	}
}

// Draw renders one frame of the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.start.IsZero() {
		g.start = time.Now()
	}
	g.surface.Bind(screen)

	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseTick)
	g.scene.Tick(g.surface, time.Since(g.start))
	g.perf.StartPhase(telemetry.PhasePresent)
	if g.showHUD && g.hud != nil {
		g.hud.Draw(screen)
	}
	g.perf.EndFrame()
}

// Layout makes the logical screen track the window so the scene always
// fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
