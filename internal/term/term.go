// Package term runs the landscape in a terminal. Each cell shows two
// vertically stacked samples of a software-rendered frame as an upper half
// block, foreground on top and background below.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"ink-ridge/internal/landscape"
	"ink-ridge/internal/loop"
	"ink-ridge/internal/render"
	"ink-ridge/internal/telemetry"
)

const halfBlock = '▀'

// Options controls the terminal frontend.
type Options struct {
	// CellPixels is the rendered width of one cell; a cell is twice as tall.
	CellPixels int
	FPS        int
	Logger     *slog.Logger
}

// Terminal owns the screen, the scene and the frame loop. Scene access only
// happens on the loop goroutine.
type Terminal struct {
	screen  tcell.Screen
	scene   *landscape.Scene
	surface *render.GGSurface
	loop    *loop.Loop
	perf    *telemetry.PerfCollector
	logger  *slog.Logger

	scale   int
	cols    int
	rows    int
	buttons tcell.ButtonMask
	quit    chan struct{}
	closed  bool
}

// New wires a frontend around an initialized screen.
func New(screen tcell.Screen, scene *landscape.Scene, opts Options) *Terminal {
	if opts.CellPixels < 1 {
		opts.CellPixels = 4
	}
	if opts.FPS < 1 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	t := &Terminal{
		screen: screen,
		scene:  scene,
		perf:   telemetry.NewPerfCollector(opts.FPS * 2),
		logger: opts.Logger,
		scale:  opts.CellPixels,
		quit:   make(chan struct{}),
	}
	t.loop = loop.New(time.Second/time.Duration(opts.FPS), t.Frame)
	t.resize()
	return t
}

// Run enables mouse reporting, starts the frame loop and blocks until the
// user quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.loop.Start(ctx)
	defer t.loop.Stop()

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.loop.Post(func() { t.HandleEvent(ev) })
		}
	}()

	select {
	case <-ctx.Done():
	case <-t.quit:
	case <-t.loop.Done():
	}
	t.loop.Stop()
	t.perf.Stats().LogStats(t.logger)
	if err := t.surface.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// HandleEvent applies one terminal event. It reports false once the user
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.requestQuit()
			return false
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := t.CellToPixel(cx, cy)
		t.scene.PointerMove(x, y)
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && t.buttons&tcell.Button1 == 0 {
			t.scene.PointerClick(x, y)
		}
		t.buttons = ev.Buttons()
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *Terminal) requestQuit() {
	if !t.closed {
		t.closed = true
		close(t.quit)
	}
}

// CellToPixel maps a cell to the center of its area on the surface.
func (t *Terminal) CellToPixel(cx, cy int) (float64, float64) {
	s := float64(t.scale)
	return (float64(cx) + 0.5) * s, (float64(cy) + 0.5) * 2 * s
}

// resize matches the surface to the current screen size.
func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	cols, rows = max(cols, 1), max(rows, 1)
	if t.surface != nil && cols == t.cols && rows == t.rows {
		return
	}
	t.cols, t.rows = cols, rows
	w, h := cols*t.scale, rows*2*t.scale
	if t.surface == nil {
		t.surface = render.NewGGSurface(w, h)
		return
	}
	if err := t.surface.Resize(w, h); err != nil {
		t.logger.Warn("resize surface", "error", err)
	}
}

// Frame ticks the scene and copies the result to the screen.
func (t *Terminal) Frame(ts time.Duration) {
	t.perf.StartFrame()
	t.perf.StartPhase(telemetry.PhaseTick)
	t.scene.Tick(t.surface, ts)
	if err := t.surface.Err(); err != nil {
		t.logger.Debug("frame draw error", "frame", t.scene.Frame(), "error", err)
	}

	t.perf.StartPhase(telemetry.PhasePresent)
	cells := render.SampleHalfCells(render.ToRGBA(t.surface.Image()), t.cols, t.rows)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			c := cells[row*t.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Top.R), int32(c.Top.G), int32(c.Top.B))).
				Background(tcell.NewRGBColor(int32(c.Bottom.R), int32(c.Bottom.G), int32(c.Bottom.B)))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	t.perf.EndFrame()
}
