//go:build ebiten

package ui

import (
	"image/color"

	"ink-ridge/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 15
	refreshEvery = 15
)

// HUD renders a translucent stats panel over the top-left corner.
type HUD struct {
	src   Source
	perf  *telemetry.PerfCollector
	face  text.Face
	lines []string
	ticks int
	width int
}

// NewHUD constructs a HUD for the provided scene. perf may be nil.
func NewHUD(src Source, perf *telemetry.PerfCollector) *HUD {
	return &HUD{src: src, perf: perf, face: text.NewGoXFace(basicfont.Face7x13)}
}

// Update refreshes the panel text a few times per second.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	if h.ticks%refreshEvery == 0 || h.lines == nil {
		var ps telemetry.PerfStats
		if h.perf != nil {
			ps = h.perf.Stats()
		}
		h.lines = Lines(h.src.Stats(), ps, h.src.Parameters())
		h.width = 0
		for _, l := range h.lines {
			h.width = max(h.width, len(l))
		}
	}
	h.ticks++
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	w := float32(h.width*basicfont.Face7x13.Advance + 2*panelPadding)
	ht := float32(len(h.lines)*lineHeight + 2*panelPadding)
	vector.DrawFilledRect(screen, 0, 0, w, ht, color.RGBA{R: 16, G: 16, B: 20, A: 180}, false)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range h.lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(panelPadding, float64(panelPadding+i*lineHeight))
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, line, h.face, op)
	}
}
