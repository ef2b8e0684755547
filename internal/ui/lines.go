package ui

import (
	"fmt"
	"strconv"
	"strings"

	"ink-ridge/internal/core"
	"ink-ridge/internal/telemetry"
)

// Source is what the HUD reads every frame.
type Source interface {
	core.StatsProvider
	core.ParameterProvider
}

// Lines formats the panel text: live stats, frame timing, then each
// parameter group under its own heading.
func Lines(stats []core.Stat, perf telemetry.PerfStats, snapshot core.ParameterSnapshot) []string {
	width := 0
	for _, s := range stats {
		width = max(width, len(s.Label))
	}
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			width = max(width, len(p.Label))
		}
	}

	lines := make([]string, 0, len(stats)+8)
	for _, s := range stats {
		lines = append(lines, pad(s.Label, width)+"  "+s.Value)
	}
	if perf.Frames > 0 {
		lines = append(lines,
			pad("FPS", width)+"  "+strconv.FormatFloat(perf.FPS, 'f', 1, 64),
			pad("Frame p95", width)+"  "+fmt.Sprintf("%.2fms", float64(perf.P95.Microseconds())/1000),
		)
	}
	for _, g := range snapshot.Groups {
		lines = append(lines, "", "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, pad(p.Label, width)+"  "+p.Value)
		}
	}
	return lines
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
