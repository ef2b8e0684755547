// Package headless renders a scene offline at a fixed cadence, optionally
// driving a scripted pointer, and writes frames and timing data to disk.
package headless

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"ink-ridge/internal/core"
	"ink-ridge/internal/landscape"
	"ink-ridge/internal/render"
	"ink-ridge/internal/telemetry"
)

// Options controls an offline run.
type Options struct {
	Frames int
	FPS    int
	// Every writes one PNG per Every frames; zero disables PNG output.
	Every  int
	OutDir string
	// Sweep moves the pointer across the viewport and back once per run.
	Sweep bool
	// ClickEvery clicks at the pointer position every ClickEvery frames.
	ClickEvery int
	// PerfDir receives perf.csv; empty disables it.
	PerfDir string
	Logger  *slog.Logger
}

// Result summarizes a finished run.
type Result struct {
	Frames  int
	Written []string
	Perf    telemetry.PerfStats
}

// Run ticks the scene opts.Frames times on a w×h surface. Timestamps advance
// by exactly one frame interval, so the output does not depend on wall time.
func Run(ctx context.Context, scene *landscape.Scene, w, h int, opts Options) (Result, error) {
	var res Result
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if (core.Size{W: w, H: h}).Empty() {
		return res, fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	if opts.Every > 0 {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return res, fmt.Errorf("creating output directory: %w", err)
		}
	}
	out, err := telemetry.NewOutputManager(opts.PerfDir)
	if err != nil {
		return res, err
	}
	defer out.Close()

	surf := render.NewGGSurface(w, h)
	defer surf.Close()
	perf := telemetry.NewPerfCollector(opts.FPS)
	interval := time.Second / time.Duration(opts.FPS)

	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if opts.Sweep {
			x, y := SweepPosition(i, opts.Frames, float64(w), float64(h))
			scene.PointerMove(x, y)
			if opts.ClickEvery > 0 && i%opts.ClickEvery == 0 {
				scene.PointerClick(x, y)
			}
		} else if opts.ClickEvery > 0 && i%opts.ClickEvery == 0 {
			scene.PointerClick(float64(w)/2, float64(h)/2)
		}

		perf.StartFrame()
		perf.StartPhase(telemetry.PhaseTick)
		scene.Tick(surf, time.Duration(i)*interval)
		if err := surf.Err(); err != nil {
			return res, fmt.Errorf("frame %d: %w", i, err)
		}
		if opts.Every > 0 && i%opts.Every == 0 {
			perf.StartPhase(telemetry.PhaseEncode)
			path, err := writeFrame(surf, opts.OutDir, i)
			if err != nil {
				return res, err
			}
			res.Written = append(res.Written, path)
		}
		perf.EndFrame()
		res.Frames++

		if (i+1)%opts.FPS == 0 {
			stats := perf.Stats()
			if err := out.WritePerf(stats, scene.Frame()); err != nil {
				return res, err
			}
			opts.Logger.Debug("perf window", "frame", scene.Frame(), "stats", stats)
		}
	}
	res.Perf = perf.Stats()
	return res, nil
}

// SweepPosition places the pointer on a triangle wave across the width with
// a gentle vertical bob.
func SweepPosition(i, frames int, w, h float64) (float64, float64) {
	if frames < 2 {
		return w / 2, h / 2
	}
	phase := float64(i) / float64(frames-1) * 2
	if phase > 1 {
		phase = 2 - phase
	}
	return phase * w, h/2 + h/6*math.Sin(float64(i)*0.05)
}

func writeFrame(surf *render.GGSurface, dir string, i int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := surf.EncodePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
