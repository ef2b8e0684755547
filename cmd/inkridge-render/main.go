package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"ink-ridge/internal/app"
	"ink-ridge/internal/core"
	"ink-ridge/internal/headless"
	"ink-ridge/internal/landscape"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 300, "number of frames to render")
	every := flag.Int("every", 30, "write every Nth frame as PNG (0 = none)")
	outDir := flag.String("out", "frames", "directory for PNG frames")
	sweep := flag.Bool("sweep", true, "move a scripted pointer across the scene")
	clickEvery := flag.Int("click-every", 45, "scripted click interval in frames (0 = none)")
	perfDir := flag.String("perf-csv", "", "directory for perf.csv (empty = disabled)")
	dumpConfig := flag.String("dump-config", "", "write the effective scene config as YAML and exit")
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dumpConfig != "" {
		if err := sceneCfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("wrote config", "path", *dumpConfig)
		return
	}

	scene := landscape.New(sceneCfg, core.Size{W: cfg.Width, H: cfg.Height})
	for _, g := range scene.Parameters().Groups {
		attrs := make([]any, 0, 2*len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, p.Key, p.Value)
		}
		slog.Debug("params "+g.Name, attrs...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("rendering", "preset", sceneCfg.Preset, "seed", sceneCfg.Seed, "frames", *frames, "fps", cfg.TPS)
	res, err := headless.Run(ctx, scene, cfg.Width, cfg.Height, headless.Options{
		Frames:     *frames,
		FPS:        cfg.TPS,
		Every:      *every,
		OutDir:     *outDir,
		Sweep:      *sweep,
		ClickEvery: *clickEvery,
		PerfDir:    *perfDir,
		Logger:     logger,
	})
	if err != nil {
		slog.Error("render failed", "error", err, "frames", res.Frames)
		os.Exit(1)
	}
	res.Perf.LogStats(logger)
	slog.Info("done", "frames", res.Frames, "written", len(res.Written), "out", *outDir)
}
