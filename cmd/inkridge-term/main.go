package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"ink-ridge/internal/app"
	"ink-ridge/internal/core"
	"ink-ridge/internal/landscape"
	"ink-ridge/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	cellPixels := flag.Int("cell", 4, "rendered pixels per terminal column")
	logPath := flag.String("log", "", "log file (the terminal is busy drawing; empty = discard)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.NewLogger(logOut)
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		os.Exit(1)
	}

	cols, rows := screen.Size()
	scene := landscape.New(sceneCfg, core.Size{W: cols * *cellPixels, H: rows * 2 * *cellPixels})
	frontend := term.New(screen, scene, term.Options{CellPixels: *cellPixels, FPS: cfg.TPS, Logger: logger})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting", "preset", sceneCfg.Preset, "seed", sceneCfg.Seed, "cols", cols, "rows", rows)
	err = frontend.Run(ctx)
	screen.Fini()
	if err != nil {
		slog.Error("terminal exited", "error", err)
		os.Exit(1)
	}
	slog.Info("stopped", "frames", scene.Frame())
}
