//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"ink-ridge/internal/app"
	"ink-ridge/internal/audio"
	"ink-ridge/internal/core"
	"ink-ridge/internal/landscape"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	scene := landscape.New(sceneCfg, core.Size{W: cfg.Width, H: cfg.Height})

	var sound *audio.SoundManager
	if cfg.Sound {
		sound = audio.NewSoundManager(0.4)
		if err := sound.Initialize(); err != nil {
			slog.Warn("audio disabled", "error", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	game := app.New(scene, sound, cfg.HUD, logger)

	ebiten.SetWindowTitle("ink-ridge — " + scene.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	slog.Info("starting", "preset", sceneCfg.Preset, "seed", sceneCfg.Seed, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
	slog.Info("stopped", "frames", scene.Frame())
}
