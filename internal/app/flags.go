package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ink-ridge/internal/landscape"
)

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the list into overrides. Later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters shared by every frontend.
type Config struct {
	Preset     string
	Seed       int64
	Width      int
	Height     int
	TPS        int
	ConfigPath string
	Overrides  KVList
	Sound      bool
	HUD        bool
	LogJSON    bool
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 600, TPS: 60, HUD: false}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "palette preset ("+strings.Join(landscape.PresetNames(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "scene seed (0 = config value)")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML scene config (empty = defaults)")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a chime on every click")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the stats panel at start")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log as JSON instead of text")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// SceneConfig resolves the scene configuration: defaults, then the YAML
// file, then -preset and -seed, then -set overrides.
func (c *Config) SceneConfig() (landscape.Config, error) {
	cfg, err := landscape.LoadConfig(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if c.Preset != "" {
		cfg.Preset = c.Preset
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	cfg = cfg.Apply(c.Overrides.Map())
	if _, ok := landscape.LookupPreset(cfg.Preset); !ok {
		return cfg, fmt.Errorf("unknown preset %q", cfg.Preset)
	}
	return cfg, nil
}

// NewLogger builds the process logger.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if c.Verbose {
		opts.Level = slog.LevelDebug
	}
	if c.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
