package landscape

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TerrainParams controls silhouette sampling and the shared breathing motion.
type TerrainParams struct {
	SampleStep  float64 `yaml:"sample_step"`
	StrokeWidth float64 `yaml:"stroke_width"`
	BreathAmp   float64 `yaml:"breath_amplitude"`
	BreathSpeed float64 `yaml:"breath_speed"`
}

// BackgroundParams controls the per-frame paper texture.
type BackgroundParams struct {
	Dots     int     `yaml:"dots"`
	DotAlpha float64 `yaml:"dot_alpha"`
	DotMin   float64 `yaml:"dot_radius_min"`
	DotMax   float64 `yaml:"dot_radius_max"`
}

// DustParams controls the ambient gold dust.
type DustParams struct {
	Count       int     `yaml:"count"`
	Speed       float64 `yaml:"speed"`
	SizeMin     float64 `yaml:"size_min"`
	SizeMax     float64 `yaml:"size_max"`
	Drift       float64 `yaml:"drift"`
	DriftRate   float64 `yaml:"drift_rate"`
	TwinkleBase float64 `yaml:"twinkle_base"`
	TwinkleAmp  float64 `yaml:"twinkle_amp"`
}

// InkParams controls the pointer trail.
type InkParams struct {
	Throttle  int     `yaml:"throttle"`
	Speed     float64 `yaml:"speed"`
	SizeMin   float64 `yaml:"size_min"`
	SizeMax   float64 `yaml:"size_max"`
	Decay     float64 `yaml:"decay"`
	Shrink    float64 `yaml:"shrink"`
	AlphaDamp float64 `yaml:"alpha_damp"`
}

// RippleParams controls click rings.
type RippleParams struct {
	Growth         float64 `yaml:"growth"`
	Fade           float64 `yaml:"fade"`
	Opacity        float64 `yaml:"opacity"`
	MaxRadiusMin   float64 `yaml:"max_radius_min"`
	MaxRadiusMax   float64 `yaml:"max_radius_max"`
	InnerThreshold float64 `yaml:"inner_threshold"`
	InnerOffset    float64 `yaml:"inner_offset"`
	BaseWidth      float64 `yaml:"base_width"`
	BleedWidth     float64 `yaml:"bleed_width"`
}

// Params holds every tunable of the scene.
type Params struct {
	Smoothing  float64          `yaml:"pointer_smoothing"`
	Terrain    TerrainParams    `yaml:"terrain"`
	Background BackgroundParams `yaml:"background"`
	Dust       DustParams       `yaml:"dust"`
	Ink        InkParams        `yaml:"ink"`
	Ripple     RippleParams     `yaml:"ripple"`
}

// Config selects a preset and seeds the scene.
type Config struct {
	Preset string `yaml:"preset"`
	Seed   int64  `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Preset: DefaultPreset,
		Seed:   1337,
		Params: Params{
			Smoothing: 0.05,
			Terrain: TerrainParams{
				SampleStep:  5,
				StrokeWidth: 1.5,
				BreathAmp:   5,
				BreathSpeed: 0.5,
			},
			Background: BackgroundParams{
				Dots:     120,
				DotAlpha: 0.05,
				DotMin:   0.5,
				DotMax:   1.5,
			},
			Dust: DustParams{
				Count:       40,
				Speed:       0.2,
				SizeMin:     0.5,
				SizeMax:     2,
				Drift:       0.3,
				DriftRate:   0.5,
				TwinkleBase: 0.35,
				TwinkleAmp:  0.35,
			},
			Ink: InkParams{
				Throttle:  2,
				Speed:     0.5,
				SizeMin:   2,
				SizeMax:   5,
				Decay:     0.02,
				Shrink:    0.98,
				AlphaDamp: 0.6,
			},
			Ripple: RippleParams{
				Growth:         1.5,
				Fade:           0.01,
				Opacity:        0.8,
				MaxRadiusMin:   60,
				MaxRadiusMax:   120,
				InnerThreshold: 20,
				InnerOffset:    15,
				BaseWidth:      1,
				BleedWidth:     3,
			},
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys absent from the file
// keep their default values. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// on top of the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields named in cfg. Unknown keys and unparsable values are
// ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	p := &c.Params
	if v, ok := cfg["preset"]; ok && v != "" {
		c.Preset = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setFloat(cfg, "pointer_smoothing", &p.Smoothing, 0)
	setFloat(cfg, "sample_step", &p.Terrain.SampleStep, 1)
	setFloat(cfg, "stroke_width", &p.Terrain.StrokeWidth, 0)
	setFloat(cfg, "breath_amplitude", &p.Terrain.BreathAmp, 0)
	setFloat(cfg, "breath_speed", &p.Terrain.BreathSpeed, 0)
	setInt(cfg, "texture_dots", &p.Background.Dots)
	setFloat(cfg, "texture_alpha", &p.Background.DotAlpha, 0)
	setInt(cfg, "dust_count", &p.Dust.Count)
	setFloat(cfg, "dust_speed", &p.Dust.Speed, 0)
	setFloat(cfg, "dust_drift", &p.Dust.Drift, 0)
	setInt(cfg, "ink_throttle", &p.Ink.Throttle)
	setFloat(cfg, "ink_decay", &p.Ink.Decay, 0)
	setFloat(cfg, "ink_shrink", &p.Ink.Shrink, 0)
	setFloat(cfg, "ink_alpha_damp", &p.Ink.AlphaDamp, 0)
	setFloat(cfg, "ripple_growth", &p.Ripple.Growth, 0)
	setFloat(cfg, "ripple_fade", &p.Ripple.Fade, 0)
	setFloat(cfg, "ripple_opacity", &p.Ripple.Opacity, 0)
	c.normalize()
	return c
}

func setFloat(cfg map[string]string, key string, dst *float64, floor float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= floor {
		*dst = parsed
	}
}

func setInt(cfg map[string]string, key string, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
		*dst = parsed
	}
}

func (c *Config) normalize() {
	p := &c.Params
	if p.Terrain.SampleStep < 1 {
		p.Terrain.SampleStep = 1
	}
	if p.Dust.SizeMax < p.Dust.SizeMin {
		p.Dust.SizeMax = p.Dust.SizeMin
	}
	if p.Ink.SizeMax < p.Ink.SizeMin {
		p.Ink.SizeMax = p.Ink.SizeMin
	}
	if p.Ripple.MaxRadiusMax < p.Ripple.MaxRadiusMin {
		p.Ripple.MaxRadiusMax = p.Ripple.MaxRadiusMin
	}
	if p.Background.DotMax < p.Background.DotMin {
		p.Background.DotMax = p.Background.DotMin
	}
	if p.Ink.Throttle < 1 {
		p.Ink.Throttle = 1
	}
	if p.Smoothing > 1 {
		p.Smoothing = 1
	}
}
