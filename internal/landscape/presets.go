package landscape

import (
	"image/color"
	"sort"

	"ink-ridge/internal/core"
)

// DefaultPreset names the preset used when none is configured.
const DefaultPreset = "dusk"

// Palette holds every non-terrain color of a preset.
type Palette struct {
	Paper   color.NRGBA
	Grain   color.NRGBA
	Dust    color.NRGBA
	InkA    color.NRGBA
	InkB    color.NRGBA
	RippleA color.NRGBA
	RippleB color.NRGBA
}

// Preset is a palette plus a layer table ordered back to front.
type Preset struct {
	Name    string
	Palette Palette
	Layers  []LayerConfig
}

var presets = map[string]Preset{}

// RegisterPreset adds a preset under its name.
func RegisterPreset(p Preset) {
	if p.Name == "" || len(p.Layers) == 0 {
		return
	}
	presets[p.Name] = p
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPreset(Preset{
		Name: "dusk",
		Palette: Palette{
			Paper:   core.Hex("#f2ebdd"),
			Grain:   core.Hex("#5a4a3a"),
			Dust:    core.Hex("#c9a227"),
			InkA:    core.Hex("#1a1a1a"),
			InkB:    core.Hex("#2e2a26"),
			RippleA: core.Hex("#c9a227"),
			RippleB: core.Hex("#b23a2a"),
		},
		Layers: []LayerConfig{
			{GradientTop: core.Hex("#d8cfc0"), GradientBottom: core.Hex("#ebe4d6"), Stroke: core.Hex("#b9ae9c"),
				YOffset: 0.45, Amplitude: 60, Frequency: 0.003, Speed: 0.02, Opacity: 0.5, Roughness: 3},
			{GradientTop: core.Hex("#a89d8c"), GradientBottom: core.Hex("#cfc5b4"), Stroke: core.Hex("#8c8170"),
				YOffset: 0.55, Amplitude: 50, Frequency: 0.004, Speed: 0.05, Opacity: 0.65, Roughness: 4},
			{GradientTop: core.Hex("#6b635a"), GradientBottom: core.Hex("#9a9082"), Stroke: core.Hex("#4f4841"),
				YOffset: 0.68, Amplitude: 40, Frequency: 0.006, Speed: 0.1, Opacity: 0.8, Roughness: 5},
			{GradientTop: core.Hex("#2b2724"), GradientBottom: core.Hex("#514a43"), Stroke: core.Hex("#161412"),
				YOffset: 0.82, Amplitude: 30, Frequency: 0.008, Speed: 0.18, Opacity: 0.92, Roughness: 6},
		},
	})
	RegisterPreset(Preset{
		Name: "dawn",
		Palette: Palette{
			Paper:   core.Hex("#f7ece6"),
			Grain:   core.Hex("#7a5a52"),
			Dust:    core.Hex("#e0a458"),
			InkA:    core.Hex("#1c1718"),
			InkB:    core.Hex("#33282a"),
			RippleA: core.Hex("#e0a458"),
			RippleB: core.Hex("#c2564a"),
		},
		Layers: []LayerConfig{
			{GradientTop: core.Hex("#ead3cc"), GradientBottom: core.Hex("#f3e4dd"), Stroke: core.Hex("#cfb2a8"),
				YOffset: 0.42, Amplitude: 55, Frequency: 0.0028, Speed: 0.02, Opacity: 0.45, Roughness: 2},
			{GradientTop: core.Hex("#c9a79e"), GradientBottom: core.Hex("#e2c8c0"), Stroke: core.Hex("#a8867d"),
				YOffset: 0.54, Amplitude: 48, Frequency: 0.0042, Speed: 0.06, Opacity: 0.6, Roughness: 3},
			{GradientTop: core.Hex("#8a6c66"), GradientBottom: core.Hex("#b39590"), Stroke: core.Hex("#6a4f4a"),
				YOffset: 0.67, Amplitude: 38, Frequency: 0.0058, Speed: 0.11, Opacity: 0.78, Roughness: 4.5},
			{GradientTop: core.Hex("#3a2d2c"), GradientBottom: core.Hex("#5e4a48"), Stroke: core.Hex("#1f1818"),
				YOffset: 0.8, Amplitude: 28, Frequency: 0.0085, Speed: 0.2, Opacity: 0.9, Roughness: 6},
		},
	})
	RegisterPreset(Preset{
		Name: "mist",
		Palette: Palette{
			Paper:   core.Hex("#eef0ec"),
			Grain:   core.Hex("#4d5650"),
			Dust:    core.Hex("#b8a46a"),
			InkA:    core.Hex("#141716"),
			InkB:    core.Hex("#262b29"),
			RippleA: core.Hex("#b8a46a"),
			RippleB: core.Hex("#9e4b3c"),
		},
		Layers: []LayerConfig{
			{GradientTop: core.Hex("#d5dbd6"), GradientBottom: core.Hex("#e6ebe7"), Stroke: core.Hex("#bcc4be"),
				YOffset: 0.5, Amplitude: 45, Frequency: 0.0025, Speed: 0.015, Opacity: 0.4, Roughness: 2},
			{GradientTop: core.Hex("#aab3ad"), GradientBottom: core.Hex("#cdd4cf"), Stroke: core.Hex("#8d9791"),
				YOffset: 0.6, Amplitude: 42, Frequency: 0.0035, Speed: 0.04, Opacity: 0.55, Roughness: 3},
			{GradientTop: core.Hex("#6d7771"), GradientBottom: core.Hex("#98a29b"), Stroke: core.Hex("#515a55"),
				YOffset: 0.72, Amplitude: 34, Frequency: 0.005, Speed: 0.09, Opacity: 0.75, Roughness: 4},
			{GradientTop: core.Hex("#262b29"), GradientBottom: core.Hex("#48504c"), Stroke: core.Hex("#111413"),
				YOffset: 0.85, Amplitude: 24, Frequency: 0.0075, Speed: 0.16, Opacity: 0.9, Roughness: 5},
		},
	})
}
