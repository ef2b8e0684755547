package landscape

import (
	"strconv"

	"ink-ridge/internal/core"
)

// Parameters describes the active tunables.
func (s *Scene) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Scene",
			Params: []core.Parameter{
				stringParam("preset", "Preset", s.preset.Name),
				int64Param("seed", "Seed", s.cfg.Seed),
				floatParam("pointer_smoothing", "Pointer smoothing", p.Smoothing),
				intParam("layers", "Layers", len(s.preset.Layers)),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("sample_step", "Sample step", p.Terrain.SampleStep),
				floatParam("stroke_width", "Stroke width", p.Terrain.StrokeWidth),
				floatParam("breath_amplitude", "Breath amplitude", p.Terrain.BreathAmp),
				floatParam("breath_speed", "Breath speed", p.Terrain.BreathSpeed),
				intParam("texture_dots", "Texture dots", p.Background.Dots),
				floatParam("texture_alpha", "Texture alpha", p.Background.DotAlpha),
			},
		},
		{
			Name: "Dust",
			Params: []core.Parameter{
				intParam("dust_count", "Count", p.Dust.Count),
				floatParam("dust_speed", "Speed", p.Dust.Speed),
				floatParam("dust_drift", "Drift", p.Dust.Drift),
			},
		},
		{
			Name: "Ink",
			Params: []core.Parameter{
				intParam("ink_throttle", "Throttle", p.Ink.Throttle),
				floatParam("ink_decay", "Decay", p.Ink.Decay),
				floatParam("ink_shrink", "Shrink", p.Ink.Shrink),
				floatParam("ink_alpha_damp", "Alpha damp", p.Ink.AlphaDamp),
			},
		},
		{
			Name: "Ripple",
			Params: []core.Parameter{
				floatParam("ripple_growth", "Growth", p.Ripple.Growth),
				floatParam("ripple_fade", "Fade", p.Ripple.Fade),
				floatParam("ripple_opacity", "Opacity", p.Ripple.Opacity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
