package landscape

import "testing"

func TestPresetsAreValid(t *testing.T) {
	names := PresetNames()
	if len(names) < 3 {
		t.Fatalf("expected at least three presets, got %v", names)
	}
	for _, name := range names {
		p, ok := LookupPreset(name)
		if !ok {
			t.Fatalf("preset %q listed but not found", name)
		}
		prev := -1.0
		for i, l := range p.Layers {
			if l.Frequency <= 0 {
				t.Fatalf("%s layer %d: frequency %v", name, i, l.Frequency)
			}
			if l.Opacity <= 0 || l.Opacity > 1 {
				t.Fatalf("%s layer %d: opacity %v", name, i, l.Opacity)
			}
			if l.YOffset <= prev {
				t.Fatalf("%s layer %d: y offset %v not after %v", name, i, l.YOffset, prev)
			}
			prev = l.YOffset
		}
	}
}

func TestRegisterPresetIgnoresEmpty(t *testing.T) {
	RegisterPreset(Preset{Name: "empty"})
	if _, ok := LookupPreset("empty"); ok {
		t.Fatal("preset without layers must not register")
	}
}
