package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/hook"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/spring"
)

func writeSpringFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spring.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write spring file: %v", err)
	}
	return path
}

func TestLoadSpringFileSpiral(t *testing.T) {
	path := writeSpringFile(t, `
family: spiral
handedness: clockwise
inner_diameter: 10
outer_diameter: 40
turns: 5
strip_width: 4
strip_thickness: 0.5
inner_leg_length: 6
outer_leg_length: 12
bend_radius: 3
`)

	sf, err := LoadSpringFile(path)
	if err != nil {
		t.Fatalf("failed to load spring file: %v", err)
	}

	def, err := sf.Definition()
	if err != nil {
		t.Fatalf("failed to convert definition: %v", err)
	}

	sp, ok := def.(spring.Spiral)
	if !ok {
		t.Fatalf("expected spring.Spiral, got %T", def)
	}
	if sp.InnerDiameter != 10 {
		t.Errorf("expected inner diameter 10, got %g", sp.InnerDiameter)
	}
	if sp.OuterDiameter != 40 {
		t.Errorf("expected outer diameter 40, got %g", sp.OuterDiameter)
	}
	if sp.Turns != 5 {
		t.Errorf("expected 5 turns, got %g", sp.Turns)
	}
	if sp.Handedness != spring.Clockwise {
		t.Errorf("expected clockwise, got %v", sp.Handedness)
	}
	if sp.StripWidth != 4 || sp.StripThickness != 0.5 {
		t.Errorf("unexpected strip section %g x %g", sp.StripWidth, sp.StripThickness)
	}
	if sp.InnerLegLength != 6 || sp.OuterLegLength != 12 || sp.BendRadius != 3 {
		t.Error("leg dimensions not carried through")
	}
}

func TestLoadSpringFileCompression(t *testing.T) {
	path := writeSpringFile(t, `
family: compression
mean_diameter: 30
wire_diameter: 2
turns: 10
pitch: 5
closed_ends: true
`)

	sf, err := LoadSpringFile(path)
	if err != nil {
		t.Fatalf("failed to load spring file: %v", err)
	}

	def, err := sf.Definition()
	if err != nil {
		t.Fatalf("failed to convert definition: %v", err)
	}

	cp, ok := def.(spring.Compression)
	if !ok {
		t.Fatalf("expected spring.Compression, got %T", def)
	}
	if cp.MeanDiameter != 30 || cp.WireDiameter != 2 {
		t.Errorf("unexpected diameters %g / %g", cp.MeanDiameter, cp.WireDiameter)
	}
	if cp.Pitch != 5 {
		t.Errorf("expected pitch 5, got %g", cp.Pitch)
	}
	if !cp.ClosedEnds {
		t.Error("expected closed ends")
	}
	// Handedness omitted defaults to counterclockwise.
	if cp.Handedness != spring.Counterclockwise {
		t.Errorf("expected counterclockwise default, got %v", cp.Handedness)
	}
}

func TestLoadSpringFileExtension(t *testing.T) {
	path := writeSpringFile(t, `
family: extension
mean_diameter: 24
wire_diameter: 1.5
turns: 14
hook:
  type: side
  both_ends: true
`)

	sf, err := LoadSpringFile(path)
	if err != nil {
		t.Fatalf("failed to load spring file: %v", err)
	}

	def, err := sf.Definition()
	if err != nil {
		t.Fatalf("failed to convert definition: %v", err)
	}

	ex, ok := def.(spring.Extension)
	if !ok {
		t.Fatalf("expected spring.Extension, got %T", def)
	}
	if ex.Hook != hook.Side {
		t.Errorf("expected side hook, got %v", ex.Hook)
	}
	if !ex.HookBothEnds {
		t.Error("expected hooks on both ends")
	}
}

func TestSpringFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing family",
			content: "mean_diameter: 30\n",
		},
		{
			name:    "unknown family",
			content: "family: torsion\n",
		},
		{
			name:    "unknown handedness",
			content: "family: compression\nhandedness: widdershins\n",
		},
		{
			name:    "unknown hook type",
			content: "family: extension\nhook:\n  type: pigtail\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpringFile(t, tt.content)
			sf, err := LoadSpringFile(path)
			if err != nil {
				t.Fatalf("failed to load spring file: %v", err)
			}
			if _, err := sf.Definition(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSpringFileMissing(t *testing.T) {
	if _, err := LoadSpringFile("/nonexistent/spring.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}
