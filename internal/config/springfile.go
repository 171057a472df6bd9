package config

import (
	"fmt"
	"os"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/hook"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/spring"
	"gopkg.in/yaml.v3"
)

// SpringFile is the on-disk YAML description of one spring design. The
// family tag selects which of the dimension fields apply; the rest are
// ignored so one schema covers all families.
type SpringFile struct {
	Family     string `yaml:"family"`
	Handedness string `yaml:"handedness"`

	// Spiral (flat strip) dimensions, millimeters.
	InnerDiameter  float64 `yaml:"inner_diameter"`
	OuterDiameter  float64 `yaml:"outer_diameter"`
	StripWidth     float64 `yaml:"strip_width"`
	StripThickness float64 `yaml:"strip_thickness"`
	InnerLegLength float64 `yaml:"inner_leg_length"`
	OuterLegLength float64 `yaml:"outer_leg_length"`
	BendRadius     float64 `yaml:"bend_radius"`

	// Helical (round wire) dimensions, millimeters.
	MeanDiameter float64 `yaml:"mean_diameter"`
	WireDiameter float64 `yaml:"wire_diameter"`
	Pitch        float64 `yaml:"pitch"`
	ClosedEnds   bool    `yaml:"closed_ends"`

	Turns float64 `yaml:"turns"`

	Hook HookFile `yaml:"hook"`
}

// HookFile describes the end feature of an extension spring.
type HookFile struct {
	Type     string `yaml:"type"`
	BothEnds bool   `yaml:"both_ends"`
}

// LoadSpringFile reads and parses a spring definition file.
func LoadSpringFile(path string) (*SpringFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spring file: %w", err)
	}

	var sf SpringFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing spring file %s: %w", path, err)
	}
	return &sf, nil
}

// Definition converts the file representation to a typed spring
// definition. Dimensional validation happens later, at build time; this
// only rejects values that cannot be mapped at all.
func (sf *SpringFile) Definition() (spring.Definition, error) {
	hand, err := spring.ParseHandedness(sf.Handedness)
	if err != nil {
		return nil, err
	}

	switch sf.Family {
	case "spiral":
		return spring.Spiral{
			InnerDiameter:  sf.InnerDiameter,
			OuterDiameter:  sf.OuterDiameter,
			Turns:          sf.Turns,
			Handedness:     hand,
			StripWidth:     sf.StripWidth,
			StripThickness: sf.StripThickness,
			InnerLegLength: sf.InnerLegLength,
			OuterLegLength: sf.OuterLegLength,
			BendRadius:     sf.BendRadius,
		}, nil

	case "compression":
		return spring.Compression{
			MeanDiameter: sf.MeanDiameter,
			WireDiameter: sf.WireDiameter,
			Turns:        sf.Turns,
			Pitch:        sf.Pitch,
			Handedness:   hand,
			ClosedEnds:   sf.ClosedEnds,
		}, nil

	case "extension":
		ht, err := hook.ParseType(sf.Hook.Type)
		if err != nil {
			return nil, err
		}
		return spring.Extension{
			MeanDiameter: sf.MeanDiameter,
			WireDiameter: sf.WireDiameter,
			Turns:        sf.Turns,
			Handedness:   hand,
			Hook:         ht,
			HookBothEnds: sf.Hook.BothEnds,
		}, nil

	case "":
		return nil, fmt.Errorf("spring file is missing the family field")
	default:
		return nil, fmt.Errorf("unknown spring family %q", sf.Family)
	}
}
