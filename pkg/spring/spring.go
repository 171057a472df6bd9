// Package spring assembles complete spring wire centerlines from
// family-specific parameter sets and sweeps them into render-ready solids.
// It is the kernel's public entry point: purely functional, deterministic,
// and free of I/O, so independent builds can run concurrently.
package spring

import (
	"fmt"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/hook"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/sweep"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

// Handedness is the winding direction of the coil viewed along +Z.
type Handedness int

const (
	Counterclockwise Handedness = iota
	Clockwise
)

// String returns the canonical handedness name.
func (h Handedness) String() string {
	if h == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// ParseHandedness parses a handedness name as used in definition files.
func ParseHandedness(s string) (Handedness, error) {
	switch s {
	case "counterclockwise", "ccw", "":
		return Counterclockwise, nil
	case "clockwise", "cw":
		return Clockwise, nil
	default:
		return Counterclockwise, fmt.Errorf("unknown handedness %q", s)
	}
}

func (h Handedness) clockwise() bool { return h == Clockwise }

// Family identifies a spring construction family.
type Family int

const (
	FamilySpiral Family = iota
	FamilyCompression
	FamilyExtension
)

// String returns the canonical family name.
func (f Family) String() string {
	switch f {
	case FamilyCompression:
		return "compression"
	case FamilyExtension:
		return "extension"
	default:
		return "spiral"
	}
}

// Definition is one spring family's own parameter set. Each family carries
// only the fields valid for it and resolves exactly once, at the Build
// boundary, into the shared Parameters shape.
type Definition interface {
	Family() Family
	resolve() (Parameters, error)
}

// Spiral is a flat Archimedean strip spring wound in the z = 0 plane:
// optional straight inner leg, spiral body, optional bend and outer leg,
// rectangular strip cross-section. Dimensions in millimeters.
type Spiral struct {
	InnerDiameter  float64
	OuterDiameter  float64
	Turns          float64
	Handedness     Handedness
	StripWidth     float64 // along the spring axis
	StripThickness float64 // radial
	InnerLegLength float64 // 0 = no inner leg
	OuterLegLength float64 // 0 = no outer leg
	BendRadius     float64 // 0 = outer leg continues tangentially
}

// Family implements Definition.
func (s Spiral) Family() Family { return FamilySpiral }

func (s Spiral) resolve() (Parameters, error) {
	return Parameters{
		Family:         FamilySpiral,
		InnerRadius:    s.InnerDiameter / 2,
		OuterRadius:    s.OuterDiameter / 2,
		Turns:          s.Turns,
		Handedness:     s.Handedness,
		Section:        sweep.Rect(s.StripWidth, s.StripThickness),
		InnerLegLength: s.InnerLegLength,
		OuterLegLength: s.OuterLegLength,
		BendRadius:     s.BendRadius,
	}, nil
}

// Compression is a constant-radius helical compression spring with round
// wire. ClosedEnds ramps the first and last turn down to close-wound.
type Compression struct {
	MeanDiameter float64
	WireDiameter float64
	Turns        float64
	Pitch        float64 // axial advance per turn
	Handedness   Handedness
	ClosedEnds   bool
}

// Family implements Definition.
func (c Compression) Family() Family { return FamilyCompression }

func (c Compression) resolve() (Parameters, error) {
	return Parameters{
		Family:     FamilyCompression,
		MeanRadius: c.MeanDiameter / 2,
		Turns:      c.Turns,
		Pitch:      c.Pitch,
		Handedness: c.Handedness,
		Section:    sweep.Circle(c.WireDiameter),
		ClosedEnds: c.ClosedEnds,
	}, nil
}

// Extension is a close-wound helical extension spring with a hook on the
// top end and, when HookBothEnds is set, a mirrored hook on the bottom.
type Extension struct {
	MeanDiameter float64
	WireDiameter float64
	Turns        float64
	Handedness   Handedness
	Hook         hook.Type
	HookBothEnds bool
}

// Family implements Definition.
func (e Extension) Family() Family { return FamilyExtension }

func (e Extension) resolve() (Parameters, error) {
	return Parameters{
		Family:       FamilyExtension,
		MeanRadius:   e.MeanDiameter / 2,
		Turns:        e.Turns,
		Pitch:        e.WireDiameter, // close-wound
		Handedness:   e.Handedness,
		Section:      sweep.Circle(e.WireDiameter),
		Hook:         e.Hook,
		HookBothEnds: e.HookBothEnds,
	}, nil
}

// Parameters is the single resolved shape every family reduces to.
// Immutable after resolution; Validate runs once before any geometry is
// built.
type Parameters struct {
	Family         Family
	InnerRadius    float64
	OuterRadius    float64
	MeanRadius     float64
	Turns          float64
	Pitch          float64
	Handedness     Handedness
	Section        sweep.Section
	InnerLegLength float64
	OuterLegLength float64
	BendRadius     float64
	Hook           hook.Type
	HookBothEnds   bool
	ClosedEnds     bool
}

// RadialSpacing returns the radial distance between adjacent turns of a
// spiral body.
func (p Parameters) RadialSpacing() float64 {
	if p.Turns <= 0 {
		return 0
	}
	return (p.OuterRadius - p.InnerRadius) / p.Turns
}

// Validate checks the resolved parameters for physical consistency. It
// reports invalid designs as ConfigurationError and never corrects them
// silently.
func (p Parameters) Validate() error {
	switch p.Family {
	case FamilySpiral:
		if p.InnerRadius < 0 {
			return configErr("innerDiameter", "must be >= 0")
		}
		if p.OuterRadius <= p.InnerRadius {
			return configErr("outerDiameter", "must exceed inner diameter")
		}
		if p.Turns <= 0 {
			return configErr("turns", "must be > 0")
		}
		if p.Section.Width <= 0 {
			return configErr("stripWidth", "must be > 0")
		}
		if p.Section.Thickness <= 0 {
			return configErr("stripThickness", "must be > 0")
		}
		if spacing := p.RadialSpacing(); p.Section.Thickness > spacing {
			return configErr("stripThickness",
				"strip thickness exceeds radial spacing between turns (%g mm > %g mm)",
				p.Section.Thickness, spacing)
		}
		if p.InnerLegLength < 0 {
			return configErr("innerLegLength", "must be >= 0")
		}
		if p.OuterLegLength < 0 {
			return configErr("outerLegLength", "must be >= 0")
		}
		if p.BendRadius < 0 {
			return configErr("bendRadius", "must be >= 0")
		}
	case FamilyCompression, FamilyExtension:
		if p.MeanRadius <= 0 {
			return configErr("meanDiameter", "must be > 0")
		}
		if p.Turns <= 0 {
			return configErr("turns", "must be > 0")
		}
		if p.Section.WireDiameter <= 0 {
			return configErr("wireDiameter", "must be > 0")
		}
		if p.Pitch < p.Section.WireDiameter {
			return configErr("pitch",
				"wire diameter exceeds coil pitch, coils overlap (%g mm > %g mm)",
				p.Section.WireDiameter, p.Pitch)
		}
	default:
		return configErr("family", "unknown spring family")
	}
	return nil
}

func configErr(param, format string, args ...any) error {
	return &wirepath.ConfigurationError{Param: param, Detail: fmt.Sprintf(format, args...)}
}
