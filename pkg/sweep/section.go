// Package sweep turns a frame-decorated centerline into a closed
// triangulated solid: cross-section rings connected by side walls plus two
// end caps, with vertex normals recomputed from the actual geometry. The
// output buffers are ready for GPU upload or STL export.
package sweep

import "github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"

// SectionKind discriminates the supported cross-section shapes.
type SectionKind int

const (
	SectionRect SectionKind = iota
	SectionCircle
)

// Section describes the 2D profile swept along the path. For rectangles,
// Thickness spans the frame normal (the radial direction on coil bodies)
// and Width spans the binormal. For circles, WireDiameter is the full
// diameter and Segments the ring tessellation (defaults to 16).
type Section struct {
	Kind         SectionKind
	Width        float64
	Thickness    float64
	WireDiameter float64
	Segments     int
}

// Rect returns a rectangular strip section.
func Rect(width, thickness float64) Section {
	return Section{Kind: SectionRect, Width: width, Thickness: thickness}
}

// Circle returns a round wire section.
func Circle(wireDiameter float64) Section {
	return Section{Kind: SectionCircle, WireDiameter: wireDiameter}
}

// RadialExtent returns the section's size along the frame normal, the
// dimension that must fit within the radial spacing of adjacent turns.
func (s Section) RadialExtent() float64 {
	if s.Kind == SectionCircle {
		return s.WireDiameter
	}
	return s.Thickness
}

func (s Section) validate() error {
	switch s.Kind {
	case SectionRect:
		if s.Width <= 0 {
			return &wirepath.ConfigurationError{Param: "width", Detail: "must be > 0"}
		}
		if s.Thickness <= 0 {
			return &wirepath.ConfigurationError{Param: "thickness", Detail: "must be > 0"}
		}
	case SectionCircle:
		if s.WireDiameter <= 0 {
			return &wirepath.ConfigurationError{Param: "wireDiameter", Detail: "must be > 0"}
		}
		if s.Segments != 0 && s.Segments < 3 {
			return &wirepath.ConfigurationError{Param: "sectionSegments", Detail: "must be >= 3"}
		}
	default:
		return &wirepath.ConfigurationError{Param: "sectionKind", Detail: "unknown section kind"}
	}
	return nil
}

// segments returns the effective ring tessellation for circular sections.
func (s Section) segments() int {
	if s.Segments >= 3 {
		return s.Segments
	}
	return 16
}
