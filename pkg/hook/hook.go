// Package hook maps extension-spring hook variants onto declarative
// geometric recipes. Every variant is described by a Spec value; a single
// generic builder consumes any Spec, so adding a hook family means adding
// one Spec, not a new geometry function.
package hook

import (
	"fmt"
	"math"
)

// Type identifies a hook family. The set is closed and controlled
// upstream; Resolve treats unknown values as Machine.
type Type int

const (
	Machine Type = iota
	Side
	Crossover
	Extended
	DoubleLoop
)

// String returns the canonical hook family name.
func (t Type) String() string {
	switch t {
	case Machine:
		return "machine"
	case Side:
		return "side"
	case Crossover:
		return "crossover"
	case Extended:
		return "extended"
	case DoubleLoop:
		return "double-loop"
	default:
		return "machine"
	}
}

// ParseType parses a hook family name as used in spring definition files.
func ParseType(s string) (Type, error) {
	switch s {
	case "machine", "":
		return Machine, nil
	case "side":
		return Side, nil
	case "crossover":
		return Crossover, nil
	case "extended":
		return Extended, nil
	case "double-loop", "doubleloop":
		return DoubleLoop, nil
	default:
		return Machine, fmt.Errorf("unknown hook type %q", s)
	}
}

// PlaneType orients the loop plane relative to the spring's rotation axis.
type PlaneType int

const (
	// PlaneContainsAxis puts the loop in a plane spanned by the axis and
	// the radial direction at the body end (machine/side style).
	PlaneContainsAxis PlaneType = iota
	// PlanePerpendicularToAxis puts the loop in a plane perpendicular to
	// the axis (crossover style).
	PlanePerpendicularToAxis
)

// CenterMode places the loop center.
type CenterMode int

const (
	CenterOnAxis CenterMode = iota
	CenterRadialOffset
)

// Spec is the declarative recipe for one hook family. All *Factor fields
// are proportionality constants: LoopRadiusFactor scales the mean coil
// radius; GapFactor, OffsetFactor and HandleFactor scale the wire diameter
// so the hook grows with part size.
type Spec struct {
	Loops            int
	Span             float64 // angular span per loop, radians
	Plane            PlaneType
	Center           CenterMode
	LoopRadiusFactor float64
	Ellipticity      float64 // minor/major loop radius ratio; 1 = circular
	GapFactor        float64
	OffsetFactor     float64
	HandleFactor     float64
}

// Resolve returns the geometric recipe for a hook family. It is total:
// unknown variants fall back to the machine hook, since the hook type is
// always one of a closed enumeration controlled upstream.
func Resolve(t Type) Spec {
	switch t {
	case Side:
		return Spec{
			Loops:            1,
			Span:             1.6 * math.Pi,
			Plane:            PlaneContainsAxis,
			Center:           CenterRadialOffset,
			LoopRadiusFactor: 0.45,
			Ellipticity:      0.85,
			GapFactor:        0.25,
			OffsetFactor:     0.6,
			HandleFactor:     2.0,
		}
	case Crossover:
		return Spec{
			Loops:            1,
			Span:             1.75 * math.Pi,
			Plane:            PlanePerpendicularToAxis,
			Center:           CenterOnAxis,
			LoopRadiusFactor: 0.6,
			Ellipticity:      1,
			GapFactor:        0.5,
			OffsetFactor:     1.5,
			HandleFactor:     2.5,
		}
	case Extended:
		return Spec{
			Loops:            1,
			Span:             1.5 * math.Pi,
			Plane:            PlaneContainsAxis,
			Center:           CenterOnAxis,
			LoopRadiusFactor: 0.8,
			Ellipticity:      1,
			GapFactor:        0.5,
			OffsetFactor:     3.0,
			HandleFactor:     3.5,
		}
	case DoubleLoop:
		return Spec{
			Loops:            2,
			Span:             2 * math.Pi,
			Plane:            PlaneContainsAxis,
			Center:           CenterOnAxis,
			LoopRadiusFactor: 0.75,
			Ellipticity:      1,
			GapFactor:        0.4,
			OffsetFactor:     1.0,
			HandleFactor:     2.5,
		}
	default: // Machine and anything unknown
		return Spec{
			Loops:            1,
			Span:             1.5 * math.Pi,
			Plane:            PlaneContainsAxis,
			Center:           CenterOnAxis,
			LoopRadiusFactor: 0.8,
			Ellipticity:      1,
			GapFactor:        0.5,
			OffsetFactor:     1.0,
			HandleFactor:     2.5,
		}
	}
}
