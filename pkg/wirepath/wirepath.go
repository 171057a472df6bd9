// Package wirepath builds continuous 3D centerlines for spring wire paths:
// sampled positions decorated with orthonormal material frames (tangent,
// normal, binormal) suitable for cross-section sweeping and CAD re-sweep.
//
// Conventions: units are millimeters, the world is right-handed, and the
// part's rotation axis is +Z unless a builder is told otherwise.
package wirepath

import "gonum.org/v1/gonum/spatial/r3"

// Point is one sample along the centerline. Tangent, Normal and Binormal
// form a right-handed orthonormal basis within FrameTolerance.
type Point struct {
	Position r3.Vec
	Tangent  r3.Vec
	Normal   r3.Vec
	Binormal r3.Vec
}

// RegionKind labels the construction method of a run of points.
type RegionKind int

const (
	RegionInnerLeg RegionKind = iota
	RegionBody
	RegionBend
	RegionOuterLeg
	RegionHookTransition
	RegionHookLoop
)

// String returns a human-readable region kind name.
func (k RegionKind) String() string {
	switch k {
	case RegionInnerLeg:
		return "inner-leg"
	case RegionBody:
		return "body"
	case RegionBend:
		return "bend"
	case RegionOuterLeg:
		return "outer-leg"
	case RegionHookTransition:
		return "hook-transition"
	case RegionHookLoop:
		return "hook-loop"
	default:
		return "unknown"
	}
}

// Region is a labeled half-open index range [Start, End) into a shared
// point slice. Regions are concatenated in path order; the last point of
// region i and the first point of region i+1 coincide in position.
type Region struct {
	Kind  RegionKind
	Name  string
	Start int
	End   int
}

// Len returns the number of points in the region.
func (r Region) Len() int { return r.End - r.Start }

// PathLength returns the polyline length of the sampled centerline, the
// developed wire length used for material estimates.
func PathLength(points []Point) float64 {
	var l float64
	for i := 1; i < len(points); i++ {
		l += r3.Norm(r3.Sub(points[i].Position, points[i-1].Position))
	}
	return l
}
