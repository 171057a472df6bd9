package hook

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/geom"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

// End is the generated hook geometry for one spring end: an optional
// transition run (empty when the loop start already coincides with the
// body end) followed by the loop run, both frame-decorated.
type End struct {
	Transition []wirepath.Point
	Loop       []wirepath.Point
}

// coincidentTol is the distance below which the loop start is considered
// to sit on the body end, making a transition curve pointless.
const coincidentTol = 1e-6

// BuildEnd generates hook geometry from any Spec. body is the last frame
// of the coil body, axis the spring's rotation axis (unit, +Z by
// convention), meanRadius the coil mean radius and wireDiameter the wire
// size both in millimeters. samples controls the loop sample count; the
// transition uses half of it.
//
// The construction is uniform across variants:
//
//  1. the loop's in-plane orthonormal basis follows Spec.Plane;
//  2. the loop center follows Spec.Center, gaps and offsets scaling with
//     wire diameter;
//  3. the loop is phased so its start point is the in-plane point nearest
//     the body end, and a cubic Bezier transition bridges body end to loop
//     start with handle lengths proportional to wire diameter.
func BuildEnd(spec Spec, body wirepath.Point, axis r3.Vec, meanRadius, wireDiameter float64, samples int) (End, error) {
	if meanRadius <= 0 {
		return End{}, &wirepath.ConfigurationError{Param: "meanRadius", Detail: "must be > 0"}
	}
	if wireDiameter <= 0 {
		return End{}, &wirepath.ConfigurationError{Param: "wireDiameter", Detail: "must be > 0"}
	}
	if spec.Loops < 1 {
		return End{}, &wirepath.ConfigurationError{Param: "hookLoops", Detail: "must be >= 1"}
	}
	if samples < 4 {
		samples = 4
	}

	p0 := body.Position
	z0 := r3.Dot(p0, axis)

	// Radial direction at the body end; degenerate when the end sits on
	// the axis, in which case any perpendicular of the axis serves.
	radial, ok := geom.Unit(geom.Perp(p0, axis))
	if !ok {
		radial = geom.AnyPerpendicular(axis)
	}

	// In-plane basis (u, v) for the loop.
	var u, v r3.Vec
	switch spec.Plane {
	case PlanePerpendicularToAxis:
		u = radial
		v = r3.Cross(axis, radial)
	default: // PlaneContainsAxis
		u = radial
		v = axis
	}

	ru := spec.LoopRadiusFactor * meanRadius
	rv := ru
	if spec.Ellipticity > 0 {
		rv = ru * spec.Ellipticity
	}

	gap := spec.GapFactor * wireDiameter
	offset := spec.OffsetFactor * wireDiameter

	var center r3.Vec
	switch spec.Center {
	case CenterRadialOffset:
		center = r3.Add(p0, r3.Add(r3.Scale(-offset, radial), r3.Scale(rv+gap, axis)))
	default: // CenterOnAxis
		switch spec.Plane {
		case PlanePerpendicularToAxis:
			center = r3.Scale(z0+gap+offset, axis)
		default:
			center = r3.Scale(z0+gap+offset+rv, axis)
		}
	}

	// Phase the loop so it starts at the in-plane angle nearest the body
	// end: the shortest place for the transition to land.
	w := r3.Sub(p0, center)
	start := math.Atan2(r3.Dot(w, v)/rv, r3.Dot(w, u)/ru)
	span := spec.Span * float64(spec.Loops)

	loopPos, loopTan, err := wirepath.PlanarArc(center, u, v, ru, rv, start, span, samples)
	if err != nil {
		return End{}, err
	}

	loopStart := loopPos[0]
	if r3.Norm(r3.Sub(loopStart, p0)) <= coincidentTol {
		// Loop begins exactly at the body end: no transition needed.
		return End{Loop: wirepath.FeatureFrames(loopPos, loopTan, body)}, nil
	}

	handle := spec.HandleFactor * wireDiameter
	c1 := r3.Add(p0, r3.Scale(handle, body.Tangent))
	c2 := r3.Sub(loopStart, r3.Scale(handle, loopTan[0]))
	transSamples := samples / 2
	if transSamples < 4 {
		transSamples = 4
	}
	transPos, transTan, err := wirepath.CubicBezier(p0, c1, c2, loopStart, transSamples)
	if err != nil {
		return End{}, err
	}

	trans := wirepath.FeatureFrames(transPos, transTan, body)
	loop := wirepath.FeatureFrames(loopPos, loopTan, trans[len(trans)-1])
	return End{Transition: trans, Loop: loop}, nil
}
