package wirepath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/geom"
)

// Segment builders emit raw positions for one geometric primitive plus,
// where cheap to compute analytically, a unit tangent hint per sample.
// A zero tangent hint means "no hint"; the frame propagator falls back to
// finite differences for those samples.

// SpiralArc samples an Archimedean spiral in the z = 0 plane around the +Z
// axis: r(theta) = innerRadius + a*theta with a chosen so the final radius
// is outerRadius after the given number of turns. clockwise flips the
// angular direction. innerRadius may be zero (spiral starting on the axis).
func SpiralArc(innerRadius, outerRadius, turns float64, clockwise bool, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	if innerRadius < 0 {
		return nil, nil, configErr("innerRadius", "must be >= 0, got %g", innerRadius)
	}
	if turns <= 0 {
		return nil, nil, configErr("turns", "must be > 0, got %g", turns)
	}
	if outerRadius <= innerRadius {
		return nil, nil, configErr("outerRadius", "must exceed innerRadius (%g), got %g", innerRadius, outerRadius)
	}

	total := 2 * math.Pi * turns
	a := (outerRadius - innerRadius) / total
	sign := 1.0
	if clockwise {
		sign = -1
	}

	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	for i := 0; i < samples; i++ {
		theta := total * float64(i) / float64(samples-1)
		r := innerRadius + a*theta
		sin, cos := math.Sincos(sign * theta)
		pos[i] = r3.Vec{X: r * cos, Y: r * sin}
		// d/dtheta of (r(theta) cos(s theta), r(theta) sin(s theta), 0).
		d := r3.Vec{
			X: a*cos - r*sign*sin,
			Y: a*sin + r*sign*cos,
		}
		if u, ok := geom.Unit(d); ok {
			tan[i] = u
		}
	}
	return pos, tan, nil
}

// ConstantPitch returns a pitch profile with the same axial advance on
// every turn.
func ConstantPitch(pitch float64) func(turn float64) float64 {
	return func(float64) float64 { return pitch }
}

// Helix samples a helix of constant radius around the +Z axis starting at
// angle 0, z = 0. pitchAt reports the local axial advance per turn as a
// function of the turn coordinate in [0, turns]; it is integrated
// numerically so close-wound end ramps stay smooth.
func Helix(radius, turns float64, clockwise bool, pitchAt func(turn float64) float64, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	if radius <= 0 {
		return nil, nil, configErr("radius", "must be > 0, got %g", radius)
	}
	if turns <= 0 {
		return nil, nil, configErr("turns", "must be > 0, got %g", turns)
	}
	if pitchAt == nil {
		pitchAt = ConstantPitch(0)
	}

	sign := 1.0
	if clockwise {
		sign = -1
	}

	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	z := 0.0
	prevTurn := 0.0
	prevPitch := pitchAt(0)
	for i := 0; i < samples; i++ {
		turn := turns * float64(i) / float64(samples-1)
		p := pitchAt(turn)
		// Trapezoidal accumulation of axial advance.
		z += (turn - prevTurn) * 0.5 * (p + prevPitch)
		prevTurn, prevPitch = turn, p

		theta := 2 * math.Pi * turn
		sin, cos := math.Sincos(sign * theta)
		pos[i] = r3.Vec{X: radius * cos, Y: radius * sin, Z: z}
		d := r3.Vec{
			X: -radius * sign * sin,
			Y: radius * sign * cos,
			Z: p / (2 * math.Pi),
		}
		if u, ok := geom.Unit(d); ok {
			tan[i] = u
		}
	}
	return pos, tan, nil
}

// Line samples a straight segment from a to b with a fixed tangent.
func Line(a, b r3.Vec, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	dir, ok := geom.Unit(r3.Sub(b, a))
	if !ok {
		return nil, nil, configErr("length", "leg endpoints coincide")
	}

	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		pos[i] = geom.Lerp(a, b, t)
		tan[i] = dir
	}
	// Endpoints must match the caller's values exactly so that region
	// boundaries coincide bit-for-bit, not just within rounding.
	pos[0] = a
	pos[samples-1] = b
	return pos, tan, nil
}

// Bend samples a circular arc of the given radius starting at p0 with
// tangent from, turning until the tangent reaches to. If from and to are
// already parallel the arc degenerates to the single start point, which the
// sweep stage tolerates.
func Bend(p0, from, to r3.Vec, radius float64, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	if radius <= 0 {
		return nil, nil, configErr("bendRadius", "must be > 0, got %g", radius)
	}
	t0, ok := geom.Unit(from)
	if !ok {
		return nil, nil, configErr("bendTangent", "start tangent is zero")
	}
	t1, ok := geom.Unit(to)
	if !ok {
		return nil, nil, configErr("bendTangent", "end tangent is zero")
	}

	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	axis, ok := geom.Unit(r3.Cross(t0, t1))
	if !ok {
		// Parallel tangents: nothing to turn through.
		for i := 0; i < samples; i++ {
			pos[i] = p0
			tan[i] = t0
		}
		return pos, tan, nil
	}

	sweep := geom.AngleBetween(t0, t1)
	// Center sits to the side of the path, perpendicular to the start
	// tangent within the bend plane.
	toCenter := r3.Cross(axis, t0)
	center := r3.Add(p0, r3.Scale(radius, toCenter))
	arm := r3.Sub(p0, center)
	for i := 0; i < samples; i++ {
		phi := sweep * float64(i) / float64(samples-1)
		pos[i] = r3.Add(center, geom.RotateAbout(arm, axis, phi))
		tan[i] = geom.RotateAbout(t0, axis, phi)
	}
	// The arc starts exactly where the caller said, not center+arm
	// re-assembled through rounding.
	pos[0] = p0
	tan[0] = t0
	return pos, tan, nil
}

// PlanarArc samples an elliptical arc in the plane spanned by the
// orthonormal basis (u, v) centered at c:
//
//	P(phi) = c + ru*cos(phi)*u + rv*sin(phi)*v
//
// with phi running from start over span (signed; negative spans reverse the
// direction of travel). Circular arcs use ru == rv.
func PlanarArc(c, u, v r3.Vec, ru, rv, start, span float64, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	if ru <= 0 {
		return nil, nil, configErr("loopRadius", "must be > 0, got %g", ru)
	}
	if rv <= 0 {
		return nil, nil, configErr("loopRadius", "must be > 0, got %g", rv)
	}
	if span == 0 {
		return nil, nil, configErr("loopSpan", "must be non-zero")
	}

	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	dir := 1.0
	if span < 0 {
		dir = -1
	}
	for i := 0; i < samples; i++ {
		phi := start + span*float64(i)/float64(samples-1)
		sin, cos := math.Sincos(phi)
		pos[i] = r3.Add(c, r3.Add(r3.Scale(ru*cos, u), r3.Scale(rv*sin, v)))
		d := r3.Add(r3.Scale(-ru*sin*dir, u), r3.Scale(rv*cos*dir, v))
		if t, ok := geom.Unit(d); ok {
			tan[i] = t
		}
	}
	return pos, tan, nil
}

// CubicBezier samples a cubic Bezier curve from p0 to p3 with control
// points p1 and p2. Tangent hints come from the analytic derivative and are
// omitted where the derivative vanishes (coincident control points).
func CubicBezier(p0, p1, p2, p3 r3.Vec, samples int) (pos, tan []r3.Vec, err error) {
	if err := checkSamples(samples); err != nil {
		return nil, nil, err
	}
	pos = make([]r3.Vec, samples)
	tan = make([]r3.Vec, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		mt := 1 - t
		pos[i] = r3.Add(
			r3.Add(r3.Scale(mt*mt*mt, p0), r3.Scale(3*mt*mt*t, p1)),
			r3.Add(r3.Scale(3*mt*t*t, p2), r3.Scale(t*t*t, p3)),
		)
		d := r3.Add(
			r3.Add(r3.Scale(3*mt*mt, r3.Sub(p1, p0)), r3.Scale(6*mt*t, r3.Sub(p2, p1))),
			r3.Scale(3*t*t, r3.Sub(p3, p2)),
		)
		if u, ok := geom.Unit(d); ok {
			tan[i] = u
		}
	}
	return pos, tan, nil
}

func checkSamples(samples int) error {
	if samples < 2 {
		return configErr("samples", "must be >= 2, got %d", samples)
	}
	return nil
}
