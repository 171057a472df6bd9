// Package geom provides small float64 vector helpers on top of gonum's
// spatial/r3 types, with defined behavior for degenerate inputs.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Eps is the degeneracy threshold: vectors shorter than this are treated
// as zero and directions closer than this are treated as parallel.
const Eps = 1e-9

// Unit returns v normalized. ok is false when v is too short to carry a
// direction, in which case the zero vector is returned.
func Unit(v r3.Vec) (u r3.Vec, ok bool) {
	n := r3.Norm(v)
	if n < Eps {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// Perp returns the component of v perpendicular to the unit vector n.
func Perp(v, n r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(r3.Dot(v, n), n))
}

// RotateAbout rotates v by angle (radians, right-handed) about axis.
// The axis does not need to be normalized but must be non-zero.
func RotateAbout(v, axis r3.Vec, angle float64) r3.Vec {
	return r3.NewRotation(angle, axis).Rotate(v)
}

// AngleBetween returns the angle in [0, pi] between a and b.
// Uses atan2 for stability near 0 and pi.
func AngleBetween(a, b r3.Vec) float64 {
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b))
}

// Lerp returns a + t*(b-a).
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// AnyPerpendicular returns a unit vector perpendicular to the unit vector v.
// The choice is deterministic: it crosses v with whichever world axis is
// least aligned with it.
func AnyPerpendicular(v r3.Vec) r3.Vec {
	axis := r3.Vec{X: 1}
	if math.Abs(v.X) > math.Abs(v.Y) {
		axis = r3.Vec{Y: 1}
	}
	u, ok := Unit(r3.Cross(v, axis))
	if !ok {
		// v itself was (near) zero; any direction will do.
		return r3.Vec{X: 1}
	}
	return u
}
