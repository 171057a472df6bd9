package wirepath

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/geom"
)

// Frame propagation turns raw positions (plus optional tangent hints) into
// full orthonormal frames. Two modes exist:
//
//   - PropagateFrames: parallel transport seeded from a radially-outward
//     normal. Used for smooth free-form regions (spiral and helix bodies)
//     where the only requirement is twist-free continuity.
//   - FeatureFrames: closed-form construction keyed off the preceding
//     region's last frame. Used for explicit end features (legs, bends,
//     hooks) whose thickness axis must face a specific physical direction.
//
// Every numerical degeneracy (zero radial vector, near-parallel consecutive
// tangents, vanishing cross products) has a deterministic local fallback;
// propagation never fails.

// resolveTangents fills in a unit tangent for every sample, preferring the
// analytic hint and falling back to finite differences. Coincident
// neighboring samples reuse the nearest defined tangent.
func resolveTangents(pos, hint []r3.Vec) []r3.Vec {
	n := len(pos)
	tans := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		if i < len(hint) {
			if u, ok := geom.Unit(hint[i]); ok {
				tans[i] = u
				continue
			}
		}
		var d r3.Vec
		switch {
		case n < 2:
			// No neighbor to difference against; the fixed-axis
			// fallback below supplies the tangent.
		case i == 0:
			d = r3.Sub(pos[1], pos[0])
		case i == n-1:
			d = r3.Sub(pos[n-1], pos[n-2])
		default:
			d = r3.Sub(pos[i+1], pos[i-1])
		}
		if u, ok := geom.Unit(d); ok {
			tans[i] = u
		}
	}
	// Backfill any still-undefined tangents from a defined neighbor so
	// runs of coincident points inherit a direction.
	var last r3.Vec
	for i := 0; i < n; i++ {
		if tans[i] != (r3.Vec{}) {
			last = tans[i]
		} else if last != (r3.Vec{}) {
			tans[i] = last
		}
	}
	for i := n - 1; i >= 0; i-- {
		if tans[i] != (r3.Vec{}) {
			last = tans[i]
		} else if last != (r3.Vec{}) {
			tans[i] = last
		}
	}
	// Fully degenerate input (all samples coincident): pick a fixed axis.
	for i := 0; i < n; i++ {
		if tans[i] == (r3.Vec{}) {
			tans[i] = r3.Vec{X: 1}
		}
	}
	return tans
}

// seedNormal derives the first normal of a smooth region from the outward
// radial direction at p, with a three-tier fallback:
//
//  1. project the radial vector (axis to p, perpendicular to axis) onto
//     the plane perpendicular to the tangent;
//  2. if the point sits on the axis, rotate the tangent 90 degrees within
//     the plane perpendicular to the axis;
//  3. if that is also degenerate (tangent parallel to the axis' normal
//     plane collapses), use a fixed perpendicular of the tangent.
func seedNormal(p, tangent, axis r3.Vec) r3.Vec {
	radial := geom.Perp(p, axis)
	if n, ok := geom.Unit(geom.Perp(radial, tangent)); ok {
		return n
	}
	if n, ok := geom.Unit(geom.Perp(r3.Cross(axis, tangent), tangent)); ok {
		return n
	}
	return geom.AnyPerpendicular(tangent)
}

// PropagateFrames assigns a frame to every position of a smooth region.
// The first normal is seeded radially outward from axis; subsequent normals
// are carried forward by parallel transport: the previous normal is rotated
// by the angle between consecutive tangents about their common rotation
// axis. Near-parallel tangents keep the previous normal unchanged instead
// of attempting an unstable rotation.
func PropagateFrames(pos, tanHint []r3.Vec, axis r3.Vec) []Point {
	n := len(pos)
	if n == 0 {
		return nil
	}
	tans := resolveTangents(pos, tanHint)
	points := make([]Point, n)

	normal := seedNormal(pos[0], tans[0], axis)
	for i := 0; i < n; i++ {
		t := tans[i]
		if i > 0 {
			prev := tans[i-1]
			rotAxis := r3.Cross(prev, t)
			if angle := geom.AngleBetween(prev, t); angle > geom.Eps && r3.Norm(rotAxis) > geom.Eps {
				normal = geom.RotateAbout(normal, rotAxis, angle)
			}
		}
		// Remove accumulated drift out of the tangent-normal plane.
		if u, ok := geom.Unit(geom.Perp(normal, t)); ok {
			normal = u
		} else {
			normal = geom.AnyPerpendicular(t)
		}
		points[i] = Point{
			Position: pos[i],
			Tangent:  t,
			Normal:   normal,
			Binormal: r3.Cross(t, normal),
		}
	}
	return points
}

// FeatureFrames assigns frames to an explicit end feature. The first frame
// reuses the preceding frame's normal (projected onto the new tangent's
// perpendicular plane) so that region boundaries hand off without a jump.
// Subsequent frames are built in closed form so the binormal stays aligned
// with the preceding region's binormal; each frame is sign-corrected
// against that reference so the cross-section cannot flip 180 degrees at
// the boundary.
func FeatureFrames(pos, tanHint []r3.Vec, prev Point) []Point {
	n := len(pos)
	if n == 0 {
		return nil
	}
	tans := resolveTangents(pos, tanHint)
	points := make([]Point, n)

	refB := prev.Binormal
	if u, ok := geom.Unit(refB); ok {
		refB = u
	} else {
		refB = geom.AnyPerpendicular(tans[0])
	}

	for i := 0; i < n; i++ {
		t := tans[i]
		var normal r3.Vec
		if i == 0 {
			// Continuity: match the previous region's normal exactly
			// (up to the unavoidable projection onto the new tangent).
			if u, ok := geom.Unit(geom.Perp(prev.Normal, t)); ok {
				normal = u
			}
		}
		if normal == (r3.Vec{}) {
			if u, ok := geom.Unit(r3.Cross(refB, t)); ok {
				normal = u
			} else if u, ok := geom.Unit(geom.Perp(prev.Normal, t)); ok {
				normal = u
			} else {
				normal = geom.AnyPerpendicular(t)
			}
		}
		binormal := r3.Cross(t, normal)
		// Keep the width axis on the same side as the reference.
		if r3.Dot(binormal, refB) < 0 {
			normal = r3.Scale(-1, normal)
			binormal = r3.Scale(-1, binormal)
		}
		points[i] = Point{Position: pos[i], Tangent: t, Normal: normal, Binormal: binormal}
		refB = binormal
	}
	return points
}
