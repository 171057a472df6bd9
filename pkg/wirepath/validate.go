package wirepath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/geom"
)

// FrameTolerance is the numerical tolerance for frame orthonormality.
const FrameTolerance = 1e-4

// Report is the outcome of validating a frame sequence. Errors are
// invariant violations (defects in frame propagation); Warnings flag
// legitimate-but-unusual geometry such as inward-facing normals.
type Report struct {
	Valid    bool
	Checked  int
	Errors   []string
	Warnings []string
}

// ValidateOptions controls optional checks.
type ValidateOptions struct {
	// Tolerance overrides FrameTolerance when > 0.
	Tolerance float64
	// CheckOutward warns when a normal faces toward Axis instead of away
	// from it. Some hook variants intentionally face inward, so this is
	// never an error.
	CheckOutward bool
	Axis         r3.Vec
}

// Validate checks every frame for unit length, pairwise orthogonality and
// right-handedness. It is the kernel's correctness contract: a failing
// check means the propagator is defective, and callers should surface it
// as an InvariantViolation rather than rendering the path.
func Validate(points []Point, opts ValidateOptions) Report {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = FrameTolerance
	}

	rep := Report{Checked: len(points)}
	for i, p := range points {
		for _, c := range []struct {
			name string
			v    r3.Vec
		}{{"T", p.Tangent}, {"N", p.Normal}, {"B", p.Binormal}} {
			if n := r3.Norm(c.v); math.Abs(n-1) > tol {
				rep.Errors = append(rep.Errors, fmt.Sprintf("frame %d: |%s| = %.6f, want 1", i, c.name, n))
			}
		}
		for _, c := range []struct {
			name string
			dot  float64
		}{
			{"T.N", r3.Dot(p.Tangent, p.Normal)},
			{"T.B", r3.Dot(p.Tangent, p.Binormal)},
			{"N.B", r3.Dot(p.Normal, p.Binormal)},
		} {
			if math.Abs(c.dot) > tol {
				rep.Errors = append(rep.Errors, fmt.Sprintf("frame %d: %s = %.6f, want 0", i, c.name, c.dot))
			}
		}
		if r3.Dot(r3.Cross(p.Tangent, p.Normal), p.Binormal) <= 0 {
			rep.Errors = append(rep.Errors, fmt.Sprintf("frame %d: left-handed basis", i))
		}
		if opts.CheckOutward {
			radial := geom.Perp(p.Position, opts.Axis)
			if r3.Norm(radial) > geom.Eps && r3.Dot(p.Normal, radial) < 0 {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("frame %d: normal faces toward axis", i))
			}
		}
	}
	rep.Valid = len(rep.Errors) == 0
	return rep
}
