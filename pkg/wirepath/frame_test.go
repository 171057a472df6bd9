package wirepath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

var testAxis = r3.Vec{Z: 1}

func checkFrames(t *testing.T, points []Point) {
	t.Helper()
	rep := Validate(points, ValidateOptions{})
	if !rep.Valid {
		t.Fatalf("frames invalid: %d errors, first: %s", len(rep.Errors), rep.Errors[0])
	}
}

func TestPropagateFramesSpiral(t *testing.T) {
	pos, tan, err := SpiralArc(5, 20, 5, false, 800)
	if err != nil {
		t.Fatal(err)
	}
	points := PropagateFrames(pos, tan, testAxis)
	checkFrames(t, points)

	// The seed normal faces radially outward.
	radial, _ := unitOf(points[0].Position)
	if r3.Dot(points[0].Normal, radial) < 0.99 {
		t.Errorf("seed normal not radially outward: %v", points[0].Normal)
	}
	// Parallel transport keeps the normal outward across the whole
	// in-plane spiral: re-deriving radially would agree everywhere.
	for i, p := range points {
		radial, ok := unitOf(p.Position)
		if !ok {
			continue
		}
		if r3.Dot(p.Normal, radial) < 0.99 {
			t.Fatalf("frame %d normal drifted from radial: dot = %v", i, r3.Dot(p.Normal, radial))
		}
	}
}

func TestPropagateFramesNoTwist(t *testing.T) {
	pos, tan, err := Helix(6, 8, false, ConstantPitch(2), 1600)
	if err != nil {
		t.Fatal(err)
	}
	points := PropagateFrames(pos, tan, testAxis)
	checkFrames(t, points)

	// No flips: consecutive normals turn by at most a few degrees.
	const maxStep = 2 * math.Pi / 180
	for i := 1; i < len(points); i++ {
		d := angleOf(points[i-1].Normal, points[i].Normal)
		if d > maxStep {
			t.Fatalf("normal jumped %v rad between samples %d and %d", d, i-1, i)
		}
	}
}

func TestPropagateFramesSpiralFromAxis(t *testing.T) {
	// Inner radius 0: the first sample sits on the axis where the radial
	// vector vanishes. The three-tier fallback must still produce fully
	// defined frames with no NaNs.
	pos, tan, err := SpiralArc(0, 20, 5, false, 800)
	if err != nil {
		t.Fatal(err)
	}
	points := PropagateFrames(pos, tan, testAxis)
	checkFrames(t, points)
	for i, p := range points {
		for _, v := range []r3.Vec{p.Position, p.Tangent, p.Normal, p.Binormal} {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
				t.Fatalf("frame %d contains NaN: %+v", i, p)
			}
		}
	}
}

func TestPropagateFramesCoincidentSamples(t *testing.T) {
	// Zero-length steps keep the previous frame instead of exploding.
	pos := []r3.Vec{{}, {}, {X: 1}, {X: 2}, {X: 2}, {X: 3}}
	points := PropagateFrames(pos, nil, testAxis)
	checkFrames(t, points)
}

func TestPropagateFramesSingleSample(t *testing.T) {
	// One sample has no finite difference to take; the fixed-axis
	// fallback still yields a valid frame.
	pos := []r3.Vec{{X: 1}}
	points := PropagateFrames(pos, nil, testAxis)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	checkFrames(t, points)

	feature := FeatureFrames(pos, nil, points[0])
	if len(feature) != 1 {
		t.Fatalf("got %d feature points, want 1", len(feature))
	}
	checkFrames(t, feature)
}

func TestFeatureFramesContinuity(t *testing.T) {
	pos, tan, err := SpiralArc(5, 20, 5, false, 400)
	if err != nil {
		t.Fatal(err)
	}
	body := PropagateFrames(pos, tan, testAxis)
	last := body[len(body)-1]

	end := r3.Add(last.Position, r3.Scale(15, last.Tangent))
	legPos, legTan, err := Line(last.Position, end, 40)
	if err != nil {
		t.Fatal(err)
	}
	leg := FeatureFrames(legPos, legTan, last)
	checkFrames(t, leg)

	// Boundary hand-off: same position, same tangent, same normal.
	if leg[0].Position != last.Position {
		t.Errorf("boundary position jumped: %v vs %v", leg[0].Position, last.Position)
	}
	if d := angleOf(leg[0].Tangent, last.Tangent); d > 1e-9 {
		t.Errorf("boundary tangent differs by %v rad", d)
	}
	if d := angleOf(leg[0].Normal, last.Normal); d > 1e-6 {
		t.Errorf("boundary normal differs by %v rad", d)
	}
}

func TestFeatureFramesNoMirror(t *testing.T) {
	pos, tan, err := SpiralArc(5, 20, 3, false, 300)
	if err != nil {
		t.Fatal(err)
	}
	body := PropagateFrames(pos, tan, testAxis)
	last := body[len(body)-1]

	bendPos, bendTan, err := Bend(last.Position, last.Tangent, r3.Vec{Z: 1}, 4, 32)
	if err != nil {
		t.Fatal(err)
	}
	feature := FeatureFrames(bendPos, bendTan, last)
	checkFrames(t, feature)

	// The width axis must stay on the same side as the body's at the
	// boundary, and never flip between consecutive samples: no
	// 180-degree rotated cross-section anywhere in the feature.
	if r3.Dot(feature[0].Binormal, last.Binormal) < 0 {
		t.Fatal("first feature binormal flipped against the body reference")
	}
	for i := 1; i < len(feature); i++ {
		if r3.Dot(feature[i].Binormal, feature[i-1].Binormal) < 0 {
			t.Fatalf("binormal flipped between frames %d and %d", i-1, i)
		}
	}
}

func unitOf(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n < 1e-12 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

func angleOf(a, b r3.Vec) float64 {
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b))
}
