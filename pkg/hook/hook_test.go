package hook

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

func TestResolveIsTotal(t *testing.T) {
	for _, typ := range []Type{Machine, Side, Crossover, Extended, DoubleLoop} {
		spec := Resolve(typ)
		if spec.Loops < 1 || spec.Span <= 0 || spec.LoopRadiusFactor <= 0 {
			t.Errorf("%s: incomplete spec %+v", typ, spec)
		}
	}
}

func TestResolveUnknownFallsBackToMachine(t *testing.T) {
	if got, want := Resolve(Type(99)), Resolve(Machine); got != want {
		t.Errorf("unknown type resolved to %+v, want machine spec", got)
	}
}

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"machine", Machine, true},
		{"side", Side, true},
		{"crossover", Crossover, true},
		{"extended", Extended, true},
		{"double-loop", DoubleLoop, true},
		{"", Machine, true},
		{"banana", Machine, false},
	}
	for _, c := range cases {
		got, err := ParseType(c.in)
		if (err == nil) != c.ok {
			t.Errorf("ParseType(%q) err = %v, want ok=%v", c.in, err, c.ok)
		}
		if got != c.want {
			t.Errorf("ParseType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// bodyEnd builds a plausible coil-body end frame at radius r, height z.
func bodyEnd(r, z float64) wirepath.Point {
	pos := []r3.Vec{
		{X: r, Y: -0.1, Z: z - 0.01},
		{X: r, Y: 0, Z: z},
		{X: r, Y: 0.1, Z: z + 0.01},
	}
	pts := wirepath.PropagateFrames(pos, nil, r3.Vec{Z: 1})
	return pts[len(pts)-1]
}

func TestBuildEndStartTangentMatchesBody(t *testing.T) {
	// A hook's first generated sample must continue the body's end
	// tangent: the transition is clamped to it.
	const maxAngle = 2 * math.Pi / 180
	body := bodyEnd(6, 9)
	for _, typ := range []Type{Machine, Side, Crossover, Extended, DoubleLoop} {
		end, err := BuildEnd(Resolve(typ), body, r3.Vec{Z: 1}, 6, 1.5, 64)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		first := end.Loop[0]
		if len(end.Transition) > 0 {
			first = end.Transition[0]
		}
		if d := angleOf(first.Tangent, body.Tangent); d > maxAngle {
			t.Errorf("%s: start tangent off by %v rad", typ, d)
		}
		if first.Position != body.Position {
			t.Errorf("%s: hook does not start at the body end", typ)
		}
	}
}

func TestBuildEndSideLoopPlaneContainsAxis(t *testing.T) {
	// Wire diameter 1.5 mm on a 12 mm mean diameter spring: the side
	// hook's loop plane must contain the spring axis.
	body := bodyEnd(6, 9)
	end, err := BuildEnd(Resolve(Side), body, r3.Vec{Z: 1}, 6, 1.5, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(end.Loop) == 0 {
		t.Fatal("no loop generated")
	}
	// Fit the loop plane normal from three spread samples; a plane
	// containing the axis has a normal perpendicular to it.
	a := end.Loop[0].Position
	b := end.Loop[len(end.Loop)/3].Position
	c := end.Loop[2*len(end.Loop)/3].Position
	planeNormal := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	n := r3.Norm(planeNormal)
	if n < 1e-9 {
		t.Fatal("degenerate loop samples")
	}
	if got := math.Abs(r3.Dot(planeNormal, r3.Vec{Z: 1})) / n; got > 1e-6 {
		t.Errorf("loop plane does not contain the axis: |cos| = %v", got)
	}
}

func TestBuildEndLoopSpan(t *testing.T) {
	body := bodyEnd(6, 9)
	spec := Resolve(DoubleLoop)
	end, err := BuildEnd(spec, body, r3.Vec{Z: 1}, 6, 1.5, 64)
	if err != nil {
		t.Fatal(err)
	}
	// Accumulated tangent turning over the loop approximates the total
	// span: loops * span per loop.
	var turned float64
	for i := 1; i < len(end.Loop); i++ {
		turned += angleOf(end.Loop[i-1].Tangent, end.Loop[i].Tangent)
	}
	want := spec.Span * float64(spec.Loops)
	if math.Abs(turned-want) > 0.1 {
		t.Errorf("loop turned %v rad, want ~%v", turned, want)
	}
}

func TestBuildEndFramesValid(t *testing.T) {
	body := bodyEnd(6, 9)
	for _, typ := range []Type{Machine, Side, Crossover, Extended, DoubleLoop} {
		end, err := BuildEnd(Resolve(typ), body, r3.Vec{Z: 1}, 6, 1.5, 64)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		all := append(append([]wirepath.Point{}, end.Transition...), end.Loop...)
		rep := wirepath.Validate(all, wirepath.ValidateOptions{})
		if !rep.Valid {
			t.Errorf("%s: invalid hook frames: %s", typ, rep.Errors[0])
		}
	}
}

func TestBuildEndRejectsBadInput(t *testing.T) {
	body := bodyEnd(6, 9)
	if _, err := BuildEnd(Resolve(Machine), body, r3.Vec{Z: 1}, 0, 1.5, 64); err == nil {
		t.Error("zero mean radius accepted")
	}
	if _, err := BuildEnd(Resolve(Machine), body, r3.Vec{Z: 1}, 6, 0, 64); err == nil {
		t.Error("zero wire diameter accepted")
	}
}

func angleOf(a, b r3.Vec) float64 {
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b))
}
