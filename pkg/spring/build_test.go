package spring

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/hook"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

func angleBetween(a, b r3.Vec) float64 {
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b))
}

// Reference design: 10 mm ID, 40 mm OD, 5 turns, 4 x 0.5 mm strip,
// counterclockwise.
func referenceSpiral() Spiral {
	return Spiral{
		InnerDiameter:  10,
		OuterDiameter:  40,
		Turns:          5,
		Handedness:     Counterclockwise,
		StripWidth:     4,
		StripThickness: 0.5,
	}
}

func TestBuildSpiralReference(t *testing.T) {
	res, err := Build(referenceSpiral(), Options{})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(res.Points), 800, "sample density")
	assert.True(t, res.Report.Valid)
	assert.Empty(t, res.Report.Errors, "validator must report zero errors")
	assert.Equal(t, len(res.Points), res.Report.Checked)

	// Final sample sits on the outer radius, 20 mm from the axis, after
	// a total span of 10*pi (5 full turns brings it back to the +X ray).
	last := res.Points[len(res.Points)-1]
	assert.InDelta(t, 20, r3.Norm(last.Position), 1e-9, "final spiral radius")
	assert.InDelta(t, 20, last.Position.X, 1e-6)
	assert.InDelta(t, 0, last.Position.Y, 1e-6)

	require.NotNil(t, res.Solid)
	assert.NotEmpty(t, res.Solid.Vertices)
	assert.Zero(t, len(res.Solid.Indices)%3)
}

func TestBuildSpiralThicknessExceedsSpacing(t *testing.T) {
	// Radial spacing (12.5 - 5) / 5 = 1.5 mm; a 2 mm strip cannot fit.
	def := Spiral{
		InnerDiameter:  10,
		OuterDiameter:  25,
		Turns:          5,
		StripWidth:     4,
		StripThickness: 2,
	}
	_, err := Build(def, Options{})
	var cfg *wirepath.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "stripThickness", cfg.Param)
	assert.Contains(t, cfg.Detail, "strip thickness exceeds radial spacing")
}

func TestBuildRejectsNegativeOptions(t *testing.T) {
	def := referenceSpiral()

	_, err := Build(def, Options{BodySamples: -100})
	var cfg *wirepath.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "bodySamples", cfg.Param)

	_, err = Build(def, Options{SectionSegments: -8})
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "sectionSegments", cfg.Param)
}

func TestBuildDeterminism(t *testing.T) {
	a, err := Build(referenceSpiral(), Options{})
	require.NoError(t, err)
	b, err := Build(referenceSpiral(), Options{})
	require.NoError(t, err)

	require.Equal(t, len(a.Points), len(b.Points))
	for i := range a.Points {
		assert.Equal(t, a.Points[i], b.Points[i], "point %d", i)
	}
	require.Equal(t, len(a.Solid.Vertices), len(b.Solid.Vertices))
	for i := range a.Solid.Vertices {
		if a.Solid.Vertices[i] != b.Solid.Vertices[i] {
			t.Fatalf("vertex %d differs between identical builds", i)
		}
	}
	assert.Equal(t, a.Solid.Indices, b.Solid.Indices)
}

func TestBuildRegionBoundaryContinuity(t *testing.T) {
	def := referenceSpiral()
	def.InnerLegLength = 8
	def.OuterLegLength = 15
	def.BendRadius = 3
	res, err := Build(def, Options{})
	require.NoError(t, err)
	require.Len(t, res.Regions, 4)

	const maxAngle = 2 * math.Pi / 180
	for i := 1; i < len(res.Regions); i++ {
		prev := res.Points[res.Regions[i-1].End-1]
		next := res.Points[res.Regions[i].Start]
		assert.Equal(t, prev.Position, next.Position,
			"position jump between %s and %s", res.Regions[i-1].Name, res.Regions[i].Name)
		assert.Less(t, angleBetween(prev.Tangent, next.Tangent), maxAngle,
			"tangent jump between %s and %s", res.Regions[i-1].Name, res.Regions[i].Name)
	}
}

func TestBuildSpiralFromAxisDegeneracy(t *testing.T) {
	// Inner diameter zero: the spiral starts on the axis where the
	// radial seed direction vanishes. The build must still succeed with
	// fully defined frames.
	def := referenceSpiral()
	def.InnerDiameter = 0
	res, err := Build(def, Options{})
	require.NoError(t, err)
	assert.True(t, res.Report.Valid)
	for i, p := range res.Points {
		for _, v := range []r3.Vec{p.Tangent, p.Normal, p.Binormal} {
			require.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z),
				"NaN frame at %d", i)
		}
	}
}

func TestBuildExtensionSideHook(t *testing.T) {
	// Side hook, wire 1.5 mm, mean diameter 12 mm: the loop plane must
	// contain the spring axis and the hook must continue the body's end
	// tangent.
	def := Extension{
		MeanDiameter: 12,
		WireDiameter: 1.5,
		Turns:        8,
		Hook:         hook.Side,
	}
	res, err := Build(def, Options{})
	require.NoError(t, err)
	assert.True(t, res.Report.Valid)

	var body, loop, trans *wirepath.Region
	for i := range res.Regions {
		r := &res.Regions[i]
		switch r.Name {
		case "coil-body":
			body = r
		case "end-hook-loop":
			loop = r
		case "end-hook-transition":
			trans = r
		}
	}
	require.NotNil(t, body)
	require.NotNil(t, loop)
	require.NotNil(t, trans)

	bodyEnd := res.Points[body.End-1]
	hookStart := res.Points[trans.Start]
	assert.Equal(t, bodyEnd.Position, hookStart.Position)
	assert.Less(t, angleBetween(bodyEnd.Tangent, hookStart.Tangent), 2*math.Pi/180,
		"hook start tangent vs body end tangent")

	// Plane fit from three spread loop samples.
	a := res.Points[loop.Start].Position
	b := res.Points[loop.Start+loop.Len()/3].Position
	c := res.Points[loop.Start+2*loop.Len()/3].Position
	planeNormal := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	require.Greater(t, r3.Norm(planeNormal), 1e-9)
	cos := math.Abs(r3.Dot(planeNormal, r3.Vec{Z: 1})) / r3.Norm(planeNormal)
	assert.Less(t, cos, 1e-6, "side hook loop plane must contain the axis")
}

func TestBuildExtensionBothEnds(t *testing.T) {
	def := Extension{
		MeanDiameter: 12,
		WireDiameter: 1.5,
		Turns:        8,
		Hook:         hook.Machine,
		HookBothEnds: true,
	}
	res, err := Build(def, Options{})
	require.NoError(t, err)
	assert.True(t, res.Report.Valid)
	require.Len(t, res.Regions, 5)
	assert.Equal(t, "start-hook-loop", res.Regions[0].Name)
	assert.Equal(t, "end-hook-loop", res.Regions[4].Name)

	// The reversed start hook still hands over continuously.
	const maxAngle = 2 * math.Pi / 180
	for i := 1; i < len(res.Regions); i++ {
		prev := res.Points[res.Regions[i-1].End-1]
		next := res.Points[res.Regions[i].Start]
		assert.Equal(t, prev.Position, next.Position, "boundary %d", i)
		assert.Less(t, angleBetween(prev.Tangent, next.Tangent), maxAngle, "boundary %d", i)
	}
}

func TestBuildCompressionClosedEnds(t *testing.T) {
	open := Compression{MeanDiameter: 20, WireDiameter: 2, Turns: 8, Pitch: 6}
	closed := open
	closed.ClosedEnds = true

	openRes, err := Build(open, Options{})
	require.NoError(t, err)
	closedRes, err := Build(closed, Options{})
	require.NoError(t, err)

	openH := openRes.Points[len(openRes.Points)-1].Position.Z
	closedH := closedRes.Points[len(closedRes.Points)-1].Position.Z
	assert.InDelta(t, 48, openH, 1e-6, "open ends: turns * pitch")
	assert.Less(t, closedH, openH, "closed ends shorten the spring")

	// The first full turn is close-wound: it advances by one wire
	// diameter, not one pitch.
	n := len(closedRes.Points)
	perTurn := int(float64(n) / 8)
	firstTurn := closedRes.Points[perTurn].Position.Z - closedRes.Points[0].Position.Z
	assert.InDelta(t, 2, firstTurn, 0.2)
}

func TestBuildCompressionOverlapError(t *testing.T) {
	def := Compression{MeanDiameter: 20, WireDiameter: 3, Turns: 8, Pitch: 2}
	_, err := Build(def, Options{})
	var cfg *wirepath.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "pitch", cfg.Param)
}

func TestBuildRejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name  string
		def   Definition
		param string
	}{
		{"zero turns", Spiral{InnerDiameter: 10, OuterDiameter: 40, StripWidth: 4, StripThickness: 0.5}, "turns"},
		{"outer under inner", Spiral{InnerDiameter: 40, OuterDiameter: 10, Turns: 5, StripWidth: 4, StripThickness: 0.5}, "outerDiameter"},
		{"zero strip width", Spiral{InnerDiameter: 10, OuterDiameter: 40, Turns: 5, StripThickness: 0.5}, "stripWidth"},
		{"zero wire", Compression{MeanDiameter: 20, Turns: 8, Pitch: 6}, "wireDiameter"},
		{"zero mean", Extension{WireDiameter: 1.5, Turns: 8}, "meanDiameter"},
	}
	for _, c := range cases {
		_, err := Build(c.def, Options{})
		var cfg *wirepath.ConfigurationError
		if !errors.As(err, &cfg) {
			t.Errorf("%s: got %v, want ConfigurationError", c.name, err)
			continue
		}
		if cfg.Param != c.param {
			t.Errorf("%s: error names %q, want %q", c.name, cfg.Param, c.param)
		}
	}
}

func TestBuildSectionSegmentsOption(t *testing.T) {
	def := Compression{MeanDiameter: 20, WireDiameter: 2, Turns: 4, Pitch: 6}
	coarse, err := Build(def, Options{BodySamples: 100, SectionSegments: 6})
	require.NoError(t, err)
	fine, err := Build(def, Options{BodySamples: 100, SectionSegments: 24})
	require.NoError(t, err)
	assert.Greater(t, len(fine.Solid.Vertices), len(coarse.Solid.Vertices))
}

func TestBuildHandednessMirrors(t *testing.T) {
	ccw := referenceSpiral()
	cw := referenceSpiral()
	cw.Handedness = Clockwise

	a, err := Build(ccw, Options{})
	require.NoError(t, err)
	b, err := Build(cw, Options{})
	require.NoError(t, err)
	require.Equal(t, len(a.Points), len(b.Points))
	for i := range a.Points {
		assert.InDelta(t, a.Points[i].Position.X, b.Points[i].Position.X, 1e-9)
		assert.InDelta(t, a.Points[i].Position.Y, -b.Points[i].Position.Y, 1e-9)
	}
	assert.True(t, b.Report.Valid)
}
