package spring

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/geom"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/hook"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/sweep"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

// axisZ is the spring rotation axis. All geometry is built around +Z in a
// right-handed world, millimeters.
var axisZ = r3.Vec{Z: 1}

// Options are the sample-density and diagnostics knobs of one build.
type Options struct {
	// BodySamples is the sample count across the coil body; end features
	// derive their own counts from it. Default 800.
	BodySamples int
	// SectionSegments overrides the circular cross-section tessellation.
	SectionSegments int
	// Diagnostics requests the validation report even on fully valid
	// builds; the report is returned as data, never logged from here.
	Diagnostics bool
}

func (o Options) bodySamples() int {
	if o.BodySamples > 0 {
		return o.BodySamples
	}
	return 800
}

// validate rejects nonsense knob values instead of correcting them; zero
// means unset and selects the default.
func (o Options) validate() error {
	if o.BodySamples < 0 {
		return configErr("bodySamples", "must be >= 0")
	}
	if o.SectionSegments < 0 {
		return configErr("sectionSegments", "must be >= 0")
	}
	return nil
}

// Result is one completed build. All buffers are freshly allocated per
// build and never mutated afterward; the centerline (Points, Regions) is
// exposed independently of the mesh because CAD export re-sweeps it with
// the target kernel's native primitives.
type Result struct {
	Points  []wirepath.Point
	Regions []wirepath.Region
	Report  wirepath.Report
	Solid   *sweep.Solid
}

// Build resolves the definition, validates it, assembles the centerline
// region by region, validates every frame, and sweeps the cross-section.
// It fails only with ConfigurationError (invalid physical design) or
// InvariantViolation (a defect in frame propagation); numerical
// degeneracies are resolved locally and never surface.
func Build(def Definition, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	params, err := def.resolve()
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if opts.SectionSegments != 0 {
		params.Section.Segments = opts.SectionSegments
	}

	var (
		points  []wirepath.Point
		regions []wirepath.Region
	)
	switch params.Family {
	case FamilyCompression:
		points, regions, err = buildCompression(params, opts)
	case FamilyExtension:
		points, regions, err = buildExtension(params, opts)
	default:
		points, regions, err = buildSpiral(params, opts)
	}
	if err != nil {
		return nil, err
	}

	report := wirepath.Validate(points, wirepath.ValidateOptions{
		CheckOutward: true,
		Axis:         axisZ,
	})
	if !report.Valid {
		return nil, &wirepath.InvariantViolation{Detail: report.Errors[0], Report: report}
	}

	solid, err := sweep.Sweep(points, params.Section)
	if err != nil {
		return nil, err
	}
	return &Result{Points: points, Regions: regions, Report: report, Solid: solid}, nil
}

// assembler concatenates frame-decorated region runs into one path.
type assembler struct {
	points  []wirepath.Point
	regions []wirepath.Region
}

func (a *assembler) add(kind wirepath.RegionKind, name string, pts []wirepath.Point) {
	if len(pts) == 0 {
		return
	}
	start := len(a.points)
	a.points = append(a.points, pts...)
	a.regions = append(a.regions, wirepath.Region{Kind: kind, Name: name, Start: start, End: len(a.points)})
}

func buildSpiral(p Parameters, opts Options) ([]wirepath.Point, []wirepath.Region, error) {
	n := opts.bodySamples()
	pos, tanHint, err := wirepath.SpiralArc(p.InnerRadius, p.OuterRadius, p.Turns, p.Handedness.clockwise(), n)
	if err != nil {
		return nil, nil, err
	}
	body := wirepath.PropagateFrames(pos, tanHint, axisZ)

	var a assembler
	if p.InnerLegLength > 0 {
		// The leg runs into the spiral start along the spiral's own start
		// tangent, so the boundary frame matches by construction.
		first := body[0]
		start := r3.Sub(first.Position, r3.Scale(p.InnerLegLength, first.Tangent))
		legPos, legTan, err := wirepath.Line(start, first.Position, legSamples(n))
		if err != nil {
			return nil, nil, err
		}
		a.add(wirepath.RegionInnerLeg, "inner-leg", wirepath.FeatureFrames(legPos, legTan, first))
	}
	a.add(wirepath.RegionBody, "spiral-body", body)

	last := body[len(body)-1]
	prev := last
	legDir := last.Tangent
	if p.BendRadius > 0 {
		// Quarter-turn bend from the tangential direction to radially
		// outward, still within the spiral plane.
		radial, ok := geom.Unit(geom.Perp(last.Position, axisZ))
		if !ok {
			radial = geom.AnyPerpendicular(axisZ)
		}
		bendPos, bendTan, err := wirepath.Bend(last.Position, last.Tangent, radial, p.BendRadius, bendSamples(n))
		if err != nil {
			return nil, nil, err
		}
		bend := wirepath.FeatureFrames(bendPos, bendTan, last)
		a.add(wirepath.RegionBend, "outer-bend", bend)
		prev = bend[len(bend)-1]
		legDir = prev.Tangent
	}
	if p.OuterLegLength > 0 {
		end := r3.Add(prev.Position, r3.Scale(p.OuterLegLength, legDir))
		legPos, legTan, err := wirepath.Line(prev.Position, end, legSamples(n))
		if err != nil {
			return nil, nil, err
		}
		a.add(wirepath.RegionOuterLeg, "outer-leg", wirepath.FeatureFrames(legPos, legTan, prev))
	}
	return a.points, a.regions, nil
}

func buildCompression(p Parameters, opts Options) ([]wirepath.Point, []wirepath.Region, error) {
	n := opts.bodySamples()
	pitchAt := wirepath.ConstantPitch(p.Pitch)
	if p.ClosedEnds {
		pitchAt = closedEndPitch(p.Pitch, p.Section.WireDiameter, p.Turns)
	}
	pos, tanHint, err := wirepath.Helix(p.MeanRadius, p.Turns, p.Handedness.clockwise(), pitchAt, n)
	if err != nil {
		return nil, nil, err
	}

	var a assembler
	a.add(wirepath.RegionBody, "coil-body", wirepath.PropagateFrames(pos, tanHint, axisZ))
	return a.points, a.regions, nil
}

func buildExtension(p Parameters, opts Options) ([]wirepath.Point, []wirepath.Region, error) {
	n := opts.bodySamples()
	wire := p.Section.WireDiameter
	pos, tanHint, err := wirepath.Helix(p.MeanRadius, p.Turns, p.Handedness.clockwise(), wirepath.ConstantPitch(wire), n)
	if err != nil {
		return nil, nil, err
	}
	body := wirepath.PropagateFrames(pos, tanHint, axisZ)
	spec := hook.Resolve(p.Hook)

	var a assembler
	if p.HookBothEnds {
		// Mirror the hook construction about the bottom end: build it as
		// if travelling away from the body along -Z, then reverse the
		// runs so the concatenated path stays continuous.
		first := body[0]
		flipped := wirepath.Point{
			Position: first.Position,
			Tangent:  r3.Scale(-1, first.Tangent),
			Normal:   first.Normal,
			Binormal: r3.Scale(-1, first.Binormal),
		}
		start, err := hook.BuildEnd(spec, flipped, r3.Scale(-1, axisZ), p.MeanRadius, wire, hookSamples(n))
		if err != nil {
			return nil, nil, err
		}
		a.add(wirepath.RegionHookLoop, "start-hook-loop", reverseRun(start.Loop))
		a.add(wirepath.RegionHookTransition, "start-hook-transition", reverseRun(start.Transition))
	}
	a.add(wirepath.RegionBody, "coil-body", body)

	end, err := hook.BuildEnd(spec, body[len(body)-1], axisZ, p.MeanRadius, wire, hookSamples(n))
	if err != nil {
		return nil, nil, err
	}
	a.add(wirepath.RegionHookTransition, "end-hook-transition", end.Transition)
	a.add(wirepath.RegionHookLoop, "end-hook-loop", end.Loop)
	return a.points, a.regions, nil
}

// reverseRun reverses the traversal direction of a frame run. Tangent and
// binormal flip together so the basis stays right-handed.
func reverseRun(pts []wirepath.Point) []wirepath.Point {
	out := make([]wirepath.Point, len(pts))
	for i, p := range pts {
		p.Tangent = r3.Scale(-1, p.Tangent)
		p.Binormal = r3.Scale(-1, p.Binormal)
		out[len(pts)-1-i] = p
	}
	return out
}

// closedEndPitch ramps the pitch down to close-wound over the first and
// last turn, with a smoothstep blend over the following half turn.
func closedEndPitch(pitch, wire, turns float64) func(turn float64) float64 {
	const blend = 0.5
	return func(turn float64) float64 {
		d := turn
		if turns-turn < d {
			d = turns - turn
		}
		switch {
		case d <= 1:
			return wire
		case d >= 1+blend:
			return pitch
		default:
			t := (d - 1) / blend
			t = t * t * (3 - 2*t)
			return wire + (pitch-wire)*t
		}
	}
}

func legSamples(body int) int {
	if s := body / 10; s > 16 {
		return s
	}
	return 16
}

func bendSamples(body int) int {
	if s := body / 16; s > 8 {
		return s
	}
	return 8
}

func hookSamples(body int) int {
	if s := body / 4; s > 32 {
		return s
	}
	return 32
}
