package sweep

import (
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

// Vertex is a mesh vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds is the axis-aligned bounding box of the solid.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Solid is the swept mesh: side walls plus two end caps, watertight up to
// positionally-coincident duplicated vertices at hard edges.
type Solid struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Sweep extrudes the section along the frame-decorated path. Each path
// point yields one cross-section ring placed in its (normal, binormal)
// plane; consecutive rings are stitched with two triangles per side and
// the first and last rings are closed with fan caps. Coincident
// consecutive path points are tolerated and merely produce zero-area
// triangles.
func Sweep(points []wirepath.Point, sec Section) (*Solid, error) {
	if len(points) < 2 {
		return nil, &wirepath.ConfigurationError{Param: "path", Detail: "need at least 2 path points"}
	}
	if err := sec.validate(); err != nil {
		return nil, err
	}

	b := newBuilder(points)
	switch sec.Kind {
	case SectionCircle:
		b.sweepCircle(sec)
	default:
		b.sweepRect(sec)
	}
	b.finishNormals()
	return b.solid(), nil
}

// builder accumulates vertices, triangle indices and per-vertex normal
// sums during one sweep.
type builder struct {
	path      []wirepath.Point
	positions []r3.Vec
	normals   []r3.Vec // accumulated face normals, normalized at the end
	fallback  []r3.Vec // frame-derived direction used when accumulation cancels
	fixed     []bool   // cap vertices carry an exact normal, no accumulation
	indices   []uint32
	bounds    Bounds
}

func newBuilder(path []wirepath.Point) *builder {
	return &builder{
		path: path,
		bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}
}

// addVertex appends a vertex with a frame-derived fallback direction.
func (b *builder) addVertex(p, fallback r3.Vec) uint32 {
	id := uint32(len(b.positions))
	b.positions = append(b.positions, p)
	b.normals = append(b.normals, r3.Vec{})
	b.fallback = append(b.fallback, fallback)
	b.fixed = append(b.fixed, false)
	return id
}

// addCapVertex appends a vertex with an exact cap normal.
func (b *builder) addCapVertex(p, normal r3.Vec) uint32 {
	id := b.addVertex(p, normal)
	b.normals[id] = normal
	b.fixed[id] = true
	return id
}

// addTri records a triangle and accumulates its area-weighted face normal
// into the unfixed vertices. Degenerate triangles contribute nothing.
func (b *builder) addTri(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
	fn := r3.Cross(
		r3.Sub(b.positions[i1], b.positions[i0]),
		r3.Sub(b.positions[i2], b.positions[i0]),
	)
	for _, i := range []uint32{i0, i1, i2} {
		if !b.fixed[i] {
			b.normals[i] = r3.Add(b.normals[i], fn)
		}
	}
}

// ringPoint places a 2D profile offset (n along the normal, w along the
// binormal) at path point i.
func (b *builder) ringPoint(i int, n, w float64) r3.Vec {
	p := b.path[i]
	return r3.Add(p.Position, r3.Add(r3.Scale(n, p.Normal), r3.Scale(w, p.Binormal)))
}

// sweepRect builds four independent side strips so the strip corners stay
// hard-edged while shading remains smooth along the path, then closes both
// ends with fan caps.
func (b *builder) sweepRect(sec Section) {
	t := sec.Thickness / 2
	w := sec.Width / 2
	// Corner offsets in (normal, binormal) coordinates, counterclockwise
	// about the tangent.
	corners := [4][2]float64{{t, w}, {-t, w}, {-t, -w}, {t, -w}}
	n := len(b.path)

	for s := 0; s < 4; s++ {
		c0 := corners[s]
		c1 := corners[(s+1)%4]
		// Outward direction of this side, used as the fallback normal.
		out := r3.Vec{}
		base := uint32(len(b.positions))
		for i := 0; i < n; i++ {
			p := b.path[i]
			out = r3.Add(
				r3.Scale(c0[0]+c1[0], p.Normal),
				r3.Scale(c0[1]+c1[1], p.Binormal),
			)
			b.addVertex(b.ringPoint(i, c0[0], c0[1]), out)
			b.addVertex(b.ringPoint(i, c1[0], c1[1]), out)
		}
		for i := 0; i < n - 1; i++ {
			a0 := base + uint32(2*i)
			a1 := a0 + 1
			b0 := base + uint32(2*(i+1))
			b1 := b0 + 1
			b.addTri(a0, a1, b1)
			b.addTri(a0, b1, b0)
		}
	}

	b.capRect(0, corners, true)
	b.capRect(n-1, corners, false)
}

// capRect closes one end of a rectangular sweep with a triangle fan.
func (b *builder) capRect(i int, corners [4][2]float64, start bool) {
	p := b.path[i]
	capNormal := p.Tangent
	if start {
		capNormal = r3.Scale(-1, capNormal)
	}
	center := b.addCapVertex(p.Position, capNormal)
	ring := make([]uint32, 4)
	for j, c := range corners {
		ring[j] = b.addCapVertex(b.ringPoint(i, c[0], c[1]), capNormal)
	}
	for j := 0; j < 4; j++ {
		k := (j + 1) % 4
		if start {
			b.addTri(center, ring[k], ring[j])
		} else {
			b.addTri(center, ring[j], ring[k])
		}
	}
}

// sweepCircle builds a single shared-vertex tube (smooth shading all
// around) plus fan caps.
func (b *builder) sweepCircle(sec Section) {
	k := sec.segments()
	r := sec.WireDiameter / 2
	n := len(b.path)

	base := uint32(len(b.positions))
	for i := 0; i < n; i++ {
		p := b.path[i]
		for j := 0; j < k; j++ {
			phi := 2 * gomath.Pi * float64(j) / float64(k)
			sin, cos := gomath.Sincos(phi)
			dir := r3.Add(r3.Scale(cos, p.Normal), r3.Scale(sin, p.Binormal))
			b.addVertex(r3.Add(p.Position, r3.Scale(r, dir)), dir)
		}
	}
	for i := 0; i < n - 1; i++ {
		for j := 0; j < k; j++ {
			jn := (j + 1) % k
			a0 := base + uint32(i*k+j)
			a1 := base + uint32(i*k+jn)
			b0 := base + uint32((i+1)*k+j)
			b1 := base + uint32((i+1)*k+jn)
			b.addTri(a0, a1, b1)
			b.addTri(a0, b1, b0)
		}
	}

	b.capCircle(0, k, r, true)
	b.capCircle(n-1, k, r, false)
}

// capCircle closes one end of a tube with a triangle fan.
func (b *builder) capCircle(i, k int, r float64, start bool) {
	p := b.path[i]
	capNormal := p.Tangent
	if start {
		capNormal = r3.Scale(-1, capNormal)
	}
	center := b.addCapVertex(p.Position, capNormal)
	ring := make([]uint32, k)
	for j := 0; j < k; j++ {
		phi := 2 * gomath.Pi * float64(j) / float64(k)
		sin, cos := gomath.Sincos(phi)
		dir := r3.Add(r3.Scale(cos, p.Normal), r3.Scale(sin, p.Binormal))
		ring[j] = b.addCapVertex(r3.Add(p.Position, r3.Scale(r, dir)), capNormal)
	}
	for j := 0; j < k; j++ {
		jn := (j + 1) % k
		if start {
			b.addTri(center, ring[jn], ring[j])
		} else {
			b.addTri(center, ring[j], ring[jn])
		}
	}
}

// finishNormals normalizes the accumulated normals, falling back to the
// frame-derived direction where zero-area triangles left nothing behind.
func (b *builder) finishNormals() {
	for i := range b.normals {
		if b.fixed[i] {
			continue
		}
		if n := r3.Norm(b.normals[i]); n > 1e-12 {
			b.normals[i] = r3.Scale(1/n, b.normals[i])
		} else if n := r3.Norm(b.fallback[i]); n > 1e-12 {
			b.normals[i] = r3.Scale(1/n, b.fallback[i])
		} else {
			b.normals[i] = r3.Vec{Z: 1}
		}
	}
}

// solid converts the accumulated float64 buffers into the final GPU-ready
// float32 form and computes the bounding box.
func (b *builder) solid() *Solid {
	s := &Solid{
		Vertices: make([]Vertex, len(b.positions)),
		Indices:  b.indices,
		Bounds:   b.bounds,
	}
	for i, p := range b.positions {
		v := Vertex{Position: f32(p), Normal: f32(b.normals[i])}
		s.Vertices[i] = v
		for a := 0; a < 3; a++ {
			if v.Position[a] < s.Bounds.Min[a] {
				s.Bounds.Min[a] = v.Position[a]
			}
			if v.Position[a] > s.Bounds.Max[a] {
				s.Bounds.Max[a] = v.Position[a]
			}
		}
	}
	return s
}

func f32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
