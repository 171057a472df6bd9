// Package export writes generated spring geometry to interchange files.
package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/sweep"
)

// STL export errors.
var (
	ErrEmptySolid = errors.New("solid has no triangles")
)

// WriteSTL writes the solid as binary STL. STL carries one flat normal
// per facet, so facet normals are recomputed from the triangle winding
// rather than taken from the smooth vertex normals.
func WriteSTL(w io.Writer, name string, s *sweep.Solid) error {
	if len(s.Indices) == 0 {
		return ErrEmptySolid
	}
	if len(s.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(s.Indices))
	}

	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "solid "+name)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	triCount := uint32(len(s.Indices) / 3)
	if err := binary.Write(bw, binary.LittleEndian, triCount); err != nil {
		return err
	}

	for i := 0; i+2 < len(s.Indices); i += 3 {
		a := s.Vertices[s.Indices[i]].Position
		b := s.Vertices[s.Indices[i+1]].Position
		c := s.Vertices[s.Indices[i+2]].Position

		var facet [12]float32
		n := facetNormal(a, b, c)
		copy(facet[0:3], n[:])
		copy(facet[3:6], a[:])
		copy(facet[6:9], b[:])
		copy(facet[9:12], c[:])

		if err := binary.Write(bw, binary.LittleEndian, facet); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveSTL writes the solid as binary STL to a file.
func SaveSTL(path, name string, s *sweep.Solid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(f, name, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// facetNormal returns the unit normal of the triangle abc, or the zero
// vector for degenerate triangles. Degenerate facets are allowed in STL
// and readers ignore their normals.
func facetNormal(a, b, c [3]float32) [3]float32 {
	ux := float64(b[0] - a[0])
	uy := float64(b[1] - a[1])
	uz := float64(b[2] - a[2])
	vx := float64(c[0] - a[0])
	vy := float64(c[1] - a[1])
	vz := float64(c[2] - a[2])

	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	len2 := nx*nx + ny*ny + nz*nz
	if len2 == 0 {
		return [3]float32{}
	}
	inv := 1 / math.Sqrt(len2)
	return [3]float32{float32(nx * inv), float32(ny * inv), float32(nz * inv)}
}
