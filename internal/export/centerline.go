package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
	"gonum.org/v1/gonum/spatial/r3"
)

// centerlineDoc is the JSON layout of a centerline dump. Positions and
// frame vectors are written at full float64 precision so downstream CAM
// tooling can reconstruct the wire path exactly.
type centerlineDoc struct {
	Length  float64            `json:"length"`
	Points  []centerlinePoint  `json:"points"`
	Regions []centerlineRegion `json:"regions"`
}

type centerlinePoint struct {
	Position [3]float64 `json:"position"`
	Tangent  [3]float64 `json:"tangent"`
	Normal   [3]float64 `json:"normal"`
	Binormal [3]float64 `json:"binormal"`
}

type centerlineRegion struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// WriteCenterline writes the framed wire path and its region table as JSON.
func WriteCenterline(w io.Writer, points []wirepath.Point, regions []wirepath.Region) error {
	doc := centerlineDoc{
		Length:  wirepath.PathLength(points),
		Points:  make([]centerlinePoint, len(points)),
		Regions: make([]centerlineRegion, len(regions)),
	}

	for i, p := range points {
		doc.Points[i] = centerlinePoint{
			Position: vec3(p.Position),
			Tangent:  vec3(p.Tangent),
			Normal:   vec3(p.Normal),
			Binormal: vec3(p.Binormal),
		}
	}
	for i, r := range regions {
		doc.Regions[i] = centerlineRegion{
			Kind:  r.Kind.String(),
			Name:  r.Name,
			Start: r.Start,
			End:   r.End,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// SaveCenterline writes the centerline dump to a file.
func SaveCenterline(path string, points []wirepath.Point, regions []wirepath.Region) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCenterline(f, points, regions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func vec3(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
