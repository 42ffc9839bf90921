package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Parameters records the settings that produced a mesh. They are embedded
// in JSON exports. Empty strings and zero counts fall back to the defaults
// (unknown curve type, degree 3, axis y, 32 subdivisions, resolution 100);
// MaxAngle is written as given because 0 is a valid sweep.
type Parameters struct {
	CurveType    string
	Degree       int
	Axis         string
	MaxAngle     float64
	Subdivisions int
	Resolution   int
	// Extra entries are added to the parameters object and override the
	// named fields on key collisions.
	Extra map[string]any
}

func (p Parameters) document() map[string]any {
	doc := map[string]any{
		"curveType":    orDefault(p.CurveType, "unknown"),
		"degree":       orDefault(p.Degree, 3),
		"axis":         orDefault(p.Axis, "y"),
		"maxAngle":     p.MaxAngle,
		"subdivisions": orDefault(p.Subdivisions, 32),
		"resolution":   orDefault(p.Resolution, 100),
	}
	for k, v := range p.Extra {
		doc[k] = v
	}
	return doc
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

type jsonMetadata struct {
	Format      string `json:"format"`
	Version     string `json:"version"`
	Generator   string `json:"generator"`
	Timestamp   string `json:"timestamp"`
	VertexCount int    `json:"vertexCount"`
	FaceCount   int    `json:"faceCount"`
	NormalCount int    `json:"normalCount"`
}

type jsonGeometry struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
	Normals  [][3]float64 `json:"normals"`
}

type jsonDocument struct {
	Metadata   jsonMetadata   `json:"metadata"`
	Parameters map[string]any `json:"parameters"`
	Geometry   jsonGeometry   `json:"geometry"`
}

// round6 rounds to six decimals, mapping negative zero to zero.
func round6(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

func roundAll(vs []geometry.Vector3) [][3]float64 {
	out := make([][3]float64, len(vs))
	for i, v := range vs {
		out[i] = [3]float64{round6(v.X), round6(v.Y), round6(v.Z)}
	}
	return out
}

// WriteJSON writes an indented JSON document with metadata, the generation
// parameters and the geometry rounded to six decimals.
func (e *Exporter) WriteJSON(w io.Writer, params Parameters) error {
	if err := e.checkGeometry(); err != nil {
		return err
	}

	m := e.mesh
	faces := make([][3]int, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = [3]int(f)
	}

	doc := jsonDocument{
		Metadata: jsonMetadata{
			Format:      "Revolution Surface Geometry",
			Version:     "1.0",
			Generator:   "gorevolve",
			Timestamp:   e.now().UTC().Format(time.RFC3339Nano),
			VertexCount: len(m.Vertices),
			FaceCount:   len(m.Faces),
			NormalCount: len(m.Normals),
		},
		Parameters: params.document(),
		Geometry: jsonGeometry{
			Vertices: roundAll(m.Vertices),
			Faces:    faces,
			Normals:  roundAll(m.Normals),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
