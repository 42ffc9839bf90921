package stl

import (
	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// DefaultName is the solid name used for generated surfaces.
const DefaultName = "RevolutionSurface"

// Model represents a complete STL model: an unindexed triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromMesh unrolls an indexed mesh into an STL model. Facet normals are
// recomputed from each triangle's vertices rather than taken from the
// mesh's averaged vertex normals.
func FromMesh(name string, mesh *revolve.Mesh) *Model {
	model := NewModel(name)
	model.Triangles = make([]geometry.Triangle, 0, mesh.FaceCount())
	for i := range mesh.Faces {
		model.AddTriangle(mesh.Triangle(i))
	}
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Mesh unrolls the model into an indexed mesh with three vertices per
// triangle. No vertices are shared and no vertex normals are set.
func (m *Model) Mesh() *revolve.Mesh {
	mesh := &revolve.Mesh{
		Vertices: make([]geometry.Vector3, 0, 3*len(m.Triangles)),
		Faces:    make([]revolve.Face, 0, len(m.Triangles)),
	}
	for i, t := range m.Triangles {
		mesh.Vertices = append(mesh.Vertices, t.V1, t.V2, t.V3)
		mesh.Faces = append(mesh.Faces, revolve.Face{3 * i, 3*i + 1, 3*i + 2})
	}
	return mesh
}
