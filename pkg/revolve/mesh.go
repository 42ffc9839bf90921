package revolve

import "github.com/philipparndt/gorevolve/pkg/geometry"

// Face is a triangle given as three positions into Mesh.Vertices.
type Face [3]int

// Mesh is an indexed triangle mesh with one normal per vertex.
// Vertices, Faces and Normals are generated together; Normals[i] belongs
// to Vertices[i].
type Mesh struct {
	Vertices []geometry.Vector3
	Faces    []Face
	Normals  []geometry.Vector3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns face i as a standalone triangle carrying its face normal.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	tri := geometry.NewTriangle(geometry.Vector3{}, m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
	tri.Normal = tri.CalculateNormal()
	return tri
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() Mesh {
	return Mesh{
		Vertices: append([]geometry.Vector3(nil), m.Vertices...),
		Faces:    append([]Face(nil), m.Faces...),
		Normals:  append([]geometry.Vector3(nil), m.Normals...),
	}
}
