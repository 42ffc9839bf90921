// Package revolve sweeps a 2D profile around an axis into an indexed
// triangle mesh with averaged per-vertex normals.
//
// Vertices are laid out ring-major: the vertex for ring i and profile point
// j sits at i*len(profile)+j. Ring i lies at angle i*maxAngle/subdivisions,
// so there are subdivisions+1 rings and a full 360° sweep repeats ring 0 as
// its last ring.
package revolve

import (
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

const (
	DefaultMaxAngle     = 360.0
	DefaultSubdivisions = 32
	MinSubdivisions     = 8
	MaxSubdivisions     = 360
)

// Info is a read-only snapshot of a Mesher's configuration and output size.
type Info struct {
	ProfilePoints int
	Vertices      int
	Faces         int
	Axis          Axis
	MaxAngle      float64
	Subdivisions  int
	Closed        bool
}

// Geometry is the generated mesh together with the settings that produced it.
type Geometry struct {
	Mesh
	Info Info
}

// Mesher holds a profile and revolution settings and owns the mesh
// generated from them.
//
// Every change of profile or setting drops the mesh and bumps an internal
// version; cached render buffers remember the version they were built from
// and are rebuilt when it no longer matches.
type Mesher struct {
	profile      []geometry.Point2
	axis         Axis
	maxAngle     float64
	subdivisions int

	mesh    Mesh
	version uint64
	typed   *typedCache
}

// New creates a Mesher revolving around Y through 360° in 32 steps.
func New() *Mesher {
	return &Mesher{
		profile:      make([]geometry.Point2, 0),
		axis:         AxisY,
		maxAngle:     DefaultMaxAngle,
		subdivisions: DefaultSubdivisions,
	}
}

// touch records that the mesh data changed.
func (m *Mesher) touch() {
	m.version++
}

// SetProfile replaces the profile with a copy of points and clears the mesh.
func (m *Mesher) SetProfile(points []geometry.Point2) {
	m.profile = geometry.ClonePoints(points)
	m.Clear()
}

// Profile returns a copy of the current profile.
func (m *Mesher) Profile() []geometry.Point2 {
	return geometry.ClonePoints(m.profile)
}

// SetAxis selects the revolution axis and clears the mesh.
func (m *Mesher) SetAxis(axis Axis) {
	m.axis = axis
	m.Clear()
}

// SetMaxAngle sets the sweep angle in degrees, clamped to [0,360], and
// clears the mesh.
func (m *Mesher) SetMaxAngle(degrees float64) {
	m.maxAngle = math.Max(0, math.Min(360, degrees))
	m.Clear()
}

// SetSubdivisions sets the number of angular steps, clamped to [8,360], and
// clears the mesh.
func (m *Mesher) SetSubdivisions(n int) {
	m.subdivisions = max(MinSubdivisions, min(MaxSubdivisions, n))
	m.Clear()
}

// Axis returns the revolution axis.
func (m *Mesher) Axis() Axis { return m.axis }

// MaxAngle returns the sweep angle in degrees.
func (m *Mesher) MaxAngle() float64 { return m.maxAngle }

// Subdivisions returns the number of angular steps.
func (m *Mesher) Subdivisions() int { return m.subdivisions }

// Closed reports whether the sweep is a full revolution.
func (m *Mesher) Closed() bool { return m.maxAngle == 360 }

func (m *Mesher) rings() int { return m.subdivisions + 1 }

func (m *Mesher) angleStep() float64 {
	return m.maxAngle * math.Pi / 180 / float64(m.subdivisions)
}

func (m *Mesher) vertexAt(ring, j int) int {
	return ring*len(m.profile) + j
}

// ProfileTo3D places a profile point in 3D after rotating it by angle
// radians around the configured axis.
func (m *Mesher) ProfileTo3D(p geometry.Point2, angle float64) geometry.Vector3 {
	return m.axis.Revolve(p, angle)
}

// GenerateVertices builds subdivisions+1 rings of the full profile.
// Faces and normals built from earlier vertices are dropped.
func (m *Mesher) GenerateVertices() {
	m.mesh = Mesh{}
	defer m.touch()

	if len(m.profile) == 0 {
		return
	}

	step := m.angleStep()
	vertices := make([]geometry.Vector3, 0, m.rings()*len(m.profile))
	for i := 0; i < m.rings(); i++ {
		angle := float64(i) * step
		for _, p := range m.profile {
			vertices = append(vertices, m.ProfileTo3D(p, angle))
		}
	}
	m.mesh.Vertices = vertices
}

// GenerateFaces splits every quad between adjacent rings and adjacent
// profile points into two triangles:
//
//	v1 = i·P+j      v2 = i·P+j+1
//	v3 = next·P+j   v4 = next·P+j+1
//	(v1, v2, v3) and (v2, v4, v3)
//
// where next is the following ring. Only rings 0..subdivisions exist, so no
// band joins the last ring back to the first; on a closed sweep the last
// ring already coincides with ring 0. Normals built earlier are dropped.
func (m *Mesher) GenerateFaces() {
	m.mesh.Faces = nil
	m.mesh.Normals = nil
	defer m.touch()

	if len(m.mesh.Vertices) == 0 {
		return
	}

	p := len(m.profile)
	faces := make([]Face, 0, 2*m.subdivisions*max(0, p-1))
	for i := 0; i < m.subdivisions; i++ {
		next := (i + 1) % m.rings()
		for j := 0; j < p-1; j++ {
			v1 := m.vertexAt(i, j)
			v2 := m.vertexAt(i, j+1)
			v3 := m.vertexAt(next, j)
			v4 := m.vertexAt(next, j+1)
			faces = append(faces, Face{v1, v2, v3}, Face{v2, v4, v3})
		}
	}
	m.mesh.Faces = faces
}

// CalculateFaceNormal returns the unit normal (v2−v1)×(v3−v1) of face.
// Degenerate faces yield the zero vector.
func (m *Mesher) CalculateFaceNormal(face Face) geometry.Vector3 {
	v1 := m.mesh.Vertices[face[0]]
	v2 := m.mesh.Vertices[face[1]]
	v3 := m.mesh.Vertices[face[2]]
	return v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
}

// GenerateVertexNormals averages the normals of the faces touching each
// vertex, with every face weighted equally, and renormalizes the result.
// Vertices touched by no face, or only by degenerate ones, keep a zero normal.
func (m *Mesher) GenerateVertexNormals() {
	defer m.touch()

	normals := make([]geometry.Vector3, len(m.mesh.Vertices))
	counts := make([]int, len(m.mesh.Vertices))

	for _, face := range m.mesh.Faces {
		n := m.CalculateFaceNormal(face)
		for _, vi := range face {
			normals[vi] = normals[vi].Add(n)
			counts[vi]++
		}
	}

	for i := range normals {
		if counts[i] > 0 {
			normals[i] = normals[i].Div(float64(counts[i])).Normalize()
		}
	}
	m.mesh.Normals = normals
}

// GenerateSurface builds vertices, faces and normals in that order. With an
// empty profile it logs a warning, leaves the mesh empty and returns false.
func (m *Mesher) GenerateSurface() bool {
	if len(m.profile) == 0 {
		Logger().Warn("revolve: profile not set, surface left empty")
		m.Clear()
		return false
	}

	m.GenerateVertices()
	m.GenerateFaces()
	m.GenerateVertexNormals()

	Logger().Debug("revolve: surface generated",
		"axis", m.axis.String(),
		"maxAngle", m.maxAngle,
		"subdivisions", m.subdivisions,
		"vertices", len(m.mesh.Vertices),
		"faces", len(m.mesh.Faces))
	return true
}

// Mesh returns a copy of the current mesh. Edits to the copy do not reach
// the Mesher or its cached buffers.
func (m *Mesher) Mesh() *Mesh {
	mesh := m.mesh.Clone()
	return &mesh
}

// Geometry returns a copy of the current mesh and a snapshot of the settings.
func (m *Mesher) Geometry() Geometry {
	return Geometry{Mesh: m.mesh.Clone(), Info: m.Info()}
}

// Clear drops the mesh and any cached buffers.
func (m *Mesher) Clear() {
	m.mesh = Mesh{}
	m.typed = nil
	m.touch()
}

// Info returns a snapshot of the configuration and current mesh size.
func (m *Mesher) Info() Info {
	return Info{
		ProfilePoints: len(m.profile),
		Vertices:      len(m.mesh.Vertices),
		Faces:         len(m.mesh.Faces),
		Axis:          m.axis,
		MaxAngle:      m.maxAngle,
		Subdivisions:  m.subdivisions,
		Closed:        m.Closed(),
	}
}
