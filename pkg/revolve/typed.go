package revolve

import (
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Indices holds packed triangle indices in the narrowest width that can
// address every vertex: 16-bit up to 65535 vertices, 32-bit beyond.
// Exactly one of U16 and U32 is set.
type Indices struct {
	U16 []uint16
	U32 []uint32
}

// Is32Bit reports whether the indices use 32-bit storage.
func (ix Indices) Is32Bit() bool {
	return ix.U32 != nil
}

// Len returns the number of packed indices.
func (ix Indices) Len() int {
	if ix.U32 != nil {
		return len(ix.U32)
	}
	return len(ix.U16)
}

// At returns index i widened to uint32.
func (ix Indices) At(i int) uint32 {
	if ix.U32 != nil {
		return ix.U32[i]
	}
	return uint32(ix.U16[i])
}

// TypedGeometry is the mesh packed into flat buffers for rendering back
// ends: Positions and Normals hold VertexCount*3 floats, Indices holds
// FaceCount*3 entries.
type TypedGeometry struct {
	Positions []float32
	Indices   Indices
	Normals   []float32
	Info      Info
}

type typedCache struct {
	version uint64
	geom    TypedGeometry
}

// TypedGeometry returns the mesh as packed buffers, generating the surface
// first if it is missing or incomplete. The buffers are built once per mesh
// version and shared between calls; callers must not modify them.
func (m *Mesher) TypedGeometry() TypedGeometry {
	if len(m.mesh.Vertices) == 0 || (len(m.mesh.Faces) == 0 && len(m.profile) > 1) {
		m.GenerateSurface()
	}
	if len(m.mesh.Normals) != len(m.mesh.Vertices) {
		m.GenerateVertexNormals()
	}

	if m.typed != nil && m.typed.version == m.version {
		return m.typed.geom
	}

	geom := TypedGeometry{
		Positions: packVectors(m.mesh.Vertices),
		Indices:   packFaces(m.mesh.Faces, len(m.mesh.Vertices)),
		Normals:   packVectors(m.mesh.Normals),
		Info:      m.Info(),
	}
	m.typed = &typedCache{version: m.version, geom: geom}

	Logger().Debug("revolve: typed buffers rebuilt",
		"version", m.version,
		"positions", len(geom.Positions),
		"indices", geom.Indices.Len(),
		"index32", geom.Indices.Is32Bit())
	return geom
}

func packVectors(vs []geometry.Vector3) []float32 {
	out := make([]float32, len(vs)*3)
	for i, v := range vs {
		f := v.Float32()
		copy(out[i*3:i*3+3], f[:])
	}
	return out
}

func packFaces(faces []Face, vertexCount int) Indices {
	if vertexCount > math.MaxUint16 {
		out := make([]uint32, len(faces)*3)
		for i, f := range faces {
			out[i*3], out[i*3+1], out[i*3+2] = uint32(f[0]), uint32(f[1]), uint32(f[2])
		}
		return Indices{U32: out}
	}

	out := make([]uint16, len(faces)*3)
	for i, f := range faces {
		out[i*3], out[i*3+1], out[i*3+2] = uint16(f[0]), uint16(f[1]), uint16(f[2])
	}
	return Indices{U16: out}
}
