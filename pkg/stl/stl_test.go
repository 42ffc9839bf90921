package stl

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cylinderMesh(t *testing.T) *revolve.Mesh {
	t.Helper()
	m := revolve.New()
	m.SetProfile([]geometry.Point2{{X: 1, Y: 0}, {X: 1, Y: 1}})
	m.SetSubdivisions(8)
	require.True(t, m.GenerateSurface())
	return m.Mesh()
}

func TestFromMesh(t *testing.T) {
	mesh := cylinderMesh(t)
	model := FromMesh(DefaultName, mesh)

	assert.Equal(t, mesh.FaceCount(), model.TriangleCount())
	for i, tri := range model.Triangles {
		assert.InDelta(t, 1.0, tri.Normal.Length(), 1e-9, "facet %d", i)
	}

	// Lateral area of an 8-gon prism of circumradius 1 and height 1.
	side := 2 * 1 * 0.3826834323650898 // 2·sin(π/8)
	assert.InDelta(t, 8*side, model.SurfaceArea(), 1e-9)

	bbox := model.BoundingBox()
	assert.True(t, bbox.Min.ApproxEqual(geometry.NewVector3(-1, 0, -1), 1e-9), "min %v", bbox.Min)
	assert.True(t, bbox.Max.ApproxEqual(geometry.NewVector3(1, 1, 1), 1e-9), "max %v", bbox.Max)
}

func TestWriteASCIIFormat(t *testing.T) {
	model := NewModel("RevolutionSurface")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(-1e-9, 0, math.Copysign(0, -1)),
		geometry.NewVector3(0, -3e-8, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	var buf bytes.Buffer
	require.NoError(t, model.WriteASCII(&buf))

	expected := strings.Join([]string{
		"solid RevolutionSurface",
		"  facet normal 0.000000 0.000000 0.000000",
		"    outer loop",
		"      vertex 0.000000 0.000000 0.000000",
		"      vertex 1.000000 0.000000 0.000000",
		"      vertex 0.000000 1.000000 0.000000",
		"    endloop",
		"  endfacet",
		"endsolid RevolutionSurface",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestASCIIRoundTrip(t *testing.T) {
	model := FromMesh(DefaultName, cylinderMesh(t))

	var buf bytes.Buffer
	require.NoError(t, model.WriteASCII(&buf))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, parsed.Name)
	require.Equal(t, model.TriangleCount(), parsed.TriangleCount())
	for i := range model.Triangles {
		assert.True(t, model.Triangles[i].V2.ApproxEqual(parsed.Triangles[i].V2, 1e-6))
		assert.True(t, model.Triangles[i].Normal.ApproxEqual(parsed.Triangles[i].Normal, 1e-6))
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	model := FromMesh(DefaultName, cylinderMesh(t))

	var buf bytes.Buffer
	require.NoError(t, model.WriteBinary(&buf))
	assert.Equal(t, 80+4+50*model.TriangleCount(), buf.Len())

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "binary "+DefaultName, parsed.Name)
	require.Equal(t, model.TriangleCount(), parsed.TriangleCount())
	for i := range model.Triangles {
		assert.True(t, model.Triangles[i].V3.ApproxEqual(parsed.Triangles[i].V3, 1e-6))
	}
}

func TestParseASCIIRejectsBrokenFacet(t *testing.T) {
	input := "solid broken\n  facet normal 0 0 1\n    outer loop\n      vertex 0 0 0\n    endloop\n  endfacet\nendsolid broken\n"

	_, err := Parse(strings.NewReader(input))
	assert.ErrorContains(t, err, "expected 3")
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FromMesh(DefaultName, cylinderMesh(t)).WriteBinary(&buf))

	_, err := Parse(bytes.NewReader(buf.Bytes()[:buf.Len()-10]))
	assert.Error(t, err)
}

func TestModelMesh(t *testing.T) {
	m := NewModel("x")
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 1, 0)))
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 1), geometry.NewVector3(1, 0, 1), geometry.NewVector3(0, 1, 1)))

	mesh := m.Mesh()
	require.Equal(t, 6, mesh.VertexCount())
	require.Equal(t, 2, mesh.FaceCount())
	assert.Equal(t, revolve.Face{3, 4, 5}, mesh.Faces[1])
	assert.Equal(t, geometry.NewVector3(1, 0, 1), mesh.Vertices[4])
	assert.Empty(t, mesh.Normals)
}
