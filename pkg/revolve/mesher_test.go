package revolve

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func unitSegment() []geometry.Point2 {
	return []geometry.Point2{{X: 1, Y: 0}, {X: 1, Y: 1}}
}

func vase() []geometry.Point2 {
	return []geometry.Point2{
		{X: 0.5, Y: 0}, {X: 1.2, Y: 0.4}, {X: 1.0, Y: 1.0}, {X: 0.6, Y: 1.6}, {X: 0.8, Y: 2.0},
	}
}

func TestNewDefaults(t *testing.T) {
	info := New().Info()

	assert.Equal(t, AxisY, info.Axis)
	assert.Equal(t, DefaultMaxAngle, info.MaxAngle)
	assert.Equal(t, DefaultSubdivisions, info.Subdivisions)
	assert.True(t, info.Closed)
	assert.Zero(t, info.ProfilePoints)
	assert.Zero(t, info.Vertices)
}

func TestParseAxis(t *testing.T) {
	for name, expected := range map[string]Axis{"x": AxisX, "Y": AxisY, " z ": AxisZ} {
		got, err := ParseAxis(name)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, expected, must(ParseAxis(got.String())))
	}

	_, err := ParseAxis("w")
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestSettersClamp(t *testing.T) {
	m := New()

	m.SetMaxAngle(-10)
	assert.Equal(t, 0.0, m.MaxAngle())
	m.SetMaxAngle(720)
	assert.Equal(t, 360.0, m.MaxAngle())
	m.SetMaxAngle(90)
	assert.Equal(t, 90.0, m.MaxAngle())
	assert.False(t, m.Closed())

	m.SetSubdivisions(2)
	assert.Equal(t, MinSubdivisions, m.Subdivisions())
	m.SetSubdivisions(1000)
	assert.Equal(t, MaxSubdivisions, m.Subdivisions())
	m.SetSubdivisions(64)
	assert.Equal(t, 64, m.Subdivisions())
}

func TestProfileTo3D(t *testing.T) {
	p := geometry.Pt(2, 5)
	angle := math.Pi / 3
	c, s := math.Cos(angle), math.Sin(angle)

	tests := []struct {
		axis     Axis
		expected geometry.Vector3
	}{
		{AxisY, geometry.NewVector3(2*c, 5, 2*s)},
		{AxisX, geometry.NewVector3(5, 2*c, 2*s)},
		{AxisZ, geometry.NewVector3(2*c, 2*s, 5)},
	}

	m := New()
	for _, tt := range tests {
		m.SetAxis(tt.axis)
		got := m.ProfileTo3D(p, angle)
		assert.True(t, got.ApproxEqual(tt.expected, eps), "axis %v: expected %v, got %v", tt.axis, tt.expected, got)
	}
}

func TestSetProfileCopies(t *testing.T) {
	src := unitSegment()
	m := New()
	m.SetProfile(src)
	src[0] = geometry.Pt(9, 9)

	assert.Equal(t, geometry.Pt(1, 0), m.Profile()[0])
}

func TestUnitSegmentScenario(t *testing.T) {
	m := New()
	m.SetProfile(unitSegment())
	m.SetAxis(AxisY)
	m.SetMaxAngle(360)
	m.SetSubdivisions(8)
	require.True(t, m.GenerateSurface())

	mesh := m.Mesh()
	assert.Len(t, mesh.Vertices, 18)
	assert.Len(t, mesh.Faces, 16)
	assert.Len(t, mesh.Normals, 18)

	assert.True(t, mesh.Vertices[0].ApproxEqual(geometry.NewVector3(1, 0, 0), eps), "ring 0: %v", mesh.Vertices[0])
	assert.True(t, mesh.Vertices[4*2].ApproxEqual(geometry.NewVector3(-1, 0, 0), eps), "ring 4: %v", mesh.Vertices[8])
	assert.True(t, mesh.Vertices[8*2].ApproxEqual(mesh.Vertices[0], eps), "closed sweep ends on ring 0")
}

func TestMeshSizes(t *testing.T) {
	for _, p := range []int{2, 3, 7} {
		for _, s := range []int{8, 17, 64} {
			profile := make([]geometry.Point2, p)
			for j := range profile {
				profile[j] = geometry.Pt(1+float64(j)*0.1, float64(j))
			}

			m := New()
			m.SetProfile(profile)
			m.SetSubdivisions(s)
			require.True(t, m.GenerateSurface())

			info := m.Info()
			assert.Equal(t, (s+1)*p, info.Vertices, "P=%d S=%d", p, s)
			assert.Equal(t, 2*s*(p-1), info.Faces, "P=%d S=%d", p, s)
			assert.Equal(t, info.Vertices, len(m.Mesh().Normals))
		}
	}
}

func TestFaceLayout(t *testing.T) {
	m := New()
	m.SetProfile(vase())
	m.SetSubdivisions(8)
	m.GenerateSurface()

	const p = 5
	faces := m.Mesh().Faces
	// First quad: ring 0 / ring 1, profile points 0 and 1.
	assert.Equal(t, Face{0, 1, p}, faces[0])
	assert.Equal(t, Face{1, p + 1, p}, faces[1])

	for _, f := range faces {
		for _, vi := range f {
			assert.Less(t, vi, m.Info().Vertices)
			assert.GreaterOrEqual(t, vi, 0)
		}
	}
}

func TestOpenSweepHasNoClosingBand(t *testing.T) {
	m := New()
	m.SetProfile(unitSegment())
	m.SetMaxAngle(90)
	m.SetSubdivisions(8)
	m.GenerateSurface()

	mesh := m.Mesh()
	assert.Len(t, mesh.Faces, 2*8*1)
	last := mesh.Vertices[8*2]
	assert.True(t, last.ApproxEqual(geometry.NewVector3(0, 0, 1), eps), "last ring at 90°: %v", last)

	firstRing := map[int]bool{0: true, 1: true}
	lastRing := map[int]bool{16: true, 17: true}
	for _, f := range mesh.Faces {
		var touchesFirst, touchesLast bool
		for _, vi := range f {
			touchesFirst = touchesFirst || firstRing[vi]
			touchesLast = touchesLast || lastRing[vi]
		}
		assert.False(t, touchesFirst && touchesLast, "face %v bridges the open gap", f)
	}
	assert.False(t, m.Info().Closed)
}

func TestNormalsAreUnitLength(t *testing.T) {
	m := New()
	m.SetProfile(vase())
	m.SetSubdivisions(24)
	m.GenerateSurface()

	for i, n := range m.Mesh().Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-9, "normal %d", i)
	}
}

func TestNormalsPointOutward(t *testing.T) {
	m := New()
	m.SetProfile(unitSegment())
	m.SetSubdivisions(8)
	m.GenerateSurface()

	mesh := m.Mesh()
	for i, v := range mesh.Vertices {
		radial := geometry.NewVector3(v.X, 0, v.Z).Normalize()
		n := mesh.Normals[i]
		assert.Greater(t, n.Dot(radial), 0.9, "vertex %d normal %v", i, n)
		assert.InDelta(t, 0, n.Y, eps, "cylinder normals are horizontal")
	}
}

func TestCalculateFaceNormalDegenerate(t *testing.T) {
	m := New()
	// Both profile points on the axis: every face collapses.
	m.SetProfile([]geometry.Point2{{X: 0, Y: 0}, {X: 0, Y: 1}})
	m.GenerateSurface()

	for _, f := range m.Mesh().Faces {
		n := m.CalculateFaceNormal(f)
		assert.True(t, n.IsZero(), "expected zero normal, got %v", n)
	}
	for _, n := range m.Mesh().Normals {
		assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z))
		assert.True(t, n.IsZero())
	}
}

func TestGenerateSurfaceIsIdempotent(t *testing.T) {
	m := New()
	m.SetProfile(vase())
	m.SetAxis(AxisZ)
	m.SetMaxAngle(270)
	m.SetSubdivisions(30)

	m.GenerateSurface()
	first := m.Mesh().Clone()
	m.GenerateSurface()
	second := m.Mesh().Clone()

	assert.Equal(t, first, second)
}

func TestGenerateSurfaceEmptyProfile(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	m := New()
	assert.False(t, m.GenerateSurface())
	assert.True(t, m.Mesh().IsEmpty())
	assert.Empty(t, m.Mesh().Faces)
	assert.Empty(t, m.Mesh().Normals)
	assert.Contains(t, buf.String(), "profile not set")
}

func TestMutatorsClearMesh(t *testing.T) {
	mutators := map[string]func(*Mesher){
		"profile":      func(m *Mesher) { m.SetProfile(unitSegment()) },
		"axis":         func(m *Mesher) { m.SetAxis(AxisX) },
		"angle":        func(m *Mesher) { m.SetMaxAngle(180) },
		"subdivisions": func(m *Mesher) { m.SetSubdivisions(12) },
		"clear":        func(m *Mesher) { m.Clear() },
	}

	for name, mutate := range mutators {
		m := New()
		m.SetProfile(vase())
		require.True(t, m.GenerateSurface())

		mutate(m)
		assert.True(t, m.Mesh().IsEmpty(), name)
		assert.Empty(t, m.Mesh().Faces, name)
		assert.Empty(t, m.Mesh().Normals, name)
	}
}

func TestGenerateVerticesDropsDependentData(t *testing.T) {
	m := New()
	m.SetProfile(vase())
	m.GenerateSurface()

	m.GenerateVertices()
	assert.NotEmpty(t, m.Mesh().Vertices)
	assert.Empty(t, m.Mesh().Faces)
	assert.Empty(t, m.Mesh().Normals)
}

func TestGeometryCarriesInfo(t *testing.T) {
	m := New()
	m.SetProfile(vase())
	m.SetAxis(AxisX)
	m.SetMaxAngle(180)
	m.SetSubdivisions(10)
	m.GenerateSurface()

	g := m.Geometry()
	assert.Equal(t, 11*5, g.VertexCount())
	assert.Equal(t, 2*10*4, g.FaceCount())
	assert.Equal(t, Info{
		ProfilePoints: 5,
		Vertices:      55,
		Faces:         80,
		Axis:          AxisX,
		MaxAngle:      180,
		Subdivisions:  10,
		Closed:        false,
	}, g.Info)
}

func TestMeshTriangle(t *testing.T) {
	m := New()
	m.SetProfile(unitSegment())
	m.SetSubdivisions(8)
	m.GenerateSurface()

	tri := m.Mesh().Triangle(0)
	assert.Equal(t, m.Mesh().Vertices[0], tri.V1)
	assert.InDelta(t, 1.0, tri.Normal.Length(), eps)
	assert.Equal(t, m.CalculateFaceNormal(m.Mesh().Faces[0]), tri.Normal)
}
