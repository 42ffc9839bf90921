package pipeline

import (
	"bytes"
	"testing"

	"github.com/philipparndt/gorevolve/internal/config"
	"github.com/philipparndt/gorevolve/pkg/curve"
	"github.com/philipparndt/gorevolve/pkg/export"
	"github.com/philipparndt/gorevolve/pkg/revolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScene(t *testing.T) {
	scene := config.Default()
	result, err := Build(scene)
	require.NoError(t, err)
	require.False(t, result.Empty())

	assert.Len(t, result.Profile, 101)
	assert.Equal(t, 33*101, result.Geometry.VertexCount())
	assert.Equal(t, 2*32*100, result.Geometry.FaceCount())
	assert.Len(t, result.Geometry.Normals, result.Geometry.VertexCount())
	assert.True(t, result.Geometry.Info.Closed)

	// The Bézier curve starts and ends on the end control points.
	first := scene.Curve.ControlPoints[0]
	last := scene.Curve.ControlPoints[len(scene.Curve.ControlPoints)-1]
	assert.InDelta(t, first[0], result.Profile[0].X, 1e-12)
	assert.InDelta(t, last[1], result.Profile[100].Y, 1e-12)

	assert.Equal(t, export.Parameters{
		CurveType:    "bezier",
		Degree:       3,
		Axis:         "y",
		MaxAngle:     360,
		Subdivisions: 32,
		Resolution:   100,
		Extra:        map[string]any{"controlPoints": 5},
	}, result.Parameters)
}

func TestBuildAppliesSettings(t *testing.T) {
	scene := config.Default()
	scene.Curve.Type = "bspline"
	scene.Curve.Resolution = 20
	scene.Revolution.Axis = "x"
	scene.Revolution.MaxAngle = 90
	scene.Revolution.Subdivisions = 1000

	result, err := Build(scene)
	require.NoError(t, err)

	assert.Equal(t, curve.BSpline, result.Curve.Type)
	assert.Len(t, result.Profile, 21)
	assert.Equal(t, revolve.AxisX, result.Geometry.Info.Axis)
	assert.Equal(t, revolve.MaxSubdivisions, result.Geometry.Info.Subdivisions)
	assert.False(t, result.Geometry.Info.Closed)
	assert.Equal(t, 360, result.Parameters.Subdivisions)
}

func TestBuildEmptyProfile(t *testing.T) {
	scene := config.Default()
	scene.Curve.ControlPoints = nil

	result, err := Build(scene)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Empty(t, result.Profile)

	err = result.Exporter("").Write(&bytes.Buffer{}, export.OBJ, result.Parameters)
	assert.ErrorIs(t, err, export.ErrNoGeometry)
}

func TestBuildRejectsUnknownNames(t *testing.T) {
	scene := config.Default()
	scene.Curve.Type = "nurbs"
	_, err := Build(scene)
	assert.ErrorIs(t, err, curve.ErrUnknownType)

	scene = config.Default()
	scene.Revolution.Axis = "w"
	_, err = Build(scene)
	assert.ErrorIs(t, err, revolve.ErrUnknownAxis)
}

func TestResultExporter(t *testing.T) {
	result, err := Build(config.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.Exporter("Vase").Write(&buf, export.STL, result.Parameters))
	assert.Contains(t, buf.String(), "solid Vase\n")
}
