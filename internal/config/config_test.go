package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/philipparndt/gorevolve/pkg/curve"
	"github.com/philipparndt/gorevolve/pkg/export"
	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/preview"
	"github.com/philipparndt/gorevolve/pkg/revolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "bezier", s.Curve.Type)
	assert.Equal(t, 3, s.Curve.Degree)
	assert.Equal(t, 100, s.Curve.Resolution)
	assert.Equal(t, "y", s.Revolution.Axis)
	assert.Equal(t, 360.0, s.Revolution.MaxAngle)
	assert.Equal(t, 32, s.Revolution.Subdivisions)
	assert.NotEmpty(t, s.Curve.ControlPoints)
	assert.NoError(t, s.Validate())
}

func TestLoadFormats(t *testing.T) {
	cases := map[string]string{
		"scene.yaml": `
curve:
  type: bspline
  control_points:
    - [0, 0]
    - [1, 1]
    - [0.5, 2]
revolution:
  axis: z
  max_angle: 0
`,
		"scene.toml": `
[curve]
type = "bspline"
control_points = [[0.0, 0.0], [1.0, 1.0], [0.5, 2.0]]

[revolution]
axis = "z"
max_angle = 0.0
`,
		"scene.json": `{
  "curve": {"type": "bspline", "control_points": [[0, 0], [1, 1], [0.5, 2]]},
  "revolution": {"axis": "z", "max_angle": 0}
}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeScene(t, name, content))
			require.NoError(t, err)

			assert.Equal(t, "bspline", s.Curve.Type)
			assert.Equal(t, []geometry.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 2}}, s.Curve.Points())
			assert.Equal(t, "z", s.Revolution.Axis)
			assert.Equal(t, 0.0, s.Revolution.MaxAngle, "explicit 0 must survive")

			// Unset values keep their defaults.
			assert.Equal(t, 3, s.Curve.Degree)
			assert.Equal(t, 32, s.Revolution.Subdivisions)
			assert.Equal(t, "RevolutionSurface", s.Output.Name)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeScene(t, "scene.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = Load(writeScene(t, "broken.json", "{"))
	assert.Error(t, err)

	_, err = Load(writeScene(t, "broken.toml", "[curve\n"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	s := Default()
	zero := 0.0
	s.Resolve(Flags{CurveType: "bspline", Degree: 2, MaxAngle: &zero, Output: "out/vase.stl"})

	assert.Equal(t, "bspline", s.Curve.Type)
	assert.Equal(t, 2, s.Curve.Degree)
	assert.Equal(t, 0.0, s.Revolution.MaxAngle)
	assert.Equal(t, 100, s.Curve.Resolution, "zero flag leaves value alone")
	assert.Equal(t, "y", s.Revolution.Axis)

	f, err := s.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, export.STL, f)

	s.Resolve(Flags{Format: "json"})
	f, err = s.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, export.JSON, f)
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Curve.Type = "nurbs"
	s.Revolution.Axis = "w"
	s.Output.Format = "ply"
	s.Output.Preview = "shot.gif"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, curve.ErrUnknownType)
	assert.ErrorIs(t, err, revolve.ErrUnknownAxis)
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.ErrorIs(t, err, preview.ErrUnknownImageFormat)
}

func TestExpandPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	s := Default()
	s.Output.Path = "~/out/vase.obj"
	s.Output.Preview = "/abs/vase.png"
	require.NoError(t, s.ExpandPaths())
	assert.Equal(t, filepath.Join(home, "out", "vase.obj"), s.Output.Path)
	assert.Equal(t, "/abs/vase.png", s.Output.Preview)

	s.Output.Path = "~someone/vase.obj"
	assert.Error(t, s.ExpandPaths())

	require.NoError(t, os.WriteFile(filepath.Join(home, "scene.json"), []byte(`{"revolution": {"axis": "x"}}`), 0o644))
	loaded, err := Load("~/scene.json")
	require.NoError(t, err)
	assert.Equal(t, "x", loaded.Revolution.Axis)
}
