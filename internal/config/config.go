// Package config loads scene descriptions: the control points and curve
// settings, the revolution settings and where to write the result.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gorevolve/pkg/curve"
	"github.com/philipparndt/gorevolve/pkg/export"
	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/preview"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// ErrUnsupportedFile is returned by Load for extensions other than .yaml,
// .yml, .toml and .json.
var ErrUnsupportedFile = errors.New("unsupported scene file")

// Curve holds the profile curve settings.
type Curve struct {
	Type          string       `json:"type" yaml:"type" toml:"type"`
	Degree        int          `json:"degree" yaml:"degree" toml:"degree"`
	Resolution    int          `json:"resolution" yaml:"resolution" toml:"resolution"`
	ControlPoints [][2]float64 `json:"control_points" yaml:"control_points" toml:"control_points"`
}

// Points returns the control points as 2D points.
func (c Curve) Points() []geometry.Point2 {
	points := make([]geometry.Point2, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		points[i] = geometry.Pt(p[0], p[1])
	}
	return points
}

// Revolution holds the sweep settings.
type Revolution struct {
	Axis         string  `json:"axis" yaml:"axis" toml:"axis"`
	MaxAngle     float64 `json:"max_angle" yaml:"max_angle" toml:"max_angle"`
	Subdivisions int     `json:"subdivisions" yaml:"subdivisions" toml:"subdivisions"`
}

// Output says where results go. Empty paths mean "not requested".
type Output struct {
	Path    string `json:"path" yaml:"path" toml:"path"`
	Format  string `json:"format" yaml:"format" toml:"format"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	Preview string `json:"preview" yaml:"preview" toml:"preview"`
	Width   int    `json:"width" yaml:"width" toml:"width"`
	Height  int    `json:"height" yaml:"height" toml:"height"`
}

// Scene is a complete description of one revolution surface.
type Scene struct {
	Curve      Curve      `json:"curve" yaml:"curve" toml:"curve"`
	Revolution Revolution `json:"revolution" yaml:"revolution" toml:"revolution"`
	Output     Output     `json:"output" yaml:"output" toml:"output"`
}

// Default returns a Bézier vase profile revolved a full turn around Y.
func Default() Scene {
	return Scene{
		Curve: Curve{
			Type:       curve.Bezier.String(),
			Degree:     curve.DefaultDegree,
			Resolution: curve.DefaultResolution,
			ControlPoints: [][2]float64{
				{0, 0}, {1.5, 0}, {0.8, 1.5}, {2, 3}, {1.2, 4},
			},
		},
		Revolution: Revolution{
			Axis:         revolve.AxisY.String(),
			MaxAngle:     revolve.DefaultMaxAngle,
			Subdivisions: revolve.DefaultSubdivisions,
		},
		Output: Output{
			Name:   "RevolutionSurface",
			Width:  512,
			Height: 512,
		},
	}
}

// Load reads a scene file. Settings missing from the file keep the values
// from Default; a control_points entry replaces the default points entirely.
func Load(path string) (Scene, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	scene := Default()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &scene)
	case ".toml":
		_, err = toml.Decode(string(data), &scene)
	case ".json":
		err = json.Unmarshal(data, &scene)
	default:
		return Scene{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if err != nil {
		return Scene{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return scene, nil
}

// Flags holds CLI flag values that override scene file settings.
// Zero values leave the scene untouched; MaxAngle is a pointer because 0°
// is a valid sweep.
type Flags struct {
	CurveType    string
	Degree       int
	Resolution   int
	Axis         string
	MaxAngle     *float64
	Subdivisions int
	Output       string
	Format       string
	Preview      string
}

// Resolve applies CLI overrides.
func (s *Scene) Resolve(flags Flags) {
	if flags.CurveType != "" {
		s.Curve.Type = flags.CurveType
	}
	if flags.Degree > 0 {
		s.Curve.Degree = flags.Degree
	}
	if flags.Resolution > 0 {
		s.Curve.Resolution = flags.Resolution
	}
	if flags.Axis != "" {
		s.Revolution.Axis = flags.Axis
	}
	if flags.MaxAngle != nil {
		s.Revolution.MaxAngle = *flags.MaxAngle
	}
	if flags.Subdivisions > 0 {
		s.Revolution.Subdivisions = flags.Subdivisions
	}
	if flags.Output != "" {
		s.Output.Path = flags.Output
	}
	if flags.Format != "" {
		s.Output.Format = flags.Format
	}
	if flags.Preview != "" {
		s.Output.Preview = flags.Preview
	}
}

// ExpandPaths replaces a leading "~" in the output paths with the user's
// home directory.
func (s *Scene) ExpandPaths() error {
	for _, p := range []*string{&s.Output.Path, &s.Output.Preview} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks names that are parsed later. Numeric settings are not
// checked here since the curve evaluator and mesher clamp them.
func (s Scene) Validate() error {
	var errs []error
	if _, err := curve.ParseType(s.Curve.Type); err != nil {
		errs = append(errs, err)
	}
	if _, err := revolve.ParseAxis(s.Revolution.Axis); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.ExportFormat(); err != nil {
		errs = append(errs, err)
	}
	if s.Output.Preview != "" {
		if _, err := preview.ParseImageFormat(filepath.Ext(s.Output.Preview)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid scene: %w", err)
	}
	return nil
}

// ExportFormat returns the output format: the explicit format if set, else
// the one implied by the output path, else OBJ.
func (s Scene) ExportFormat() (export.Format, error) {
	switch {
	case s.Output.Format != "":
		return export.ParseFormat(s.Output.Format)
	case s.Output.Path != "":
		return export.FormatFromPath(s.Output.Path)
	}
	return export.OBJ, nil
}
