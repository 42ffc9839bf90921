// Package pipeline turns a scene into a revolution surface: control points
// to profile curve, profile curve to mesh.
package pipeline

import (
	"fmt"

	"github.com/philipparndt/gorevolve/internal/config"
	"github.com/philipparndt/gorevolve/pkg/curve"
	"github.com/philipparndt/gorevolve/pkg/export"
	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// Result is everything produced from one scene.
type Result struct {
	Curve      curve.Info
	Profile    []geometry.Point2
	Geometry   revolve.Geometry
	Parameters export.Parameters
}

// Empty reports whether the scene produced no surface, which happens when
// it has no control points.
func (r *Result) Empty() bool {
	return r.Geometry.IsEmpty()
}

// Exporter returns an exporter loaded with the result's mesh.
func (r *Result) Exporter(name string) *export.Exporter {
	e := export.New()
	if name != "" {
		e.SetName(name)
	}
	e.SetMesh(&r.Geometry.Mesh)
	return e
}

// Build evaluates the scene's curve and revolves it. Unknown curve types or
// axis names are errors; an empty profile is not.
func Build(scene config.Scene) (*Result, error) {
	curveType, err := curve.ParseType(scene.Curve.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to configure curve: %w", err)
	}
	axis, err := revolve.ParseAxis(scene.Revolution.Axis)
	if err != nil {
		return nil, fmt.Errorf("failed to configure revolution: %w", err)
	}

	evaluator := curve.New()
	evaluator.SetType(curveType)
	evaluator.SetDegree(scene.Curve.Degree)
	evaluator.SetResolution(scene.Curve.Resolution)
	evaluator.SetControlPoints(scene.Curve.Points())
	profile := evaluator.GenerateCurve()

	mesher := revolve.New()
	mesher.SetAxis(axis)
	mesher.SetMaxAngle(scene.Revolution.MaxAngle)
	mesher.SetSubdivisions(scene.Revolution.Subdivisions)
	mesher.SetProfile(profile)
	mesher.GenerateSurface()

	info := evaluator.Info()
	return &Result{
		Curve:    info,
		Profile:  profile,
		Geometry: mesher.Geometry(),
		Parameters: export.Parameters{
			CurveType:    info.Type.String(),
			Degree:       info.Degree,
			Axis:         axis.String(),
			MaxAngle:     mesher.MaxAngle(),
			Subdivisions: mesher.Subdivisions(),
			Resolution:   info.Resolution,
			Extra: map[string]any{
				"controlPoints": info.ControlPoints,
			},
		},
	}, nil
}
