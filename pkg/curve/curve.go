// Package curve evaluates planar Bézier and clamped uniform B-Spline curves
// from an editable list of control points and discretizes them into a
// profile polyline.
package curve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Type selects the curve family used by an Evaluator.
type Type int

const (
	// Bezier evaluates with De Casteljau's algorithm over all control points.
	Bezier Type = iota
	// BSpline evaluates with the Cox–de Boor basis over a clamped uniform knot vector.
	BSpline
)

// ErrUnknownType is returned by ParseType for unrecognized names.
var ErrUnknownType = errors.New("unknown curve type")

func (t Type) String() string {
	switch t {
	case Bezier:
		return "bezier"
	case BSpline:
		return "bspline"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a curve type name ("bezier", "bspline" or "b-spline",
// case-insensitive) to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bezier", "bézier":
		return Bezier, nil
	case "bspline", "b-spline":
		return BSpline, nil
	default:
		return Bezier, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

const (
	// DefaultDegree is the degree of a new Evaluator.
	DefaultDegree = 3
	// DefaultResolution is the number of segments GenerateCurve produces by default.
	DefaultResolution = 100
	// MinDegree is the smallest degree SetDegree accepts.
	MinDegree = 1
	// MinResolution is the smallest resolution SetResolution accepts.
	MinResolution = 10
)

// Info is a read-only snapshot of an Evaluator's configuration.
type Info struct {
	ControlPoints int
	Type          Type
	Degree        int
	Resolution    int
}

// Evaluator owns an ordered sequence of control points and the settings
// used to turn them into a curve. The zero value is not usable; call New.
type Evaluator struct {
	points     []geometry.Point2
	curveType  Type
	degree     int
	resolution int
}

// New creates an Evaluator with no control points, Bézier type,
// degree 3 and resolution 100.
func New() *Evaluator {
	return &Evaluator{
		points:     make([]geometry.Point2, 0),
		curveType:  Bezier,
		degree:     DefaultDegree,
		resolution: DefaultResolution,
	}
}

// SetControlPoints replaces the control points with a copy of points.
func (e *Evaluator) SetControlPoints(points []geometry.Point2) {
	e.points = geometry.ClonePoints(points)
}

// ControlPoints returns a copy of the current control points.
func (e *Evaluator) ControlPoints() []geometry.Point2 {
	return geometry.ClonePoints(e.points)
}

// AddControlPoint appends a control point.
func (e *Evaluator) AddControlPoint(x, y float64) {
	e.points = append(e.points, geometry.Pt(x, y))
}

// RemoveControlPoint deletes the control point at index.
// Out-of-range indices are ignored.
func (e *Evaluator) RemoveControlPoint(index int) {
	if index < 0 || index >= len(e.points) {
		return
	}
	e.points = append(e.points[:index], e.points[index+1:]...)
}

// UpdateControlPoint moves the control point at index.
// Out-of-range indices are ignored.
func (e *Evaluator) UpdateControlPoint(index int, x, y float64) {
	if index < 0 || index >= len(e.points) {
		return
	}
	e.points[index] = geometry.Pt(x, y)
}

// SetType selects the curve family.
func (e *Evaluator) SetType(t Type) {
	e.curveType = t
}

// SetDegree sets the B-Spline degree, clamped to at least MinDegree.
func (e *Evaluator) SetDegree(degree int) {
	e.degree = max(MinDegree, degree)
}

// SetResolution sets the number of curve segments, clamped to at least MinResolution.
func (e *Evaluator) SetResolution(resolution int) {
	e.resolution = max(MinResolution, resolution)
}

// Type returns the active curve family.
func (e *Evaluator) Type() Type { return e.curveType }

// Degree returns the configured degree. B-Spline evaluation may use a lower
// effective degree; see EffectiveDegree.
func (e *Evaluator) Degree() int { return e.degree }

// Resolution returns the configured number of segments.
func (e *Evaluator) Resolution() int { return e.resolution }

// EffectiveDegree returns the degree B-Spline evaluation actually uses:
// min(degree, pointCount-1), or 0 with fewer than two points.
func (e *Evaluator) EffectiveDegree() int {
	return max(0, min(e.degree, len(e.points)-1))
}

// Info returns a snapshot of the evaluator state.
func (e *Evaluator) Info() Info {
	return Info{
		ControlPoints: len(e.points),
		Type:          e.curveType,
		Degree:        e.degree,
		Resolution:    e.resolution,
	}
}

// Evaluate dispatches to the active curve family.
func (e *Evaluator) Evaluate(t float64) (geometry.Point2, bool) {
	if e.curveType == BSpline {
		return e.EvaluateBSpline(t)
	}
	return e.EvaluateBezier(t)
}

// GenerateCurve samples the curve at resolution+1 evenly spaced parameters
// t = i/resolution. With no control points the result is empty.
// GenerateCurve only reads the evaluator state.
func (e *Evaluator) GenerateCurve() []geometry.Point2 {
	if len(e.points) == 0 {
		return []geometry.Point2{}
	}

	points := make([]geometry.Point2, 0, e.resolution+1)
	for i := 0; i <= e.resolution; i++ {
		t := float64(i) / float64(e.resolution)
		if p, ok := e.Evaluate(t); ok {
			points = append(points, p)
		}
	}
	return points
}
