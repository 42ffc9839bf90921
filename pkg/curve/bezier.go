package curve

import "github.com/philipparndt/gorevolve/pkg/geometry"

// EvaluateBezier evaluates the Bézier curve defined by all control points
// at t using De Casteljau's algorithm: adjacent points are linearly
// interpolated level by level until one remains.
//
// ok is false when there are no control points. A single control point is
// returned unchanged. t is not clamped; values outside [0,1] extrapolate.
func (e *Evaluator) EvaluateBezier(t float64) (p geometry.Point2, ok bool) {
	switch len(e.points) {
	case 0:
		return geometry.Point2{}, false
	case 1:
		return e.points[0], true
	}

	work := geometry.ClonePoints(e.points)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0], true
}
