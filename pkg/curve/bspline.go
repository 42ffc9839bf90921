package curve

import "github.com/philipparndt/gorevolve/pkg/geometry"

// KnotVector is a non-decreasing sequence of parameter values.
type KnotVector []float64

// ClampedKnots builds the clamped (open) uniform knot vector for n control
// points of the given degree: degree+1 zeros, degree+1 ones and n-degree-1
// evenly spaced interior knots, n+degree+1 values in total.
func ClampedKnots(n, degree int) KnotVector {
	m := n + degree + 1
	knots := make(KnotVector, m)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= m-degree-1:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(n-degree)
		}
	}
	return knots
}

// Domain returns the valid parameter range [knots[degree], knots[n]] for n
// control points.
func (k KnotVector) Domain(n, degree int) (lo, hi float64) {
	return k[degree], k[n]
}

// Basis evaluates the B-Spline basis function N(i,k) at t with the
// Cox–de Boor recursion. The degree-0 case uses the half-open span
// knots[i] <= t < knots[i+1]. A term whose knot span is empty is defined as 0.
func Basis(i, k int, t float64, knots KnotVector) float64 {
	if k == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		return 0
	}

	var left, right float64
	if d := knots[i+k] - knots[i]; d != 0 {
		left = (t - knots[i]) / d * Basis(i, k-1, t, knots)
	}
	if d := knots[i+k+1] - knots[i+1]; d != 0 {
		right = (knots[i+k+1] - t) / d * Basis(i+1, k-1, t, knots)
	}
	return left + right
}

// EvaluateBSpline evaluates the clamped uniform B-Spline at t in [0,1].
//
// The effective degree is min(degree, pointCount-1). t is mapped linearly
// onto the knot domain; at its upper end every half-open basis vanishes, so
// that parameter returns the last control point, which a clamped curve
// interpolates. ok is false when there are no control points; a single
// control point is returned unchanged.
func (e *Evaluator) EvaluateBSpline(t float64) (p geometry.Point2, ok bool) {
	n := len(e.points)
	switch n {
	case 0:
		return geometry.Point2{}, false
	case 1:
		return e.points[0], true
	}

	degree := e.EffectiveDegree()
	knots := ClampedKnots(n, degree)
	lo, hi := knots.Domain(n, degree)
	u := lo + t*(hi-lo)
	if u >= hi {
		return e.points[n-1], true
	}

	for i, cp := range e.points {
		b := Basis(i, degree, u, knots)
		p.X += cp.X * b
		p.Y += cp.Y * b
	}
	return p, true
}
