package geometry

import "math"

// Point2 is a point or vector in the profile plane. X is the distance from
// the revolution axis (radius), Y the position along it (height).
type Point2 struct {
	X, Y float64
}

// Pt is a convenience function to create a Point2.
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point2) Mul(s float64) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// Lerp interpolates between p (t=0) and q (t=1). t is not clamped, so values
// outside [0,1] extrapolate along the line through both points.
func (p Point2) Lerp(q Point2, t float64) Point2 {
	return Point2{
		X: (1-t)*p.X + t*q.X,
		Y: (1-t)*p.Y + t*q.Y,
	}
}

// Length returns the length of the vector.
func (p Point2) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point2) Distance(q Point2) float64 {
	return p.Sub(q).Length()
}

// ApproxEqual reports whether both components differ by at most eps.
func (p Point2) ApproxEqual(q Point2, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// ClonePoints returns a copy of points that shares no storage with the input.
// A nil slice clones to an empty, non-nil slice.
func ClonePoints(points []Point2) []Point2 {
	out := make([]Point2, len(points))
	copy(out, points)
	return out
}
