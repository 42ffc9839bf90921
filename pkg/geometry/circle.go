package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrCollinear is returned when the sample points do not span a circle.
var ErrCollinear = errors.New("points are collinear")

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of the point distances from Radius
}

// planeCoords projects p onto the plane perpendicular to the given axis
// (0=X, 1=Y, 2=Z), returning the two in-plane coordinates and the height.
func planeCoords(p Vector3, axis int) (u, v, h float64) {
	switch axis {
	case 0:
		return p.Y, p.Z, p.X
	case 1:
		return p.X, p.Z, p.Y
	default:
		return p.X, p.Y, p.Z
	}
}

func fromPlaneCoords(u, v, h float64, axis int) Vector3 {
	switch axis {
	case 0:
		return NewVector3(h, u, v)
	case 1:
		return NewVector3(u, h, v)
	default:
		return NewVector3(u, v, h)
	}
}

// FitCircleToPoints3D fits a circle to 3D points lying in a plane
// perpendicular to normalAxis (0=X, 1=Y, 2=Z).
//
// The circle is computed through three samples spread evenly over the input
// (indices 0, n/3 and 2n/3, so a closed loop whose last point repeats the
// first still yields distinct samples) using the determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
//
// StdDev then measures how far all points stray from that circle.
func FitCircleToPoints3D(points []Vector3, normalAxis int) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle, got %d", len(points))
	}
	if normalAxis < 0 || normalAxis > 2 {
		return nil, fmt.Errorf("invalid constraint axis: %d (must be 0, 1, or 2)", normalAxis)
	}

	n := len(points)
	x1, y1, h := planeCoords(points[0], normalAxis)
	x2, y2, _ := planeCoords(points[n/3], normalAxis)
	x3, y3, _ := planeCoords(points[2*n/3], normalAxis)

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return nil, ErrCollinear
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d
	radius := math.Hypot(x1-cx, y1-cy)

	var sumSq float64
	for _, p := range points {
		u, v, _ := planeCoords(p, normalAxis)
		dev := math.Hypot(u-cx, v-cy) - radius
		sumSq += dev * dev
	}

	return &CircleFit{
		Center: fromPlaneCoords(cx, cy, h, normalAxis),
		Radius: radius,
		Normal: fromPlaneCoords(0, 0, 1, normalAxis),
		StdDev: math.Sqrt(sumSq / float64(n)),
	}, nil
}
