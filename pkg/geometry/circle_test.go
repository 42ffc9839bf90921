package geometry

import (
	"errors"
	"math"
	"testing"
)

func ringAroundY(radius, height float64, n int) []Vector3 {
	points := make([]Vector3, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, NewVector3(radius*math.Cos(a), height, radius*math.Sin(a)))
	}
	return points
}

func TestFitCircleClosedRing(t *testing.T) {
	// The last point repeats the first, as in a full revolution.
	fit, err := FitCircleToPoints3D(ringAroundY(2.5, 1, 16), 1)
	if err != nil {
		t.Fatalf("FitCircleToPoints3D failed: %v", err)
	}

	if math.Abs(fit.Radius-2.5) > 1e-9 {
		t.Errorf("Radius failed: expected 2.5, got %v", fit.Radius)
	}
	if !fit.Center.ApproxEqual(NewVector3(0, 1, 0), 1e-9) {
		t.Errorf("Center failed: expected (0, 1, 0), got %v", fit.Center)
	}
	if fit.Normal != NewVector3(0, 1, 0) {
		t.Errorf("Normal failed: expected (0, 1, 0), got %v", fit.Normal)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("StdDev failed: expected ~0, got %v", fit.StdDev)
	}
}

func TestFitCircleCollinear(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(2, 0, 0),
	}

	_, err := FitCircleToPoints3D(points, 2)
	if !errors.Is(err, ErrCollinear) {
		t.Errorf("expected ErrCollinear, got %v", err)
	}
}

func TestFitCircleInvalidInput(t *testing.T) {
	if _, err := FitCircleToPoints3D(ringAroundY(1, 0, 2)[:2], 1); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
	if _, err := FitCircleToPoints3D(ringAroundY(1, 0, 8), 3); err == nil {
		t.Error("expected error for invalid axis")
	}
}
