package analysis

import (
	"errors"
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// RingFit is the circle fitted through one profile point's path around
// the axis.
type RingFit struct {
	Column int
	Radius float64
	// AxisOffset is the distance from the fitted center to the axis.
	AxisOffset float64
	// StdDev is how far the ring's vertices stray from the fitted circle.
	StdDev float64
	// OnAxis is set for profile points lying on the axis; such a ring
	// collapses to a single point and carries no fit.
	OnAxis bool
}

// RingReport collects one RingFit per profile point.
type RingReport struct {
	Rings        []RingFit
	MaxDeviation float64
	MaxAxisError float64
}

// FitRings fits a circle to every column of a revolved mesh: the vertices
// that one profile point produced on each ring. A correct revolution puts
// every column on a circle centered on the axis, so MaxDeviation and
// MaxAxisError should both be close to zero.
//
// Sweeps of 0° yield no rings since every column collapses to one point.
func FitRings(mesh *revolve.Mesh, info revolve.Info) (*RingReport, error) {
	report := &RingReport{}
	if mesh.IsEmpty() || info.ProfilePoints == 0 || info.MaxAngle == 0 {
		return report, nil
	}

	p := info.ProfilePoints
	rings := mesh.VertexCount() / p
	if rings < 3 || rings*p != mesh.VertexCount() {
		return report, nil
	}

	axis := info.Axis.Index()
	column := make([]geometry.Vector3, rings)
	for j := 0; j < p; j++ {
		for i := 0; i < rings; i++ {
			column[i] = mesh.Vertices[i*p+j]
		}

		fit, err := geometry.FitCircleToPoints3D(column, axis)
		if errors.Is(err, geometry.ErrCollinear) {
			if column[0].ApproxEqual(column[rings/2], 1e-9) {
				report.Rings = append(report.Rings, RingFit{Column: j, OnAxis: true})
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		offset := axisDistance(fit.Center, axis)
		report.Rings = append(report.Rings, RingFit{
			Column:     j,
			Radius:     fit.Radius,
			AxisOffset: offset,
			StdDev:     fit.StdDev,
		})
		report.MaxDeviation = math.Max(report.MaxDeviation, fit.StdDev)
		report.MaxAxisError = math.Max(report.MaxAxisError, offset)
	}

	return report, nil
}

func axisDistance(p geometry.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return math.Hypot(p.Y, p.Z)
	case 1:
		return math.Hypot(p.X, p.Z)
	default:
		return math.Hypot(p.X, p.Y)
	}
}
