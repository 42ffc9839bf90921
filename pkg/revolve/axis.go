package revolve

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// Axis is the 3D axis a profile is revolved around.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ErrUnknownAxis is returned by ParseAxis for unrecognized names.
var ErrUnknownAxis = errors.New("unknown axis")

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts "x", "y" or "z" (case-insensitive) to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisY, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
}

// Index returns 0, 1 or 2 for X, Y or Z.
func (a Axis) Index() int {
	return int(a)
}

// Revolve maps a profile point to 3D after rotating it by angle radians
// around the axis. The profile X coordinate is the radius and is rotated in
// the plane perpendicular to the axis; the profile Y coordinate is the
// height and is placed on the axis itself.
//
//	Y: (x·cos, y, x·sin)
//	X: (y, x·cos, x·sin)
//	Z: (x·cos, x·sin, y)
//
// Unknown axes behave like Y.
func (a Axis) Revolve(p geometry.Point2, angle float64) geometry.Vector3 {
	sin, cos := math.Sincos(angle)
	switch a {
	case AxisX:
		return geometry.NewVector3(p.Y, p.X*cos, p.X*sin)
	case AxisZ:
		return geometry.NewVector3(p.X*cos, p.X*sin, p.Y)
	default:
		return geometry.NewVector3(p.X*cos, p.Y, p.X*sin)
	}
}
