package geometry

import (
	"math"
	"strconv"
)

// FormatFloat renders v rounded to six decimals. Values that round to zero,
// including negative ones, print as 0.000000.
func FormatFloat(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 6, 64)
}

// FormatSpaced renders the components of v with FormatFloat, separated by
// single spaces, as OBJ and STL lines expect.
func FormatSpaced(v Vector3) string {
	return FormatFloat(v.X) + " " + FormatFloat(v.Y) + " " + FormatFloat(v.Z)
}
