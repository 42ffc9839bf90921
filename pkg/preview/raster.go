package preview

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex carrying its depth and light intensity.
type screenVertex struct {
	x, y, z float64
	shade   float64
}

// span is where one scanline enters or leaves a triangle.
type span struct {
	x, z, shade float64
}

// edgeAt intersects the edge a-b with scanline y.
func edgeAt(a, b screenVertex, y float64) (span, bool) {
	if a.y == b.y || y < a.y || y > b.y {
		return span{}, false
	}
	t := (y - a.y) / (b.y - a.y)
	return span{
		x:     a.x + t*(b.x-a.x),
		z:     a.z + t*(b.z-a.z),
		shade: a.shade + t*(b.shade-a.shade),
	}, true
}

// fillTriangle fills a triangle with depth testing, interpolating the
// per-vertex shade across it and writing base scaled by that shade.
func fillTriangle(img *image.NRGBA, zbuffer []float64, v [3]screenVertex, base color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}

	bounds := img.Bounds()
	width := bounds.Dx()

	yStart := int(math.Max(0, math.Ceil(v[0].y)))
	yEnd := int(math.Min(float64(bounds.Dy()-1), v[2].y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		spans := make([]span, 0, 3)
		for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
			if s, ok := edgeAt(v[e[0]], v[e[1]], fy); ok {
				spans = append(spans, s)
			}
		}
		if len(spans) < 2 {
			continue
		}

		// The long edge comes last; pair it with the first short edge hit.
		start, end := spans[0], spans[len(spans)-1]
		if start.x > end.x {
			start, end = end, start
		}

		xStart := int(math.Max(0, math.Ceil(start.x)))
		xEnd := int(math.Min(float64(width-1), end.x))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if end.x != start.x {
				t = (float64(x) - start.x) / (end.x - start.x)
			}
			z := start.z + t*(end.z-start.z)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if z >= zbuffer[idx] {
				continue
			}
			zbuffer[idx] = z
			img.SetNRGBA(x, y, shadeColor(base, start.shade+t*(end.shade-start.shade)))
		}
	}
}

func shadeColor(base color.RGBA, shade float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(base.R) * shade),
		G: clamp8(float64(base.G) * shade),
		B: clamp8(float64(base.B) * shade),
		A: base.A,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
