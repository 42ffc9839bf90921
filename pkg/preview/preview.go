// Package preview renders a still, shaded image of a mesh without opening a
// window. The result can be written as PNG or WebP.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

const (
	ambient = 0.3
	diffuse = 0.7
)

// ErrUnknownImageFormat is returned for image formats other than PNG and WebP.
var ErrUnknownImageFormat = errors.New("unknown image format")

// Options controls the rendered image.
type Options struct {
	Width       int
	Height      int
	Supersample int     // render at this multiple of the size, then downsample
	Yaw         float64 // degrees around the vertical axis
	Pitch       float64 // degrees above the horizon
	Color       color.RGBA
	Background  color.RGBA
}

// DefaultOptions returns a 512×512 view from slightly above and to the side.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Supersample: 2,
		Yaw:         30,
		Pitch:       20,
		Color:       color.RGBA{R: 70, G: 130, B: 180, A: 255},
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	o.Supersample = max(1, min(4, o.Supersample))
	return o
}

// Render draws mesh with an orbit camera framing its bounding box. Faces are
// lit from the viewer's upper left using the mesh's vertex normals, or face
// normals when the mesh has none, and both sides of a face are lit alike.
func Render(mesh *revolve.Mesh, opts Options) *image.NRGBA {
	opts = opts.normalized()
	w, h := opts.Width*opts.Supersample, opts.Height*opts.Supersample

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	bg := color.NRGBA(opts.Background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			canvas.SetNRGBA(x, y, bg)
		}
	}

	if !mesh.IsEmpty() {
		draw3D(canvas, mesh, opts)
	}

	if opts.Supersample == 1 {
		return canvas
	}
	return downsample(canvas, opts.Width, opts.Height)
}

func draw3D(canvas *image.NRGBA, mesh *revolve.Mesh, opts Options) {
	w, h := float64(canvas.Bounds().Dx()), float64(canvas.Bounds().Dy())

	cam := NewCamera(mesh.Bounds())
	cam.Rotate(opts.Pitch*math.Pi/180, opts.Yaw*math.Pi/180)

	right, up, forward := cam.basis()
	light := right.Mul(-0.5).Add(up).Sub(forward).Normalize()

	zbuffer := make([]float64, int(w)*int(h))
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	smooth := len(mesh.Normals) == len(mesh.Vertices)
	shade := func(n geometry.Vector3) float64 {
		return ambient + diffuse*math.Abs(n.Dot(light))
	}

	for i, face := range mesh.Faces {
		var faceShade float64
		if !smooth {
			faceShade = shade(mesh.Triangle(i).Normal)
		}

		var sv [3]screenVertex
		for k, vi := range face {
			x, y, z := cam.Project(mesh.Vertices[vi], w, h)
			sv[k] = screenVertex{x: x, y: y, z: z, shade: faceShade}
			if smooth {
				sv[k].shade = shade(mesh.Normals[vi])
			}
		}
		fillTriangle(canvas, zbuffer, sv, opts.Color)
	}
}

func downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ImageFormat is an output image encoding.
type ImageFormat int

const (
	PNG ImageFormat = iota
	WebP
)

func (f ImageFormat) String() string {
	if f == WebP {
		return "webp"
	}
	return "png"
}

// ParseImageFormat converts "png" or "webp" to an ImageFormat.
func ParseImageFormat(name string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownImageFormat, name)
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownImageFormat, format)
	}
	return nil
}

// WriteFile encodes img to path, choosing the format from the extension.
func WriteFile(path string, img image.Image) (err error) {
	format, err := ParseImageFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Encode(f, img, format)
}
