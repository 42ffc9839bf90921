// Package export turns a generated mesh into OBJ, STL, JSON or OpenSCAD
// text. Number formatting and file output live here; mesh generation does
// not know about any file format.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// ErrNoGeometry is returned when exporting before any geometry was set, or
// after an empty mesh was set.
var ErrNoGeometry = errors.New("no geometry set for export")

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output file format.
type Format int

const (
	OBJ Format = iota
	STL
	BinarySTL
	JSON
	SCAD
)

var formatNames = map[Format]string{
	OBJ:       "obj",
	STL:       "stl",
	BinarySTL: "stl-binary",
	JSON:      "json",
	SCAD:      "scad",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case STL, BinarySTL:
		return ".stl"
	case JSON:
		return ".json"
	case SCAD:
		return ".scad"
	default:
		return ".obj"
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "obj":
		return OBJ, nil
	case "stl", "stl-ascii":
		return STL, nil
	case "stl-binary", "stlb", "binstl":
		return BinarySTL, nil
	case "json":
		return JSON, nil
	case "scad", "openscad":
		return SCAD, nil
	}
	return OBJ, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension. ".stl" maps to
// ASCII STL.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return OBJ, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Info summarizes the geometry held by an Exporter.
type Info struct {
	Vertices   int
	Faces      int
	Normals    int
	HasNormals bool
}

// Exporter holds one mesh and writes it in any supported format.
type Exporter struct {
	mesh *revolve.Mesh
	name string
	now  func() time.Time
}

// New creates an Exporter with no geometry.
func New() *Exporter {
	return &Exporter{
		name: "RevolutionSurface",
		now:  time.Now,
	}
}

// SetClock replaces the time source used for JSON timestamps.
func (e *Exporter) SetClock(now func() time.Time) {
	e.now = now
}

// SetName sets the solid name used in STL and OpenSCAD output.
func (e *Exporter) SetName(name string) {
	e.name = name
}

// SetGeometry sets the data to export. normals may be nil.
func (e *Exporter) SetGeometry(vertices []geometry.Vector3, faces []revolve.Face, normals []geometry.Vector3) {
	e.mesh = &revolve.Mesh{
		Vertices: vertices,
		Faces:    faces,
		Normals:  normals,
	}
}

// SetMesh sets the data to export from a generated mesh.
func (e *Exporter) SetMesh(mesh *revolve.Mesh) {
	e.SetGeometry(mesh.Vertices, mesh.Faces, mesh.Normals)
}

// Info describes the current geometry; ok is false when none was set.
func (e *Exporter) Info() (info Info, ok bool) {
	if e.mesh == nil {
		return Info{}, false
	}
	return Info{
		Vertices:   len(e.mesh.Vertices),
		Faces:      len(e.mesh.Faces),
		Normals:    len(e.mesh.Normals),
		HasNormals: len(e.mesh.Normals) > 0,
	}, true
}

func (e *Exporter) checkGeometry() error {
	if e.mesh == nil || len(e.mesh.Vertices) == 0 {
		return ErrNoGeometry
	}
	return nil
}

// Write writes the geometry in format f. params only affects JSON output.
func (e *Exporter) Write(w io.Writer, f Format, params Parameters) error {
	switch f {
	case OBJ:
		return e.WriteOBJ(w)
	case STL:
		return e.WriteSTL(w)
	case BinarySTL:
		return e.WriteBinarySTL(w)
	case JSON:
		return e.WriteJSON(w, params)
	case SCAD:
		return e.WriteSCAD(w)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// WriteFile writes the geometry to path in format f. A partially written
// file is removed on failure.
func (e *Exporter) WriteFile(path string, f Format, params Parameters) (err error) {
	if err := e.checkGeometry(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := e.Write(file, f, params); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	return nil
}
