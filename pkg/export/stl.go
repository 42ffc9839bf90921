package export

import (
	"io"

	"github.com/philipparndt/gorevolve/pkg/openscad"
	"github.com/philipparndt/gorevolve/pkg/stl"
)

// WriteSTL writes an ASCII STL solid whose facet normals are recomputed
// from each triangle's vertices.
func (e *Exporter) WriteSTL(w io.Writer) error {
	if err := e.checkGeometry(); err != nil {
		return err
	}
	return stl.FromMesh(e.name, e.mesh).WriteASCII(w)
}

// WriteBinarySTL writes the same triangles as WriteSTL in binary STL form.
func (e *Exporter) WriteBinarySTL(w io.Writer) error {
	if err := e.checkGeometry(); err != nil {
		return err
	}
	return stl.FromMesh(e.name, e.mesh).WriteBinary(w)
}

// WriteSCAD writes an OpenSCAD polyhedron.
func (e *Exporter) WriteSCAD(w io.Writer) error {
	if err := e.checkGeometry(); err != nil {
		return err
	}
	return openscad.WritePolyhedron(w, e.name, e.mesh.Vertices, e.mesh.Faces)
}
