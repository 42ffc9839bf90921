// Package openscad writes meshes as OpenSCAD polyhedron() sources and
// drives the openscad binary to turn them into STL.
package openscad

import (
	"bufio"
	"fmt"
	"io"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// WritePolyhedron writes vertices and faces as a single polyhedron()
// statement. OpenSCAD expects faces wound clockwise when seen from outside,
// the opposite of the mesh's counter-clockwise winding, so each face is
// written reversed.
func WritePolyhedron(w io.Writer, name string, vertices []geometry.Vector3, faces []revolve.Face) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// %s\n", name)
	fmt.Fprintf(bw, "// %d points, %d faces\n", len(vertices), len(faces))
	bw.WriteString("polyhedron(\n  points = [\n")
	for i, v := range vertices {
		fmt.Fprintf(bw, "    [%s, %s, %s]", geometry.FormatFloat(v.X), geometry.FormatFloat(v.Y), geometry.FormatFloat(v.Z))
		if i < len(vertices)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("  ],\n  faces = [\n")
	for i, f := range faces {
		fmt.Fprintf(bw, "    [%d, %d, %d]", f[2], f[1], f[0])
		if i < len(faces)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("  ],\n  convexity = 10\n);\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write polyhedron: %w", err)
	}
	return nil
}
