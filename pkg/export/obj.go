package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

// WriteOBJ writes Wavefront OBJ: v lines, vn lines when normals are present,
// and f lines with 1-based indices (v//vn when normals are present).
func (e *Exporter) WriteOBJ(w io.Writer) error {
	if err := e.checkGeometry(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	m := e.mesh
	hasNormals := len(m.Normals) > 0

	bw.WriteString("# OBJ file generated by gorevolve\n")
	bw.WriteString("# Revolution surface\n\n")

	bw.WriteString("# Vertices\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s\n", geometry.FormatSpaced(v))
	}

	if hasNormals {
		bw.WriteString("\n# Vertex normals\n")
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %s\n", geometry.FormatSpaced(n))
		}
	}

	bw.WriteString("\n# Faces\n")
	for _, f := range m.Faces {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		if hasNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OBJ: %w", err)
	}
	return nil
}
