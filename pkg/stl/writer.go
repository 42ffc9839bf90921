package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gorevolve/pkg/geometry"
)

const binaryHeaderSize = 80


// WriteASCII writes the model as an ASCII STL solid.
func (m *Model) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, tri := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", geometry.FormatSpaced(tri.Normal))
		bw.WriteString("    outer loop\n")
		fmt.Fprintf(bw, "      vertex %s\n", geometry.FormatSpaced(tri.V1))
		fmt.Fprintf(bw, "      vertex %s\n", geometry.FormatSpaced(tri.V2))
		fmt.Fprintf(bw, "      vertex %s\n", geometry.FormatSpaced(tri.V3))
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary writes the model as a little-endian binary STL: an 80-byte
// header carrying the name, the triangle count, then 50 bytes per triangle.
func (m *Model) WriteBinary(w io.Writer) error {
	if uint64(len(m.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(m.Triangles))
	}

	bw := bufio.NewWriter(w)

	var header [binaryHeaderSize]byte
	copy(header[:], "binary "+m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	var record struct {
		Normal, V1, V2, V3 [3]float32
		Attribute          uint16
	}
	for i, tri := range m.Triangles {
		record.Normal = tri.Normal.Float32()
		record.V1 = tri.V1.Float32()
		record.V2 = tri.V2.Float32()
		record.V3 = tri.V3.Float32()
		if err := binary.Write(bw, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}
