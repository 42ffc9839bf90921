package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gorevolve/pkg/geometry"
	"github.com/philipparndt/gorevolve/pkg/revolve"
)

// normalTolerance is how far a vertex normal's length may stray from 1.
const normalTolerance = 1e-6

// EdgeInfo contains information about an edge of a face
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// MeasurementResult contains various measurements of a generated mesh
type MeasurementResult struct {
	BoundingBox     geometry.BoundingBox
	Dimensions      geometry.Vector3
	SurfaceArea     float64
	VertexCount     int
	TriangleCount   int
	EdgeCount       int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	DegenerateFaces int
	// NonUnitNormals counts vertex normals whose length is not 1. Normals
	// of vertices touched only by degenerate faces are zero and count here.
	NonUnitNormals int
	AllEdges       []EdgeInfo
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(mesh *revolve.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   mesh.Bounds(),
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.FaceCount(),
		AllEdges:      make([]EdgeInfo, 0, 3*mesh.FaceCount()),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := range mesh.Faces {
		triangle := mesh.Triangle(i)
		result.SurfaceArea += triangle.Area()
		if triangle.IsDegenerate() {
			result.DegenerateFaces++
		}

		edges := []struct {
			start, end geometry.Vector3
		}{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:  edge.start,
				End:    edge.end,
				Length: length,
				FaceID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	for _, n := range mesh.Normals {
		if math.Abs(n.Length()-1) > normalTolerance {
			result.NonUnitNormals++
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a < b })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b float64) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i].Length, edges[j].Length)
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
