package main

import (
	"fmt"

	"github.com/philipparndt/gorevolve/pkg/analysis"
	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the generated surface",
	Long:  "Generate the surface and show its settings, dimensions, triangle count, surface area, edge statistics and ring accuracy.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}

	built, err := pipeline.Build(scene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	geom := built.Geometry
	fmt.Fprintln(out, "Revolution Surface Information")
	fmt.Fprintln(out, "==============================")
	if sceneFile != "" {
		fmt.Fprintf(out, "Scene: %s\n", sceneFile)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Curve:")
	fmt.Fprintf(out, "  Type: %s\n", built.Curve.Type)
	fmt.Fprintf(out, "  Control Points: %d\n", built.Curve.ControlPoints)
	fmt.Fprintf(out, "  Degree: %d\n", built.Curve.Degree)
	fmt.Fprintf(out, "  Profile Points: %d\n\n", len(built.Profile))

	fmt.Fprintln(out, "Revolution:")
	fmt.Fprintf(out, "  Axis: %s\n", geom.Info.Axis)
	fmt.Fprintf(out, "  Angle: %.2f°\n", geom.Info.MaxAngle)
	fmt.Fprintf(out, "  Subdivisions: %d\n", geom.Info.Subdivisions)
	fmt.Fprintf(out, "  Closed: %t\n\n", geom.Info.Closed)

	if built.Empty() {
		fmt.Fprintln(out, "Surface: empty (no control points)")
		return nil
	}

	result := analysis.AnalyzeMesh(&geom.Mesh)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Degenerate Triangles: %d\n", result.DegenerateFaces)
	fmt.Fprintf(out, "  Non-unit Normals: %d\n", result.NonUnitNormals)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)

	rings, err := analysis.FitRings(&geom.Mesh, geom.Info)
	if err != nil {
		return fmt.Errorf("failed to fit rings: %w", err)
	}
	if len(rings.Rings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Ring Accuracy:")
		fmt.Fprintf(out, "  Rings: %d\n", len(rings.Rings))
		fmt.Fprintf(out, "  Max Radius Deviation: %.3g units\n", rings.MaxDeviation)
		fmt.Fprintf(out, "  Max Center Offset: %.3g units\n", rings.MaxAxisError)
	}
	return nil
}
