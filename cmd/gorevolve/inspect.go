package main

import (
	"fmt"

	"github.com/philipparndt/gorevolve/pkg/analysis"
	"github.com/philipparndt/gorevolve/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	inspectCount     int
	inspectLongest   bool
	inspectShortest  bool
	inspectMinLength float64
	inspectMaxLength float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Analyze an existing STL file",
	Long:  "Read an ASCII or binary STL file, for example one written by export, and show its dimensions, surface area and edges.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectCount, "count", "n", 10, "Number of edges to display")
	inspectCmd.Flags().BoolVarP(&inspectLongest, "longest", "l", false, "Show longest edges")
	inspectCmd.Flags().BoolVar(&inspectShortest, "shortest", false, "Show shortest edges")
	inspectCmd.Flags().Float64Var(&inspectMinLength, "min", 0.0, "Minimum edge length filter")
	inspectCmd.Flags().Float64Var(&inspectMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	result := analysis.AnalyzeMesh(model.Mesh())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintf(out, "Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "Degenerate Triangles: %d\n", result.DegenerateFaces)
	fmt.Fprintf(out, "Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(out, "Bounding Box: %s - %s\n\n",
		analysis.FormatVector(result.BoundingBox.Min),
		analysis.FormatVector(result.BoundingBox.Max))

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case inspectLongest:
		edges = analysis.FindLongestEdges(result, inspectCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case inspectShortest:
		edges = analysis.FindShortestEdges(result, inspectCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case inspectMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, inspectMinLength, inspectMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", inspectMinLength, inspectMaxLength, len(edges))
		edges = edges[:min(len(edges), inspectCount)]
	default:
		edges = result.AllEdges[:min(len(result.AllEdges), inspectCount)]
		title = fmt.Sprintf("All Edges (showing first %d of %d)", len(edges), result.EdgeCount)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	for i, edge := range edges {
		fmt.Fprintf(out, "%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
	return nil
}
