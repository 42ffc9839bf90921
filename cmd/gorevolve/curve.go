package main

import (
	"fmt"

	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the sampled profile curve",
	Long:  "Evaluate the scene's curve and print one \"x y\" line per sample.",
	Args:  cobra.NoArgs,
	RunE:  runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)
}

func runCurve(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Build(scene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s, %d control points, %d samples\n",
		result.Curve.Type, result.Curve.ControlPoints, len(result.Profile))
	for _, p := range result.Profile {
		fmt.Fprintf(out, "%.6f %.6f\n", p.X, p.Y)
	}
	return nil
}
