package main

import (
	"github.com/philipparndt/gorevolve/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	sceneFile  string
	sceneFlags config.Flags
	maxAngle   float64
)

func addSceneFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&sceneFile, "scene", "s", "", "scene file (.yaml, .yml, .toml or .json)")
	fs.StringVar(&sceneFlags.CurveType, "type", "", "curve type (bezier, bspline)")
	fs.IntVar(&sceneFlags.Degree, "degree", 0, "B-spline degree")
	fs.IntVar(&sceneFlags.Resolution, "resolution", 0, "number of curve segments")
	fs.StringVar(&sceneFlags.Axis, "axis", "", "revolution axis (x, y, z)")
	fs.Float64Var(&maxAngle, "max-angle", 0, "sweep angle in degrees (0-360)")
	fs.IntVar(&sceneFlags.Subdivisions, "subdivisions", 0, "number of angular steps (8-360)")
}

// loadScene reads the scene file if one was given, applies flag overrides,
// expands "~" in output paths and validates the result.
func loadScene(cmd *cobra.Command) (config.Scene, error) {
	scene := config.Default()
	if sceneFile != "" {
		loaded, err := config.Load(sceneFile)
		if err != nil {
			return config.Scene{}, err
		}
		scene = loaded
	}

	flags := sceneFlags
	if cmd.Flags().Changed("max-angle") {
		flags.MaxAngle = &maxAngle
	}
	scene.Resolve(flags)
	if err := scene.ExpandPaths(); err != nil {
		return config.Scene{}, err
	}

	if err := scene.Validate(); err != nil {
		return config.Scene{}, err
	}
	return scene, nil
}
