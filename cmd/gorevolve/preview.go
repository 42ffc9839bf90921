package main

import (
	"errors"

	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/philipparndt/gorevolve/pkg/preview"
	"github.com/spf13/cobra"
)

var previewOptions = preview.DefaultOptions()

var (
	previewOutput string
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a shaded image of the surface",
	Long:  "Generate the surface and render it to a PNG or WebP image, chosen by the output file extension.",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "image file (.png or .webp)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 0, "image height in pixels")
	previewCmd.Flags().IntVar(&previewOptions.Supersample, "supersample", previewOptions.Supersample, "render at this multiple of the size, then downsample (1-4)")
	previewCmd.Flags().Float64Var(&previewOptions.Yaw, "yaw", previewOptions.Yaw, "camera angle around the vertical axis in degrees")
	previewCmd.Flags().Float64Var(&previewOptions.Pitch, "pitch", previewOptions.Pitch, "camera angle above the horizon in degrees")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if previewOutput != "" {
		scene.Output.Preview = previewOutput
	}
	if previewWidth > 0 {
		scene.Output.Width = previewWidth
	}
	if previewHeight > 0 {
		scene.Output.Height = previewHeight
	}
	if scene.Output.Preview == "" {
		return errors.New("no preview file given; use --output")
	}
	if err := scene.Validate(); err != nil {
		return err
	}

	result, err := pipeline.Build(scene)
	if err != nil {
		return err
	}
	return writePreview(scene, result, previewOptions)
}
