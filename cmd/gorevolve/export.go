package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gorevolve/pkg/export"
	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFormat string
	exportName   string
	exportRender bool
	openscadArgs string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the surface and write it to a file",
	Long: `Generate the surface and write it as OBJ, STL (ASCII or binary), JSON or
OpenSCAD. The format comes from --format, else from the output file extension.
Without an output path the result is written to stdout.

With --render, an OpenSCAD export is also rendered to STL by the openscad
binary.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format (obj, stl, stl-binary, json, scad)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "solid name for STL and OpenSCAD output")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "render OpenSCAD output to STL with openscad")
	exportCmd.Flags().StringVar(&openscadArgs, "openscad-args", "", "extra arguments for openscad, quoted as in a shell")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if exportOutput != "" {
		scene.Output.Path = exportOutput
	}
	if exportFormat != "" {
		scene.Output.Format = exportFormat
	}
	if exportName != "" {
		scene.Output.Name = exportName
	}

	format, err := scene.ExportFormat()
	if err != nil {
		return err
	}
	if exportRender && (format != export.SCAD || scene.Output.Path == "") {
		return errors.New("--render needs an OpenSCAD output file")
	}

	result, err := pipeline.Build(scene)
	if err != nil {
		return err
	}
	if err := writeMesh(cmd.OutOrStdout(), scene, result); err != nil {
		return err
	}

	if exportRender {
		stlPath, err := renderSCAD(cmd.Context(), scene.Output.Path, openscadArgs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s\n", stlPath)
	}
	return nil
}
