package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gorevolve/internal/config"
	"github.com/philipparndt/gorevolve/pkg/openscad"
	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/philipparndt/gorevolve/pkg/preview"
)

// writeMesh exports the result to scene.Output.Path, or to stdout when no
// path is set.
func writeMesh(stdout io.Writer, scene config.Scene, result *pipeline.Result) error {
	format, err := scene.ExportFormat()
	if err != nil {
		return err
	}

	exporter := result.Exporter(scene.Output.Name)
	if scene.Output.Path == "" {
		return exporter.Write(stdout, format, result.Parameters)
	}

	if err := exporter.WriteFile(scene.Output.Path, format, result.Parameters); err != nil {
		return err
	}
	slog.Info("exported surface",
		"path", scene.Output.Path,
		"format", format.String(),
		"vertices", result.Geometry.VertexCount(),
		"faces", result.Geometry.FaceCount())
	return nil
}

// renderSCAD runs OpenSCAD on an exported .scad file, writing an STL next
// to it.
func renderSCAD(ctx context.Context, scadPath, extraArgs string) (string, error) {
	stlPath := strings.TrimSuffix(scadPath, filepath.Ext(scadPath)) + ".stl"
	renderer := openscad.NewRenderer(filepath.Dir(scadPath))
	if err := renderer.SetExtraArgs(extraArgs); err != nil {
		return "", err
	}
	if err := renderer.RenderToSTL(ctx, scadPath, stlPath); err != nil {
		return "", err
	}
	slog.Info("rendered with OpenSCAD", "path", stlPath)
	return stlPath, nil
}

// writePreview renders the result to scene.Output.Preview.
func writePreview(scene config.Scene, result *pipeline.Result, opts preview.Options) error {
	opts.Width = scene.Output.Width
	opts.Height = scene.Output.Height
	img := preview.Render(&result.Geometry.Mesh, opts)
	if err := preview.WriteFile(scene.Output.Preview, img); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	slog.Info("wrote preview", "path", scene.Output.Preview)
	return nil
}
