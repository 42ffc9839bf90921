package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gorevolve/internal/config"
	"github.com/philipparndt/gorevolve/pkg/pipeline"
	"github.com/philipparndt/gorevolve/pkg/preview"
	"github.com/philipparndt/gorevolve/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate outputs whenever the scene file changes",
	Long: `Watch the scene file given with --scene and rebuild the surface each time
it is saved, writing the scene's output file and preview image. Runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "wait this long after the last change before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if sceneFile == "" {
		return errors.New("watch needs a scene file; use --scene")
	}

	rebuild := func() error {
		scene, err := loadScene(cmd)
		if err != nil {
			return err
		}
		if scene.Output.Path == "" && scene.Output.Preview == "" {
			return errors.New("scene has neither output.path nor output.preview")
		}
		return writeOutputs(scene)
	}

	if err := rebuild(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.SetLogger(slog.Default())

	if err := fw.Watch([]string{sceneFile}, func(path string) {
		if err := rebuild(); err != nil {
			slog.Error("rebuild failed", "scene", path, "error", err)
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Rebuilt %s\n", path)
	}); err != nil {
		return err
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", sceneFile)
	select {
	case <-ctx.Done():
	case <-fw.Done():
	}
	return nil
}

func writeOutputs(scene config.Scene) error {
	result, err := pipeline.Build(scene)
	if err != nil {
		return err
	}
	if scene.Output.Path != "" {
		if err := writeMesh(nil, scene, result); err != nil {
			return err
		}
	}
	if scene.Output.Preview != "" {
		if err := writePreview(scene, result, preview.DefaultOptions()); err != nil {
			return err
		}
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
