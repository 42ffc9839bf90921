package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrNotInstalled is returned when the openscad binary cannot be found.
var ErrNotInstalled = errors.New("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir   string
	binary    string
	extraArgs []string
}

// NewRenderer creates a new OpenSCAD renderer resolving relative paths
// against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// Available reports whether the openscad binary can be found
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// SetExtraArgs parses a shell-style argument string, such as
// `-D 'quality=2' --export-format binstl`, and passes the arguments to
// every openscad run ahead of the output option.
func (r *Renderer) SetExtraArgs(args string) error {
	parsed, err := shellwords.Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse openscad arguments: %w", err)
	}
	r.extraArgs = parsed
	return nil
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders an OpenSCAD file to STL format by running
// `openscad [extra args] -o outputFile scadFile`
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if !r.Available() {
		return ErrNotInstalled
	}

	args := append(append([]string(nil), r.extraArgs...), "-o", r.abs(outputFile), r.abs(scadFile))
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		fmt.Fprintf(&errMsg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return errors.New(errMsg.String())
	}

	return nil
}
