package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/philipparndt/gorevolve/pkg/revolve"
	"github.com/philipparndt/gorevolve/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// levelFlag is a pflag.Value accepting slog level names.
type levelFlag struct {
	level slog.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) String() string {
	return strings.ToLower(l.level.String())
}

func (l *levelFlag) Set(s string) error {
	return l.level.UnmarshalText([]byte(s))
}

func (l *levelFlag) Type() string {
	return "level"
}

var logLevel = levelFlag{level: slog.LevelWarn}

var rootCmd = &cobra.Command{
	Use:   "gorevolve",
	Short: "Generate surfaces of revolution from 2D curves",
	Long: `gorevolve sweeps a Bézier or B-spline profile curve around an axis and
writes the resulting triangle mesh as OBJ, STL, JSON or OpenSCAD.

The profile comes from a scene file (YAML, TOML or JSON) or the built-in
default vase, and every scene setting can be overridden with flags.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel.level}))
		slog.SetDefault(logger)
		revolve.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().Var(&logLevel, "log-level", "log level (debug, info, warn, error)")
	addSceneFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
