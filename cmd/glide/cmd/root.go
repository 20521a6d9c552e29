package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/glide"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "glide",
	Short: "Viewport motion engine tools",
	Long: `Tools for the glide viewport motion engine: inspect physics profiles,
replay gesture scripts headlessly, and try the physics in a terminal.

Examples:
  glide profiles                         # List the built-in physics profiles
  glide simulate testdata/fling.yaml     # Replay a gesture script
  glide tui --config fluid.yaml          # Pan and zoom a demo canvas`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML engine configuration")
}

// loadConfig reads the --config file, or returns the zero Config.
func loadConfig() (glide.Config, error) {
	if configPath == "" {
		return glide.Config{}, nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return glide.Config{}, err
	}
	defer f.Close()
	cfg, err := glide.LoadConfig(f)
	if err != nil {
		return glide.Config{}, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Without --verbose only warnings and
// errors are written.
func newLogger() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
