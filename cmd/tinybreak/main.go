// tinybreak is a tiny breakout cartridge for a 160x160 fantasy console,
// shipped with terminal, window and headless hosts.
//
// Usage:
//
//	tinybreak play            - Play in the terminal
//	tinybreak window          - Play in a desktop window
//	tinybreak run             - Run frames headless and print the result
//	tinybreak palette         - Show the effective palette
//	tinybreak config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinybreak/internal/config"
	"github.com/vovakirdan/tinybreak/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinybreak",
	Short: "tinybreak - a breakout cartridge for a 160x160 fantasy console",
	Long: `tinybreak is a minimal breakout cartridge: a paddle, a ball that never
stops bouncing, four walls and thirteen bricks.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  run      - Run frames headless and print the final frame
  palette  - Show the effective palette
  config   - Print the effective configuration

Examples:
  tinybreak play
  tinybreak play --scale 2
  tinybreak window --zoom 5
  tinybreak run --frames 300 --hold right
  tinybreak config --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg
}

// newLogger builds the logger described by the config. Without a log file,
// logs go to fallback. The returned close function is always safe to call.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, func() {}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	w := fallback
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tinybreak",
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for command handlers.
func mustLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(cfg, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// mustRuntime validates the config and returns runtime settings.
func mustRuntime(cfg config.Config) core.RuntimeConfig {
	rt, err := cfg.Runtime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return rt
}
