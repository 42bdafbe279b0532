package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinybreak/internal/cart"
	"github.com/vovakirdan/tinybreak/internal/platform/window"
)

var flagZoom int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Run the cartridge in a desktop window. Keys are read directly, so a
held key stays held until it is released.

Controls (defaults, see 'tinybreak config'):
  Arrows/WASD/HJKL - Move paddle
  Q/Esc            - Quit

Examples:
  tinybreak window
  tinybreak window --zoom 6`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagZoom, "zoom", 0, "Screen pixels per console pixel (default from config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagZoom > 0 {
		cfg.Display.Zoom = flagZoom
	}
	rt := mustRuntime(cfg)

	logger, closeLog := mustLogger(cfg.Log, os.Stderr)
	defer closeLog()

	host := window.NewHost(cfg.Input.Keys, logger)
	cartridge := cart.Default(host, cart.WithLogger(logger))

	err := window.Run(cartridge, host, rt, window.Options{
		Zoom:   cfg.Display.Zoom,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
