package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tinybreak/internal/cart"
	"github.com/vovakirdan/tinybreak/internal/core"
	"github.com/vovakirdan/tinybreak/internal/platform/tui"
)

var (
	flagFPS   int
	flagScale int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Run the cartridge in the terminal. Each terminal cell shows two pixels.

Controls (defaults, see 'tinybreak config'):
  Arrows/WASD/HJKL - Move paddle
  P                - Pause
  ?                - Toggle help
  Q/Ctrl+C         - Quit

The full picture needs 160x81 cells. Use --scale 2 (80x41) or
--scale 0 to pick the largest scale that fits.

Examples:
  tinybreak play
  tinybreak play --scale 2
  tinybreak play --fps 30 --log-file /tmp/tinybreak.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (default from config)")
	playCmd.Flags().IntVar(&flagScale, "scale", -1, "Pixels per cell column, 0 = fit terminal (default from config)")
}

// fitScale returns the smallest scale at which the screen fits the terminal.
func fitScale(termW, termH int) int {
	for scale := 1; scale < 8; scale++ {
		cols := (core.ScreenSize + scale - 1) / scale
		rows := (cols+1)/2 + 1 // Plus status line
		if cols <= termW && rows <= termH {
			return scale
		}
	}
	return 8
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	switch {
	case flagScale == 0:
		// Get terminal size to fit the picture
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		cfg.Display.Scale = fitScale(width, height)
	case flagScale > 0:
		cfg.Display.Scale = flagScale
	}

	rt := mustRuntime(cfg)

	// Logs would corrupt the alternate screen, so they go to a file or nowhere
	logger, closeLog := mustLogger(cfg.Log, io.Discard)
	defer closeLog()

	host := tui.NewHost(cfg.Input.HoldFrames)
	cartridge := cart.Default(host, cart.WithLogger(logger))

	logger.Info("starting terminal host", "fps", rt.TickRate, "scale", cfg.Display.Scale)
	err := tui.Run(cartridge, host, rt, tui.Options{
		Keys:   tui.NewKeyMap(cfg.Input.Keys),
		Scale:  cfg.Display.Scale,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
