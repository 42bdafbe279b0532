package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinybreak/internal/config"
	"github.com/vovakirdan/tinybreak/internal/core"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the effective palette",
	Long: `Shows the four palette entries with a colour swatch, and which
entities use them.`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

// paletteUsage describes what the cartridge draws with each entry.
var paletteUsage = [core.PaletteSize]string{
	"background",
	"sprite fill (paddle, ball, bricks)",
	"sprite outline",
	"walls",
}

// printPalette writes one line per palette entry.
func printPalette(w io.Writer, p core.Palette) {
	fmt.Fprintln(w, "Palette:")
	fmt.Fprintln(w)
	for i, c := range p {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		fmt.Fprintf(w, "  %d  %s  %s  %s\n", i, swatch, c.Hex(), paletteUsage[i])
	}
}

func runPalette(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	palette, err := cfg.ParsePalette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printPalette(os.Stdout, palette)
}

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search order is applied:
--config, ~/.tinybreak/config.{yaml,toml}, ./configs/tinybreak.{yaml,toml},
then the built-in default. The output can be saved as a starting point.

Examples:
  tinybreak config > ~/.tinybreak/config.yaml
  tinybreak config --format toml > ~/.tinybreak/config.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}
