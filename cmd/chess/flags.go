// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Print the game in JSON format on exit")

	// Display options
	colourMode = flag.String("colour", "auto", "Colour output: auto, always, never")
	unicode    = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noReach    = flag.Bool("noreach", false, "Don't highlight the selected piece's targets")
	noCoords   = flag.Bool("nocoords", false, "Don't print file letters and rank numbers")
	flip       = flag.Bool("flip", false, "Draw the board from Black's side")

	// Setup options
	emptyBoard = flag.Bool("empty", false, "Start from an empty board")
	setupPos   = flag.String("setup", "", "Pieces to place on an empty board, e.g. 'Ke1 Rh1 ke8'")

	// Logging
	logFile   = flag.String("l", "", "Write log entries to file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors, 1=warnings, 2=moves, 3=debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	applySetupFlags(cfg)

	cfg.Verbosity = *verbosity
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
	return nil
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Display.Colour = mode
	cfg.Display.Unicode = *unicode
	cfg.Display.ShowReach = !*noReach
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.Flip = *flip
	return nil
}

// applySetupFlags configures the starting position. A layout implies an
// empty board.
func applySetupFlags(cfg *config.Config) {
	cfg.Setup.EmptyBoard = *emptyBoard || *setupPos != ""
	cfg.Setup.Layout = *setupPos
}
