// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Search options
	depth   = flag.Int("depth", 3, "Search depth in plies")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	repeat  = flag.Int("repeat", 1, "Number of timed runs")
	label   = flag.String("label", "", "Label printed with the results")

	// Position options
	setupPos = flag.String("setup", "", "Pieces to place on an empty board, e.g. 'Ke1 Rh1 ke8'")
	black    = flag.Bool("black", false, "Black to move")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=errors, 1=warnings, 2=runs, 3=debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Repeat = *repeat
	cfg.Perft.Label = *label
	cfg.Perft.BlackToMove = *black

	cfg.Setup.EmptyBoard = *setupPos != ""
	cfg.Setup.Layout = *setupPos

	cfg.Verbosity = *verbosity
	cfg.OutputFilename = *outputFile
}
