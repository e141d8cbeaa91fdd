// perft counts the leaf nodes of the legal move tree, optionally per root
// move, and times the count over repeated runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft (chess-engine-go) version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupOutputFile(cfg)

	logger := &log.Logger{Handler: cli.New(cfg.LogFile), Level: cfg.LogLevel()}

	board, turn, err := startBoard(cfg)
	if err != nil {
		logger.WithError(err).Error("setup failed")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := runPerft(ctx, cfg.Perft, board, turn, logger)
	if err != nil {
		logger.WithError(err).Error("perft failed")
		os.Exit(1)
	}
	if err := writeReport(cfg.OutputFile, rep, cfg.Perft.Divide); err != nil {
		logger.WithError(err).Error("writing report")
		os.Exit(1)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the positions reachable in a number of plies.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
