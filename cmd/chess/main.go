// chess is an interactive two-player chess board for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
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
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	logger := newLogger(cfg)
	start := func() (*game.Game, error) {
		return startGame(cfg, logger)
	}
	g, err := start()
	if err != nil {
		logger.WithError(err).Error("setup failed")
		os.Exit(1)
	}

	session := NewSession(g, os.Stdin, cfg.OutputFile, output.NewOptions(cfg.Display, cfg.OutputFile), logger)
	session.restart = start
	if err := session.Run(); err != nil {
		logger.WithError(err).Error("reading input")
		os.Exit(1)
	}

	if *jsonOutput {
		if err := output.NewJSONWriterSingle(cfg.OutputFile).WriteGame(session.Game()); err != nil {
			logger.WithError(err).Error("writing JSON")
			os.Exit(1)
		}
	}
}

// newLogger returns a CLI logger writing to the configured log file.
func newLogger(cfg *config.Config) log.Interface {
	return &log.Logger{
		Handler: cli.New(cfg.LogFile),
		Level:   cfg.LogLevel(),
	}
}

// startGame creates a game from the standard position, or from the
// configured layout on an empty board.
func startGame(cfg *config.Config, logger log.Interface) (*game.Game, error) {
	if !cfg.Setup.EmptyBoard {
		return game.NewStandard(game.WithLogger(logger)), nil
	}
	g := game.New(game.WithLogger(logger))
	if err := g.SpawnLayout(cfg.Setup.Layout); err != nil {
		return nil, err
	}
	return g, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}
	file, err := os.OpenFile(cfg.LogFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
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
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive two-player chess board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
