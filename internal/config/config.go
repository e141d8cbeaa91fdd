// Package config provides configuration for the chess command-line tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=warnings, 2=moves, 3=everything

	Display *DisplayConfig
	Setup   *SetupConfig
	Perft   *PerftConfig

	// File names as given on the command line; empty means stdout/stderr.
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Setup:      NewSetupConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer log entries are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// LogLevel maps the verbosity to a log level.
func (c *Config) LogLevel() log.Level {
	switch {
	case c.Verbosity <= 0:
		return log.ErrorLevel
	case c.Verbosity == 1:
		return log.WarnLevel
	case c.Verbosity == 2:
		return log.InfoLevel
	}
	return log.DebugLevel
}

// Validate checks the configuration and every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if err := c.Setup.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
