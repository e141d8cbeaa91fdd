package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxPerftDepth bounds the search depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-path enumeration runs.
type PerftConfig struct {
	Depth       int
	Workers     int
	Repeat      int  // number of timed runs
	Divide      bool // print per-root-move counts
	BlackToMove bool
	Label       string
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: 1,
		Repeat:  1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Repeat < 1 {
		return fmt.Errorf("repeat (%d) < 1: %w", p.Repeat, errors.ErrInvalidConfig)
	}
	return nil
}
