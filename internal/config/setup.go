package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// SetupConfig holds settings for the starting position of a game.
type SetupConfig struct {
	// EmptyBoard starts from an empty board instead of the initial position
	EmptyBoard bool

	// Layout lists pieces to spawn on an empty board, e.g. "Ke1 Rh1 ke8"
	Layout string
}

// NewSetupConfig creates a SetupConfig with default values.
// Games start from the standard initial position.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}

// Validate checks that the setup configuration is valid.
func (s *SetupConfig) Validate() error {
	if s.Layout != "" && !s.EmptyBoard {
		return fmt.Errorf("layout %q needs an empty board: %w", s.Layout, errors.ErrInvalidConfig)
	}
	return nil
}
