package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ColourMode controls ANSI colour in board output.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when writing to a terminal
	ColourAlways                   // Always emit ANSI sequences
	ColourNever                    // Plain text
)

// String returns the flag spelling of a colour mode.
func (m ColourMode) String() string {
	switch m {
	case ColourAlways:
		return "always"
	case ColourNever:
		return "never"
	}
	return "auto"
}

// ParseColourMode parses "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColourAuto, nil
	case "always", "on", "yes":
		return ColourAlways, nil
	case "never", "off", "no":
		return ColourNever, nil
	}
	return ColourAuto, fmt.Errorf("colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Colour selects when ANSI colour is used
	Colour ColourMode

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// ShowReach highlights the selected piece's targets
	ShowReach bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// Flip draws the board from Black's side
	Flip bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      ColourAuto,
		ShowReach:   true,
		Coordinates: true,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.Colour < ColourAuto || d.Colour > ColourNever {
		return fmt.Errorf("colour mode %d: %w", d.Colour, errors.ErrInvalidConfig)
	}
	return nil
}
