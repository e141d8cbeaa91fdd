package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Display.Colour = mode
	return b
}

// WithUnicode enables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithShowReach controls target highlighting.
func (b *ConfigBuilder) WithShowReach(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowReach = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithLayout starts from an empty board holding the given pieces.
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Setup.EmptyBoard = true
	b.cfg.Setup.Layout = layout
	return b
}

// WithEmptyBoard starts from an empty board.
func (b *ConfigBuilder) WithEmptyBoard(enabled bool) *ConfigBuilder {
	b.cfg.Setup.EmptyBoard = enabled
	return b
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithRepeat sets the number of timed perft runs.
func (b *ConfigBuilder) WithRepeat(n int) *ConfigBuilder {
	b.cfg.Perft.Repeat = n
	return b
}

// WithDivide enables per-root-move counts.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
