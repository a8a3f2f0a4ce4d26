// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Enumeration selects how candidate moves are generated when listing legal
// moves and deciding checkmate or stalemate. Both produce identical results.
type Enumeration string

const (
	// AllSquares tries every square of the board as a destination.
	AllSquares Enumeration = "all-squares"
	// PseudoLegal tries only the squares each piece's pattern can reach.
	PseudoLegal Enumeration = "pseudo-legal"
)

// Config holds all program configuration.
type Config struct {
	// Workers is the number of goroutines used for batch replay.
	Workers int `yaml:"workers"`

	// BufferSize is the worker pool channel capacity.
	BufferSize int `yaml:"buffer_size"`

	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string `yaml:"log_level"`

	Enumeration Enumeration `yaml:"enumeration"`

	Output OutputConfig `yaml:"output"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers:     runtime.NumCPU(),
		BufferSize:  64,
		LogLevel:    logrus.InfoLevel.String(),
		Enumeration: AllSquares,
		Output:      *NewOutputConfig(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be at least 1, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Enumeration {
	case AllSquares, PseudoLegal:
	default:
		return fmt.Errorf("unknown enumeration %q: %w", c.Enumeration, errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log_level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return lvl, nil
}

// Evaluator builds the engine evaluator for the configured enumeration.
func (c *Config) Evaluator() *engine.Evaluator {
	if c.Enumeration == PseudoLegal {
		return engine.NewEvaluator(engine.WithTargets(engine.PseudoLegalTargets))
	}
	return engine.NewEvaluator()
}
