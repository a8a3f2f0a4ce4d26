package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// Text prints one line per result, with board diagrams where relevant.
	Text OutputFormat = "text"
	// JSON prints one JSON document per result.
	JSON OutputFormat = "json"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is "text" or "json".
	Format OutputFormat `yaml:"format"`

	// Indent is the JSON indentation string; empty means compact output.
	Indent string `yaml:"indent"`

	// Diagrams controls whether text output includes the board diagram.
	Diagrams bool `yaml:"diagrams"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:   Text,
		Indent:   "",
		Diagrams: true,
	}
}

// Validate checks the output format name.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case Text, JSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q: %w", o.Format, errors.ErrInvalidConfig)
}
