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

// NewConfigBuilderFrom starts from an existing configuration, typically one
// loaded from a file, so that flags can override it.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithBufferSize sets the worker pool buffer size.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.BufferSize = size
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithEnumeration sets the legal move enumeration strategy.
func (b *ConfigBuilder) WithEnumeration(e Enumeration) *ConfigBuilder {
	b.cfg.Enumeration = e
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithIndent sets the JSON indentation.
func (b *ConfigBuilder) WithIndent(indent string) *ConfigBuilder {
	b.cfg.Output.Indent = indent
	return b
}

// WithDiagrams controls board diagrams in text output.
func (b *ConfigBuilder) WithDiagrams(enabled bool) *ConfigBuilder {
	b.cfg.Output.Diagrams = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
