package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.BufferSize)
	}
	if cfg.Enumeration != AllSquares {
		t.Errorf("Enumeration = %q, want %q", cfg.Enumeration, AllSquares)
	}
	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, Text)
	}
	if !cfg.Output.Diagrams {
		t.Error("Output.Diagrams should be true by default")
	}
	if cfg.Output.Indent != "" {
		t.Errorf("Output.Indent = %q, want compact JSON by default", cfg.Output.Indent)
	}

	lvl, err := cfg.Level()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, lvl, logrus.InfoLevel)
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"pseudo-legal enumeration", func(c *Config) { c.Enumeration = PseudoLegal }, false},
		{"json output", func(c *Config) { c.Output.Format = JSON }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative buffer", func(c *Config) { c.BufferSize = -1 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad enumeration", func(c *Config) { c.Enumeration = "random" }, true},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestConfig_Evaluator verifies both enumerations produce a working evaluator
func TestConfig_Evaluator(t *testing.T) {
	for _, e := range []Enumeration{AllSquares, PseudoLegal} {
		cfg := NewConfigBuilder().WithEnumeration(e).Build()
		moves := cfg.Evaluator().LegalMoves(chess.InitialBoard(), chess.White, nil)
		testutil.AssertEqual(t, len(moves), 20, "enumeration %s", e)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithWorkers(3).
		WithBufferSize(7).
		WithLogLevel("debug").
		WithEnumeration(PseudoLegal).
		WithOutputFormat(JSON).
		WithIndent("\t").
		WithDiagrams(false).
		WithOutput(buf).
		Build()

	testutil.AssertEqual(t, cfg.Workers, 3)
	testutil.AssertEqual(t, cfg.BufferSize, 7)
	testutil.AssertEqual(t, cfg.LogLevel, "debug")
	testutil.AssertEqual(t, cfg.Enumeration, PseudoLegal)
	testutil.AssertEqual(t, cfg.Output, OutputConfig{Format: JSON, Indent: "\t", Diagrams: false})
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
}

func TestConfigBuilderFrom_DoesNotModifyBase(t *testing.T) {
	base := NewConfig()
	cfg := NewConfigBuilderFrom(base).WithWorkers(99).Build()

	testutil.AssertEqual(t, cfg.Workers, 99)
	if base.Workers == 99 {
		t.Error("builder modified the base config")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, c *Config) {
				testutil.AssertEqual(t, c.BufferSize, 64)
			},
		},
		{
			name: "all keys",
			yaml: "workers: 2\nbuffer_size: 8\nlog_level: debug\nenumeration: pseudo-legal\noutput:\n  format: json\n  indent: \"\"\n  diagrams: false\n",
			check: func(t *testing.T, c *Config) {
				testutil.AssertEqual(t, c.Workers, 2)
				testutil.AssertEqual(t, c.BufferSize, 8)
				testutil.AssertEqual(t, c.LogLevel, "debug")
				testutil.AssertEqual(t, c.Enumeration, PseudoLegal)
				testutil.AssertEqual(t, c.Output, OutputConfig{Format: JSON})
			},
		},
		{
			name: "partial output section keeps other defaults",
			yaml: "output:\n  format: json\n",
			check: func(t *testing.T, c *Config) {
				testutil.AssertEqual(t, c.Output.Indent, "")
				testutil.AssertTrue(t, c.Output.Diagrams)
			},
		},
		{name: "unknown key", yaml: "colour: blue\n", wantErr: true},
		{name: "invalid value", yaml: "workers: 0\n", wantErr: true},
		{name: "not yaml", yaml: "workers: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.yaml))
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			if cfg != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("workers: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	testutil.AssertNoError(t, err)
	if cfg != nil {
		testutil.AssertEqual(t, cfg.Workers, 5)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	testutil.AssertError(t, err, "explicit missing file")

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enumeration: sideways\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertContains(t, err.Error(), bad)
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	testutil.AssertContains(t, p, filepath.Join("chess-rules", "config.yaml"))
}
