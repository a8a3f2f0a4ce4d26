package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultPath is where the configuration file is looked up when no path is
// given: chess-rules/config.yaml under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "chess-rules", "config.yaml")
}

// Load reads the YAML configuration at path on top of the defaults and
// validates the result. An empty path means DefaultPath, which may be
// absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode reads YAML from r on top of the defaults. Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	cfg := NewConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
