package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lessondeck/deck"
	"lessondeck/export"
)

// Config structure
type Config struct {
	Backend  string           `json:"backend" yaml:"backend"`                       // "goppt", "gooxml" or "memory"
	Output   string           `json:"output,omitempty" yaml:"output,omitempty"`     // overrides the deck's own output path
	LogDir   string           `json:"logDir,omitempty" yaml:"logDir,omitempty"`     // empty disables file logging
	DeckFile string           `json:"deckFile,omitempty" yaml:"deckFile,omitempty"` // empty uses the built-in lesson deck
	Style    deck.StyleConfig `json:"style" yaml:"style"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend: export.BackendGoPPT,
		Style:   deck.DefaultStyle(),
	}
}

// Parse overlays YAML onto Default(). Keys that are absent keep their default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Backend = export.NormalizeBackend(cfg.Backend)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Validate checks the backend name and the style.
func (c Config) Validate() error {
	if !export.IsBackend(c.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(export.Backends(), ", "))
	}
	return c.Style.Validate()
}
