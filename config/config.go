package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"saxguide/fingering"
)

// KindInvalid tags configuration values that parse but cannot be used.
const KindInvalid ftag.Kind = "invalid_config"

// Config is read from the environment at startup. Nothing is written back.
type Config struct {
	Locale  string `env:"SAXGUIDE_LOCALE" envDefault:"fr-FR"`
	Palette string `env:"SAXGUIDE_PALETTE"` // path to a .gpl file, empty = built-in
	Debug   bool   `env:"SAXGUIDE_DEBUG"`

	// Initial selection
	Note   string `env:"SAXGUIDE_NOTE" envDefault:"high_d"`
	Source int    `env:"SAXGUIDE_SOURCE" envDefault:"0"`
	Target int    `env:"SAXGUIDE_TARGET" envDefault:"2"`
}

// DefaultConfig returns the config used when no variable is set
func DefaultConfig() *Config {
	return &Config{
		Locale: "fr-FR",
		Note:   "high_d",
		Source: 0,
		Target: 2,
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the config from the environment and checks it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, fault.Wrap(err,
			fmsg.With("read configuration"),
			ftag.With(KindInvalid))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the environment parser cannot.
// The note id is checked later against the loaded chart.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return invalid(err, "SAXGUIDE_LOCALE=%q", c.Locale)
	}
	if c.Source < 0 || c.Source >= fingering.NumInstruments() {
		return invalid(nil, "SAXGUIDE_SOURCE=%d out of range [0,%d)", c.Source, fingering.NumInstruments())
	}
	if c.Target < 0 || c.Target >= fingering.NumInstruments() {
		return invalid(nil, "SAXGUIDE_TARGET=%d out of range [0,%d)", c.Target, fingering.NumInstruments())
	}
	return nil
}

func invalid(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fault.Wrap(fault.New(msg), ftag.With(KindInvalid))
	}
	return fault.Wrap(cause, fmsg.With(msg), ftag.With(KindInvalid))
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "saxguide"), nil
}

// LogPath returns the full path to debug.log
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
