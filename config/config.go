// SPDX-License-Identifier: MIT
// Package: cauldron/config
//
// config.go — Settings, defaults, YAML decoding and environment overrides.
//
// Error policy:
//   • Every validation failure wraps ErrInvalidSettings; callers use errors.Is.
//   • A missing file is not an error for Load: defaults (plus env) apply.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cauldron/strategy"
)

// Environment variable names read by ApplyEnv.
const (
	EnvMaxAttempts = "CAULDRON_MAX_ATTEMPTS"
	EnvSeed        = "CAULDRON_SEED"
	EnvLogLevel    = "CAULDRON_LOG_LEVEL"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// ErrInvalidSettings indicates a setting with a meaningless value.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings is the file/env view of strategy configuration.
type Settings struct {
	// MaxAttempts is the Sieve attempt bound; ≥ 1.
	MaxAttempts int `yaml:"max_attempts"`
	// Seed makes every strategy built from Options share one deterministic
	// stream. nil means process randomness.
	Seed *int64 `yaml:"seed,omitempty"`
	// LogLevel is a zap level name (debug, info, warn, error, ...).
	LogLevel string `yaml:"log_level"`
	// Metrics enables Prometheus collectors in Options.
	Metrics bool `yaml:"metrics"`
}

// Default returns the documented defaults.
func Default() *Settings {
	return &Settings{
		MaxAttempts: strategy.DefaultMaxAttempts,
		LogLevel:    DefaultLogLevel,
	}
}

// Parse decodes a single YAML document on top of the defaults and validates
// the result. Empty input yields the defaults.
func Parse(data []byte) (*Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err := dec.Decode(s); {
	case errors.Is(err, io.EOF):
		// empty document: defaults
	case err != nil:
		return nil, fmt.Errorf("config: parse: %w: %w", ErrInvalidSettings, err)
	default:
		var extra interface{}
		if err = dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse: multiple YAML documents: %w", ErrInvalidSettings)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Load reads path, applies process environment overrides and validates.
// A missing file yields the defaults with overrides applied.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err = s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return s, nil
}

// ApplyEnv overrides fields from CAULDRON_* variables found through lookup
// (os.LookupEnv in production) and re-validates.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvMaxAttempts, v, ErrInvalidSettings)
		}
		s.MaxAttempts = n
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, ErrInvalidSettings)
		}
		s.Seed = &seed
	}
	if v, ok := lookup(EnvLogLevel); ok {
		s.LogLevel = v
	}

	return s.Validate()
}

// Validate checks every field.
func (s *Settings) Validate() error {
	if s.MaxAttempts < 1 {
		return fmt.Errorf("config: max_attempts must be ≥ 1, got %d: %w", s.MaxAttempts, ErrInvalidSettings)
	}
	if _, err := s.level(); err != nil {
		return err
	}

	return nil
}

// level parses LogLevel; empty means DefaultLogLevel.
func (s *Settings) level() (zapcore.Level, error) {
	name := s.LogLevel
	if name == "" {
		name = DefaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return lvl, fmt.Errorf("config: log_level %q: %w", s.LogLevel, ErrInvalidSettings)
	}

	return lvl, nil
}
