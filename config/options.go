// SPDX-License-Identifier: MIT
// Package: cauldron/config

package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/cauldron/strategy"
)

// Logger builds a zap production logger at the configured level.
func (s *Settings) Logger() (*zap.Logger, error) {
	lvl, err := s.level()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger, nil
}

// Options translates s into strategy options: attempt bound, logger, a single
// shared seeded Source when Seed is set, and collectors registered on reg when
// Metrics is enabled (a nil reg leaves them unregistered).
//
// Call Options once per registry: registering the collectors twice on the same
// reg panics.
func (s *Settings) Options(reg prometheus.Registerer) ([]strategy.Option, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger, err := s.Logger()
	if err != nil {
		return nil, err
	}

	opts := []strategy.Option{
		strategy.WithMaxAttempts(s.MaxAttempts),
		strategy.WithLogger(logger),
	}
	if s.Seed != nil {
		opts = append(opts, strategy.WithSource(strategy.NewSource(*s.Seed)))
	}
	if s.Metrics {
		opts = append(opts, strategy.WithMetrics(strategy.NewMetrics(reg)))
	}

	return opts, nil
}
