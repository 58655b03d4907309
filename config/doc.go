// Package config loads cauldron settings from YAML files and environment
// variables and turns them into strategy options.
//
// Resolution order (later wins): Default() → YAML document → CAULDRON_* env.
//
//	max_attempts: 250     # CAULDRON_MAX_ATTEMPTS
//	seed: 42              # CAULDRON_SEED; omit for process randomness
//	log_level: debug      # CAULDRON_LOG_LEVEL; zap level names
//	metrics: true         # register Prometheus collectors in Options
//
// Unknown YAML keys are rejected so typos surface instead of silently
// falling back to defaults.
package config
