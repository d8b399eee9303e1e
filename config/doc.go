// Package config resolves vizcore settings from layered sources with koanf:
// built-in defaults, an optional YAML or JSON file, VIZCORE_* environment
// variables and finally command line flags. A flag only overrides earlier
// layers when it was set explicitly.
//
// File keys are lower-cased on load, so "Log: {Level: debug}" and
// "log: {level: debug}" are equivalent. Environment variables only override
// keys that already exist: VIZCORE_GRAPH_WEIGHT sets graph.weight while an
// unknown VIZCORE_FOO is ignored.
//
// NewLogger turns the log.* settings into a zap logger.
package config
