package app

import (
	"errors"
	"fmt"
	"slices"
)

// Targets is the set of valid CLI targets, in the order they appear in the
// usage text. "all" expands to the four build steps in chain order.
var Targets = []string{"deps", "osg", "simbody", "opensim", "scone", "all"}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Target  string
	Rebuild bool

	Root          string // workspace root holding submodules/ and dependencies/
	ToolchainPath string // optional HCL override file
	Jobs          int    // parallelism passed to cmake --build
	DryRun        bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Target == "" {
		return nil, errors.New("target is a required argument and cannot be empty")
	}
	if !slices.Contains(Targets, cfg.Target) {
		return nil, fmt.Errorf("unknown target %q: must be one of %v", cfg.Target, Targets)
	}
	if cfg.Jobs < 1 {
		return nil, errors.New("jobs must be at least 1")
	}
	return &cfg, nil
}
