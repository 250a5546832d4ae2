// Package config defines the configuration structures for the cast CLI.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"

	"github.com/pxuan19/CAST/internal/infrastructure/monitoring/logging"
)

// EngineConfig holds defaults for the uncertainty computation itself.  Every
// field can be overridden per invocation by a CLI flag.
type EngineConfig struct {
	// Workers is the default size of the fixed worker pool for the parallel
	// distance strategy; 0 or 1 selects the sequential strategy.
	Workers int `mapstructure:"workers"`

	// Rescale selects the alternate [0,1] min-max output mode by default.
	Rescale bool `mapstructure:"rescale"`
}

// MetricsConfig controls the prometheus collector.
type MetricsConfig struct {
	// Enabled registers the uncertainty collector with the default
	// prometheus registry.
	Enabled bool `mapstructure:"enabled"`
}

// Config is the root configuration object.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log"`
	Engine  EngineConfig      `mapstructure:"engine"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// validLogLevels and validLogFormats enumerate the accepted enum values.
var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "console": true}
)

// Validate checks the configuration for contradictions.  It assumes
// ApplyDefaults has already run, so empty enum fields are not tolerated.
func (c *Config) Validate() error {
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("config: log.level %q is not one of debug|info|warn|error", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("config: log.format %q is not one of json|console", c.Log.Format)
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("config: engine.workers must not be negative, got %d", c.Engine.Workers)
	}
	return nil
}
