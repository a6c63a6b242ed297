package app

import (
	"scini/internal/config"
	"scini/internal/mqttbridge"
	"scini/internal/watch"
	"scini/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool
	// Level is the log threshold when Debug is off.
	Level logging.LogLevel

	// ConfigFree skips the config files and runs on defaults.
	ConfigFree bool

	// Version is shown on the about page.
	Version string

	// Shell configuration, filled in by NewApplication
	Scini *config.SciniConfig

	// Overridden in tests.
	dial  mqttbridge.Dialer
	probe watch.Probe
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug, configFree bool, version string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigFree: configFree,
		Version:    version,
		Level:      logging.LevelInfo,
	}
}

// LogLevel returns the threshold to log at. Debug wins over Level.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return c.Level
}
