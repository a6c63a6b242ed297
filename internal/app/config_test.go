package app

import (
	"testing"

	"scini/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		noTUI      bool
		debug      bool
		configFree bool
	}{
		{name: "full configuration", noTUI: true, debug: true, configFree: true},
		{name: "minimal configuration"},
		{name: "debug only", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.noTUI, tt.debug, tt.configFree, "1.2.3")

			assert.Equal(t, tt.noTUI, cfg.NoTUI)
			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, tt.configFree, cfg.ConfigFree)
			assert.Equal(t, "1.2.3", cfg.Version)
			assert.Nil(t, cfg.Scini, "shell configuration should be nil before loading")
		})
	}
}

func TestConfigLogLevel(t *testing.T) {
	assert.Equal(t, logging.LevelInfo, NewConfig(false, false, false, "").LogLevel())
	assert.Equal(t, logging.LevelDebug, NewConfig(false, true, false, "").LogLevel())

	cfg := NewConfig(false, false, false, "")
	cfg.Level = logging.LevelWarn
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel())

	cfg.Debug = true
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel(), "debug overrides the level")
}
