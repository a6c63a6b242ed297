package app

import (
	"context"
	"fmt"
	"os"

	"scini/internal/config"
	"scini/pkg/logging"
)

// Application is the main application structure that bootstraps and runs scini
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration and initializes the services.
// Background services live until ctx is done or Run returns.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(cfg.LogLevel(), os.Stdout)

	sciniCfg, err := loadShellConfig(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load scini configuration")
		return nil, fmt.Errorf("failed to load scini configuration: %w", err)
	}
	cfg.Scini = &sciniCfg

	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func loadShellConfig(cfg *Config) (config.SciniConfig, error) {
	if cfg.ConfigFree {
		logging.Info("Bootstrap", "Running config-free with built-in defaults")
		return config.GetDefaultConfig(), nil
	}
	sciniCfg, err := config.LoadConfig()
	if err != nil {
		return config.SciniConfig{}, err
	}
	logging.Info("Bootstrap", "Loaded configuration using layered approach")
	return sciniCfg, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	defer a.services.Shutdown()
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}
