package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/scini"
	projectConfigDir = ".scini"
	configFileName   = "config.yaml"
	storageFileName  = "localstorage.yaml"
)

// LoadConfig loads the scini configuration by layering default, user, and project settings.
func LoadConfig() (SciniConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return SciniConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return SciniConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a SciniConfig from a YAML file.
func loadConfigFromFile(filePath string) (SciniConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SciniConfig{}, err
	}

	var config SciniConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SciniConfig{}, err
	}

	// mqtt.enabled defaults to true, so an omitted key must not turn the bridge off.
	var presence struct {
		MQTT struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"mqtt"`
	}
	if err := yaml.Unmarshal(data, &presence); err != nil {
		return SciniConfig{}, err
	}
	config.MQTT.enabledSet = presence.MQTT.Enabled != nil
	if !config.MQTT.enabledSet {
		config.MQTT.Enabled = true
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay SciniConfig) SciniConfig {
	merged := base

	if overlay.App.Title != "" {
		merged.App.Title = overlay.App.Title
	}
	if overlay.App.HomeRoute != "" {
		merged.App.HomeRoute = overlay.App.HomeRoute
	}
	if overlay.Layout.WideMinColumns > 0 {
		merged.Layout.WideMinColumns = overlay.Layout.WideMinColumns
	}
	if overlay.Snackbar.Duration > 0 {
		merged.Snackbar.Duration = overlay.Snackbar.Duration
	}
	if overlay.Network.PollInterval > 0 {
		merged.Network.PollInterval = overlay.Network.PollInterval
	}
	if overlay.Storage.Path != "" {
		merged.Storage.Path = overlay.Storage.Path
	}

	if overlay.MQTT.enabledSet {
		merged.MQTT.Enabled = overlay.MQTT.Enabled
		merged.MQTT.enabledSet = true
	}
	if overlay.MQTT.BrokerURL != "" {
		merged.MQTT.BrokerURL = overlay.MQTT.BrokerURL
	}
	if overlay.MQTT.ClientIDPrefix != "" {
		merged.MQTT.ClientIDPrefix = overlay.MQTT.ClientIDPrefix
	}
	if overlay.MQTT.Username != "" {
		merged.MQTT.Username = overlay.MQTT.Username
	}
	if overlay.MQTT.Password != "" {
		merged.MQTT.Password = overlay.MQTT.Password
	}
	if len(overlay.MQTT.Topics) > 0 {
		merged.MQTT.Topics = append([]string(nil), overlay.MQTT.Topics...)
	}
	if overlay.MQTT.QoS > 0 {
		merged.MQTT.QoS = overlay.MQTT.QoS
	}
	if overlay.MQTT.KeepAlive > 0 {
		merged.MQTT.KeepAlive = overlay.MQTT.KeepAlive
	}
	if overlay.MQTT.ConnectTimeout > 0 {
		merged.MQTT.ConnectTimeout = overlay.MQTT.ConnectTimeout
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// StoragePath resolves where persisted key/value data lives.
func (c SciniConfig) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	return filepath.Join(dir, storageFileName), nil
}
