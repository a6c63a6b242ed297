package config

import (
	"time"
)

// SciniConfig is the top-level configuration structure for scini.
type SciniConfig struct {
	App      AppSettings      `yaml:"app"`
	Layout   LayoutSettings   `yaml:"layout"`
	Snackbar SnackbarSettings `yaml:"snackbar"`
	Network  NetworkSettings  `yaml:"network"`
	Storage  StorageSettings  `yaml:"storage"`
	MQTT     MQTTSettings     `yaml:"mqtt"`
}

// AppSettings holds identity settings of the shell.
type AppSettings struct {
	Title     string `yaml:"title,omitempty"`     // Shown in the header and window title, e.g. "SCINI"
	HomeRoute string `yaml:"homeRoute,omitempty"` // Route served for "/"
}

// LayoutSettings controls the wide-layout breakpoint.
type LayoutSettings struct {
	// WideMinColumns is the terminal width at which the layout becomes wide.
	WideMinColumns int `yaml:"wideMinColumns,omitempty"`
}

// SnackbarSettings controls the connectivity banner.
type SnackbarSettings struct {
	Duration time.Duration `yaml:"duration,omitempty"`
}

// NetworkSettings controls the connectivity watcher.
type NetworkSettings struct {
	PollInterval time.Duration `yaml:"pollInterval,omitempty"`
}

// StorageSettings locates the persisted key/value file.
type StorageSettings struct {
	Path string `yaml:"path,omitempty"` // Empty means ~/.config/scini/localstorage.yaml
}

// MQTTSettings configures the bridge worker's broker connection.
type MQTTSettings struct {
	Enabled        bool          `yaml:"enabled"`
	BrokerURL      string        `yaml:"brokerURL,omitempty"`      // tcp://, ssl:// or ws:// URL
	ClientIDPrefix string        `yaml:"clientIDPrefix,omitempty"` // A random suffix is appended
	Username       string        `yaml:"username,omitempty"`
	Password       string        `yaml:"password,omitempty"`
	Topics         []string      `yaml:"topics,omitempty"`
	QoS            byte          `yaml:"qos,omitempty"`
	KeepAlive      time.Duration `yaml:"keepAlive,omitempty"`
	ConnectTimeout time.Duration `yaml:"connectTimeout,omitempty"`

	// enabledSet records that a config file spelled out mqtt.enabled.
	enabledSet bool
}
