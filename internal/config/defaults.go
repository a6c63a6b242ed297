package config

import "time"

const (
	DefaultAppTitle       = "SCINI"
	DefaultHomeRoute      = "camera"
	DefaultWideMinColumns = 100
)

// GetDefaultConfig returns the configuration used when no files override it.
func GetDefaultConfig() SciniConfig {
	return SciniConfig{
		App: AppSettings{
			Title:     DefaultAppTitle,
			HomeRoute: DefaultHomeRoute,
		},
		Layout: LayoutSettings{
			WideMinColumns: DefaultWideMinColumns,
		},
		Snackbar: SnackbarSettings{
			Duration: 3 * time.Second,
		},
		Network: NetworkSettings{
			PollInterval: 5 * time.Second,
		},
		MQTT: MQTTSettings{
			Enabled:        true,
			BrokerURL:      "ws://localhost:9001",
			ClientIDPrefix: "scini-shell",
			Topics:         []string{"telemetry/#", "clump/#", "rov/#"},
			QoS:            0,
			KeepAlive:      30 * time.Second,
			ConnectTimeout: 10 * time.Second,
		},
	}
}
