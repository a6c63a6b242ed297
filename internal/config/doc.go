// Package config provides configuration management for scini.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/scini/config.yaml)
//  3. Project configuration (./.scini/config.yaml)
//
// # Configuration Structure
//
//	app:
//	  title: "SCINI"
//	  homeRoute: "camera"
//	layout:
//	  wideMinColumns: 100
//	snackbar:
//	  duration: 3s
//	network:
//	  pollInterval: 5s
//	storage:
//	  path: "/var/lib/scini/localstorage.yaml"
//	mqtt:
//	  enabled: true
//	  brokerURL: "ws://rov.local:9001"
//	  clientIDPrefix: "scini-shell"
//	  topics: ["telemetry/#", "clump/#"]
//	  qos: 0
//
// Omitted scalar fields keep the value of the previous layer. A topics list in
// a later layer replaces the earlier list rather than appending to it.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		return err
//	}
//	path, err := cfg.StoragePath()
package config
