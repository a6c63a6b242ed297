package app

import (
	"context"
	"fmt"

	"scini/internal/mqttbridge"
	"scini/internal/state"
	"scini/internal/storage"
	"scini/internal/watch"
	"scini/pkg/logging"
)

// Services holds everything the shell is wired to.
type Services struct {
	Store        *state.Store
	Storage      *storage.Local
	Hub          *mqttbridge.Hub
	Bridge       *mqttbridge.Bridge
	Connectivity *watch.Connectivity

	ctx    context.Context
	cancel context.CancelFunc
}

// InitializeServices opens the persisted storage and creates the store, the
// messaging bridge and the connectivity watcher. Background work started by
// the services stops on Shutdown or when ctx is done.
func InitializeServices(ctx context.Context, cfg *Config) (*Services, error) {
	if cfg.Scini == nil {
		return nil, fmt.Errorf("shell configuration not loaded")
	}

	path, err := cfg.Scini.StoragePath()
	if err != nil {
		return nil, err
	}
	local, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logging.Debug("Bootstrap", "Using storage file %s", local.Path())

	ctx, cancel := context.WithCancel(ctx)
	hub := mqttbridge.NewHub()

	return &Services{
		Store:        state.NewStore(state.Initial()),
		Storage:      local,
		Hub:          hub,
		Bridge:       mqttbridge.NewBridge(ctx, cfg.Scini.MQTT, hub, cfg.dial),
		Connectivity: watch.NewConnectivity(cfg.probe, cfg.Scini.Network.PollInterval),
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

// Context is cancelled on Shutdown.
func (s *Services) Context() context.Context {
	return s.ctx
}

// Shutdown stops the watchers and the workers and closes every channel.
func (s *Services) Shutdown() {
	s.cancel()
	s.Bridge.Wait()
	s.Hub.Close()
}
