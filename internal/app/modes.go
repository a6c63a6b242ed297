package app

import (
	"context"
	"os/signal"
	"syscall"

	"scini/internal/mqttbridge"
	"scini/internal/state"
	"scini/internal/tui/controller"
	"scini/internal/tui/design"
	"scini/internal/tui/shell"
	"scini/internal/watch"
	"scini/pkg/logging"
)

const monitorBusBuffer = 64

// runCLIMode runs the shell without a screen and logs what it observes:
// connectivity changes and every message from the vehicle bus.
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus, cancelBus := services.Bridge.OpenChannel(shell.ChannelName).Subscribe(monitorBusBuffer)
	defer cancelBus()

	unsubscribe := services.Store.Subscribe(networkLogger())
	defer unsubscribe()

	sh, err := shell.New(services.Store, shell.Services{
		Persistence:  services.Storage,
		Connectivity: connectivityWatcher{ctx: ctx, watcher: services.Connectivity},
		Messaging:    services.Bridge,
	}, shell.Options{
		AppTitle:  config.Scini.App.Title,
		HomeRoute: config.Scini.App.HomeRoute,
	})
	if err != nil {
		logging.Error("CLI", err, "Failed to start the shell")
		return err
	}
	defer sh.Close()

	// The first flush installs the watchers.
	sh.Flush()

	logging.Info("CLI", "Monitoring %s. Press Ctrl+C to exit.", sh.AppTitle())
	for {
		select {
		case <-ctx.Done():
			logging.Info("CLI", "--- Shutting down ---")
			return nil
		case msg, ok := <-bus:
			if !ok {
				return nil
			}
			logBusMessage(msg)
		}
	}
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	p, m, err := controller.NewProgram(controller.Options{
		Context:      services.Context(),
		Config:       *config.Scini,
		Version:      config.Version,
		Store:        services.Store,
		Storage:      services.Storage,
		Messaging:    services.Bridge,
		Connectivity: services.Connectivity,
		LogChannel:   logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}
	defer m.Close()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

// connectivityWatcher binds the polling watcher to the run context.
type connectivityWatcher struct {
	ctx     context.Context
	watcher *watch.Connectivity
}

func (c connectivityWatcher) Install(onChange func(offline bool)) error {
	return c.watcher.Install(c.ctx, onChange)
}

func networkLogger() state.Subscriber {
	reported := false
	var offline bool
	return func(st state.State) {
		if reported && st.Offline == offline {
			return
		}
		reported = true
		offline = st.Offline
		if offline {
			logging.Warn("CLI", "Network: offline")
			return
		}
		logging.Info("CLI", "Network: online")
	}
}

func logBusMessage(msg mqttbridge.Message) {
	switch msg.Type {
	case mqttbridge.MessageStatus:
		if msg.Connected {
			logging.Info("Bus", "Connected to broker")
			return
		}
		logging.Warn("Bus", "Disconnected from broker: %v", msg.Err)
	default:
		logging.Info("Bus", "%s %s", msg.Topic, msg.Payload)
	}
}
