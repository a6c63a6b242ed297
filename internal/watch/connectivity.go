package watch

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"scini/pkg/logging"

	psnet "github.com/shirou/gopsutil/v3/net"
)

const connectivitySubsystem = "Connectivity"

// Probe reports whether the host currently has network connectivity.
type Probe func(ctx context.Context) (online bool, err error)

// InterfaceProbe considers the host online when at least one non-loopback
// interface is up and has an address.
func InterfaceProbe(ctx context.Context) (bool, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		if len(iface.Addrs) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Connectivity polls a Probe and reports offline transitions.
type Connectivity struct {
	probe    Probe
	interval time.Duration

	mu        sync.Mutex
	installed bool
	reported  bool
	offline   bool
	callback  func(offline bool)
}

// NewConnectivity creates a watcher polling probe every interval.
func NewConnectivity(probe Probe, interval time.Duration) *Connectivity {
	if probe == nil {
		probe = InterfaceProbe
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Connectivity{
		probe:    probe,
		interval: interval,
	}
}

// Install registers callback, reports the current value and starts polling
// until ctx is done.
func (c *Connectivity) Install(ctx context.Context, callback func(offline bool)) error {
	c.mu.Lock()
	if c.installed {
		c.mu.Unlock()
		return ErrAlreadyInstalled
	}
	c.installed = true
	c.callback = callback
	c.mu.Unlock()

	c.Check(ctx)

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Check(ctx)
			}
		}
	}()
	return nil
}

// Check runs the probe once and reports the result if it is the first value
// or differs from the last one. A failing probe keeps the last known value.
func (c *Connectivity) Check(ctx context.Context) {
	online, err := c.probe(ctx)

	c.mu.Lock()
	if err != nil {
		logging.Warn(connectivitySubsystem, "connectivity undetermined, keeping offline=%v: %v", c.offline, err)
		if c.reported {
			c.mu.Unlock()
			return
		}
		online = !c.offline
	}

	offline := !online
	if c.reported && offline == c.offline {
		c.mu.Unlock()
		return
	}
	c.reported = true
	c.offline = offline
	cb := c.callback
	c.mu.Unlock()

	if cb != nil {
		logging.Debug(connectivitySubsystem, "reporting offline=%v", offline)
		cb(offline)
	}
}

// Offline returns the last reported value.
func (c *Connectivity) Offline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offline
}
