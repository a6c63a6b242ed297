package mqttbridge

import (
	"context"
	"sync"

	"scini/internal/config"
	"scini/pkg/logging"

	"github.com/google/uuid"
)

const bridgeSubsystem = "MQTTBridge"

// Bridge creates workers and channels and performs the initial handshake.
type Bridge struct {
	ctx  context.Context
	cfg  config.MQTTSettings
	hub  *Hub
	dial Dialer

	mu      sync.Mutex
	workers []*Worker
}

// NewBridge returns a bridge whose workers live until ctx is cancelled.
func NewBridge(ctx context.Context, cfg config.MQTTSettings, hub *Hub, dial Dialer) *Bridge {
	if dial == nil {
		dial = PahoDialer
	}
	return &Bridge{
		ctx:  ctx,
		cfg:  cfg,
		hub:  hub,
		dial: dial,
	}
}

// NewWorker starts a worker goroutine and returns its port.
func (b *Bridge) NewWorker() Port {
	w := NewWorker(b.hub, b.dial)
	b.mu.Lock()
	b.workers = append(b.workers, w)
	b.mu.Unlock()

	go w.Run(b.ctx)
	logging.Debug(bridgeSubsystem, "started worker %s", w.ID())
	return w
}

// OpenChannel returns the broadcast channel called name.
func (b *Bridge) OpenChannel(name string) *Channel {
	return b.hub.Channel(name)
}

// Init sends the broker configuration and topic subscriptions to the worker.
// It does not wait for the worker to act on them.
func (b *Bridge) Init(port Port, ch *Channel) {
	if !b.cfg.Enabled {
		logging.Info(bridgeSubsystem, "MQTT bridge disabled by configuration")
		return
	}

	broker := BrokerConfig{
		URL:            b.cfg.BrokerURL,
		ClientID:       clientID(b.cfg.ClientIDPrefix),
		Username:       b.cfg.Username,
		Password:       b.cfg.Password,
		KeepAlive:      b.cfg.KeepAlive,
		ConnectTimeout: b.cfg.ConnectTimeout,
	}
	port.Post(Command{Op: OpConfigure, Broker: &broker, Channel: ch.Name()})
	for _, topic := range b.cfg.Topics {
		port.Post(Command{Op: OpSubscribe, Topic: topic, QoS: b.cfg.QoS})
	}
	logging.Info(bridgeSubsystem, "handed %s and %d topic(s) to the worker", broker.URL, len(b.cfg.Topics))
}

// Wait blocks until every worker has stopped.
func (b *Bridge) Wait() {
	b.mu.Lock()
	workers := append([]*Worker(nil), b.workers...)
	b.mu.Unlock()
	for _, w := range workers {
		<-w.Done()
	}
}

// clientID appends a random suffix so several shells can share a broker.
func clientID(prefix string) string {
	if prefix == "" {
		prefix = "scini"
	}
	return prefix + "-" + uuid.NewString()[:8]
}
