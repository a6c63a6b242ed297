package mqttbridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"scini/pkg/logging"

	"github.com/google/uuid"
)

const (
	workerSubsystem     = "MQTTWorker"
	workerCommandBuffer = 64
)

// ErrNotConfigured is reported when a command needs a broker connection
// before a configure command was processed.
var ErrNotConfigured = errors.New("worker has no broker configuration")

// Handlers are the callbacks a broker client invokes. They may run on any goroutine.
type Handlers struct {
	OnMessage        func(topic string, payload []byte)
	OnConnect        func()
	OnConnectionLost func(err error)
}

// BrokerClient is the part of an MQTT client the worker uses.
type BrokerClient interface {
	Subscribe(topic string, qos byte) error
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Disconnect()
}

// Dialer creates a client for cfg and starts connecting it in the background.
type Dialer func(cfg BrokerConfig, h Handlers) (BrokerClient, error)

// Worker owns one broker connection and processes commands sequentially.
type Worker struct {
	id       string
	hub      *Hub
	dial     Dialer
	commands chan Command
	done     chan struct{}

	// Fields below are only touched by the run goroutine.
	client BrokerClient
	topics map[string]byte

	mu        sync.Mutex
	channel   *Channel
	connected bool
}

// NewWorker creates a worker that posts to channels of hub and connects with dial.
// Call Run to start it.
func NewWorker(hub *Hub, dial Dialer) *Worker {
	return &Worker{
		id:       uuid.NewString(),
		hub:      hub,
		dial:     dial,
		commands: make(chan Command, workerCommandBuffer),
		done:     make(chan struct{}),
		topics:   make(map[string]byte),
	}
}

// ID identifies the worker endpoint.
func (w *Worker) ID() string {
	return w.id
}

// Post queues cmd. It returns false and drops the command when the queue is full.
func (w *Worker) Post(cmd Command) bool {
	select {
	case w.commands <- cmd:
		return true
	default:
		logging.Warn(workerSubsystem, "worker %s queue full, dropping %s command", w.id, cmd.Op)
		return false
	}
}

// Done is closed when Run returns.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Connected reports whether the broker connection is currently up.
func (w *Worker) Connected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connected
}

// Run processes commands until ctx is cancelled, then disconnects.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)
	defer func() {
		if w.client != nil {
			w.client.Disconnect()
			logging.Info(workerSubsystem, "worker %s disconnected", w.id)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-w.commands:
			if err := w.handle(cmd); err != nil {
				logging.Error(workerSubsystem, err, "worker %s failed to %s", w.id, cmd.Op)
			}
		}
	}
}

func (w *Worker) handle(cmd Command) error {
	switch cmd.Op {
	case OpConfigure:
		return w.configure(cmd)

	case OpSubscribe:
		if cmd.Topic == "" {
			return fmt.Errorf("subscribe command without topic")
		}
		w.topics[cmd.Topic] = cmd.QoS
		if w.client == nil || !w.Connected() {
			// Subscribed on the next connect.
			return nil
		}
		return w.client.Subscribe(cmd.Topic, cmd.QoS)

	case opResubscribe:
		if w.client == nil {
			return nil
		}
		var errs []error
		for topic, qos := range w.topics {
			if err := w.client.Subscribe(topic, qos); err != nil {
				errs = append(errs, fmt.Errorf("topic %s: %w", topic, err))
			}
		}
		return errors.Join(errs...)

	case OpPublish:
		if w.client == nil {
			return ErrNotConfigured
		}
		return w.client.Publish(cmd.Topic, cmd.QoS, cmd.Retained, cmd.Payload)

	default:
		return fmt.Errorf("unknown command %q", cmd.Op)
	}
}

func (w *Worker) configure(cmd Command) error {
	if cmd.Broker == nil {
		return fmt.Errorf("configure command without broker")
	}
	if cmd.Channel != "" {
		ch := w.hub.Channel(cmd.Channel)
		w.mu.Lock()
		w.channel = ch
		w.mu.Unlock()
	}
	if w.client != nil {
		w.client.Disconnect()
		w.client = nil
		w.setConnected(false)
	}

	client, err := w.dial(*cmd.Broker, Handlers{
		OnMessage: w.onMessage,
		OnConnect: w.onConnect,
		OnConnectionLost: func(err error) {
			w.setConnected(false)
			logging.Warn(workerSubsystem, "connection to %s lost: %v", cmd.Broker.URL, err)
			w.broadcast(Message{Type: MessageStatus, Connected: false, Err: err})
		},
	})
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", cmd.Broker.URL, err)
	}
	w.client = client
	logging.Info(workerSubsystem, "worker %s connecting to %s", w.id, cmd.Broker.URL)
	return nil
}

func (w *Worker) onConnect() {
	w.setConnected(true)
	logging.Info(workerSubsystem, "worker %s connected", w.id)
	w.broadcast(Message{Type: MessageStatus, Connected: true})
	w.Post(Command{Op: opResubscribe})
}

func (w *Worker) onMessage(topic string, payload []byte) {
	w.broadcast(Message{Type: MessageData, Topic: topic, Payload: payload})
}

func (w *Worker) setConnected(v bool) {
	w.mu.Lock()
	w.connected = v
	w.mu.Unlock()
}

// broadcast may run on a client goroutine, so it reads the channel under the lock.
func (w *Worker) broadcast(msg Message) {
	msg.Time = time.Now()
	w.mu.Lock()
	ch := w.channel
	w.mu.Unlock()
	if ch != nil {
		ch.Post(msg)
	}
}
