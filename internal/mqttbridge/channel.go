package mqttbridge

import (
	"sync"
)

const defaultSubscriberBuffer = 64

// ChannelMetrics tracks delivery on a Channel.
type ChannelMetrics struct {
	Posted      int64
	Delivered   int64
	Dropped     int64
	Subscribers int
}

// Channel fans messages out to every subscriber. Slow subscribers lose
// messages instead of slowing the poster down.
type Channel struct {
	name string

	mu      sync.RWMutex
	subs    map[int64]chan Message
	nextID  int64
	closed  bool
	metrics ChannelMetrics
}

func newChannel(name string) *Channel {
	return &Channel{
		name: name,
		subs: make(map[int64]chan Message),
	}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// Subscribe returns a receive channel and a cancel function. buffer <= 0
// selects a default size.
func (c *Channel) Subscribe(buffer int) (<-chan Message, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Message, buffer)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	c.nextID++
	id := c.nextID
	c.subs[id] = ch
	c.metrics.Subscribers = len(c.subs)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
				c.metrics.Subscribers = len(c.subs)
			}
		})
	}
}

// Post delivers msg to all current subscribers without blocking.
func (c *Channel) Post(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.metrics.Posted++
	for _, sub := range c.subs {
		select {
		case sub <- msg:
			c.metrics.Delivered++
		default:
			c.metrics.Dropped++
		}
	}
}

// Close closes every subscriber channel. Later posts are ignored.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, sub := range c.subs {
		close(sub)
		delete(c.subs, id)
	}
	c.metrics.Subscribers = 0
}

// Metrics returns a snapshot of the channel metrics.
func (c *Channel) Metrics() ChannelMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// Hub hands out Channels by name; the same name always yields the same Channel.
type Hub struct {
	mu       sync.Mutex
	channels map[string]*Channel
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{channels: make(map[string]*Channel)}
}

// Channel returns the channel called name, creating it on first use.
func (h *Hub) Channel(name string) *Channel {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.channels[name]; ok {
		return ch
	}
	ch := newChannel(name)
	h.channels[name] = ch
	return ch
}

// Close closes all channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.channels {
		ch.Close()
	}
}
