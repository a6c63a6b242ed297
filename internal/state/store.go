package state

import (
	"sync"
	"time"
)

// Subscriber is called with the new State after every transition.
type Subscriber func(State)

// Dispatcher is the write side of a Store.
type Dispatcher interface {
	Dispatch(intent Intent) State
}

// StoreMetrics tracks dispatch activity.
type StoreMetrics struct {
	Dispatched        int64
	DispatchedByKind  map[string]int64
	ActiveSubscribers int
	LastDispatch      time.Time
}

type subscription struct {
	id int64
	fn Subscriber
}

// Store owns the application State. All transitions go through Dispatch.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []subscription
	nextSubID   int64
	metrics     StoreMetrics

	// notifying is set while subscribers run; intents dispatched then are queued.
	notifying bool
	queue     []Intent
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	if initial.CameraMap == nil {
		initial.CameraMap = CameraMap{}
	}
	return &Store{
		state: initial,
		metrics: StoreMetrics{
			DispatchedByKind: make(map[string]int64),
		},
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every transition and returns a
// function that removes it. Calling the returned function twice is harmless.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.metrics.ActiveSubscribers = len(s.subscribers)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				break
			}
		}
		s.metrics.ActiveSubscribers = len(s.subscribers)
	}
}

// Dispatch reduces intent into the state and notifies subscribers.
// When called from inside a subscriber the intent is queued and the state
// returned is the one current at the time of the call.
func (s *Store) Dispatch(intent Intent) State {
	if intent == nil {
		return s.State()
	}

	s.mu.Lock()
	if s.notifying {
		s.queue = append(s.queue, intent)
		current := s.state
		s.mu.Unlock()
		return current
	}
	s.notifying = true
	s.queue = append(s.queue, intent)

	var result State
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		s.state = Reduce(s.state, next)
		s.metrics.Dispatched++
		s.metrics.DispatchedByKind[next.Kind()]++
		s.metrics.LastDispatch = time.Now()

		current := s.state
		subs := make([]subscription, len(s.subscribers))
		copy(subs, s.subscribers)

		s.mu.Unlock()
		for _, sub := range subs {
			sub.fn(current)
		}
		s.mu.Lock()
		result = s.state
	}
	s.notifying = false
	s.mu.Unlock()

	return result
}

// Metrics returns a copy of the store metrics.
func (s *Store) Metrics() StoreMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.metrics
	m.DispatchedByKind = make(map[string]int64, len(s.metrics.DispatchedByKind))
	for k, v := range s.metrics.DispatchedByKind {
		m.DispatchedByKind[k] = v
	}
	return m
}
