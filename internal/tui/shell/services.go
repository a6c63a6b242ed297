package shell

import (
	"scini/internal/mqttbridge"
	"scini/internal/state"
)

// Store is the slice of the state store the shell depends on.
type Store interface {
	State() state.State
	Subscribe(fn state.Subscriber) func()
	Dispatch(intent state.Intent) state.State
}

// Viewport scrolls the main content region.
type Viewport interface {
	ScrollToOrigin()
}

// Metadata publishes the page title and description.
type Metadata interface {
	Update(title, description string)
}

// Persistence reads persisted values.
type Persistence interface {
	Get(key string) (string, bool, error)
}

// Router is the navigation watcher. Install reports the current location and
// every later one; Push navigates to href.
type Router interface {
	Install(onLocation func(location string)) error
	Push(href string)
}

// ConnectivityWatcher reports whether the network is offline.
type ConnectivityWatcher interface {
	Install(onChange func(offline bool)) error
}

// BreakpointWatcher reports whether the wide layout breakpoint matches.
type BreakpointWatcher interface {
	Install(onChange func(matches bool)) error
}

// SpeechInput is the visible field echoing interim transcripts.
type SpeechInput interface {
	SetValue(text string)
}

// Messaging opens the worker endpoint and broadcast channel and performs the
// handshake between them.
type Messaging interface {
	NewWorker() mqttbridge.Port
	OpenChannel(name string) *mqttbridge.Channel
	Init(port mqttbridge.Port, ch *mqttbridge.Channel)
}

// Services are the collaborators injected into the shell. Any of them may be
// nil, in which case the matching side effect is skipped.
type Services struct {
	Viewport     Viewport
	Metadata     Metadata
	Persistence  Persistence
	Router       Router
	Connectivity ConnectivityWatcher
	Breakpoint   BreakpointWatcher
	Speech       SpeechInput
	Messaging    Messaging
}
