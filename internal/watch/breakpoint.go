package watch

import "sync"

// Breakpoint reports whether the terminal is at least MinColumns wide,
// the terminal counterpart of a min-width media query.
type Breakpoint struct {
	MinColumns int

	mu        sync.Mutex
	installed bool
	known     bool
	matches   bool
	reported  bool
	callback  func(matches bool)
}

// NewBreakpoint creates a watcher for widths of at least minColumns.
func NewBreakpoint(minColumns int) *Breakpoint {
	return &Breakpoint{MinColumns: minColumns}
}

// Install registers callback. If a width was already observed it is
// reported immediately.
func (b *Breakpoint) Install(callback func(matches bool)) error {
	b.mu.Lock()
	if b.installed {
		b.mu.Unlock()
		return ErrAlreadyInstalled
	}
	b.installed = true
	b.callback = callback
	report := b.known
	matches := b.matches
	if report {
		b.reported = true
	}
	b.mu.Unlock()

	if report && callback != nil {
		callback(matches)
	}
	return nil
}

// Observe records a terminal width. Non-positive widths are ignored.
func (b *Breakpoint) Observe(width int) {
	if width <= 0 {
		return
	}
	matches := width >= b.MinColumns

	b.mu.Lock()
	b.known = true
	if b.reported && matches == b.matches {
		b.mu.Unlock()
		return
	}
	b.matches = matches
	cb := b.callback
	if cb != nil {
		b.reported = true
	}
	b.mu.Unlock()

	if cb != nil {
		cb(matches)
	}
}

// Matches returns the last observed value.
func (b *Breakpoint) Matches() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.matches
}
