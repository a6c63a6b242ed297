package pages

import "scini/internal/state"

// Constructor builds a fresh container.
type Constructor func() Page

// Entry binds a route key to its container constructor.
type Entry struct {
	Route string
	Label string
	New   Constructor
}

// Table maps routes to containers and designates the fallback for routes
// it does not know.
type Table struct {
	entries  []Entry
	index    map[string]int
	fallback Entry
}

// NewTable builds a table from entries in display order.
func NewTable(fallback Entry, entries ...Entry) *Table {
	t := &Table{
		index:    make(map[string]int, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		if _, dup := t.index[e.Route]; dup || e.Route == fallback.Route {
			continue
		}
		t.index[e.Route] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// DefaultTable is the route surface of the shell.
func DefaultTable() *Table {
	return NewTable(
		Entry{Route: state.RouteNotFound, Label: "Not Found", New: NewNotFound},
		Entry{Route: state.RouteCamera, Label: "Camera", New: NewCamera},
		Entry{Route: state.RouteControls, Label: "Controls", New: NewControls},
		Entry{Route: state.RouteTelemetry, Label: "Telemetry", New: NewTelemetry},
		Entry{Route: state.RouteNumbers, Label: "Numbers", New: NewNumbers},
		Entry{Route: state.RouteFiles, Label: "Files", New: NewFiles},
		Entry{Route: state.RouteTroubleshooting, Label: "Troubleshooting", New: NewTroubleshooting},
		Entry{Route: state.RouteCameraGL, Label: "CameraGL", New: NewCameraGL},
		Entry{Route: state.RouteReplay, Label: "Replay", New: NewReplay},
		Entry{Route: state.RouteAbout, Label: "About", New: NewAbout},
	)
}

// Lookup returns the entry for route, if any.
func (t *Table) Lookup(route string) (Entry, bool) {
	i, ok := t.index[route]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Resolve returns the entry for route, or the fallback.
func (t *Table) Resolve(route string) Entry {
	if e, ok := t.Lookup(route); ok {
		return e
	}
	return t.fallback
}

// Entries returns the routed entries in display order, without the fallback.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Fallback returns the not-found entry.
func (t *Table) Fallback() Entry {
	return t.fallback
}

// Build instantiates one container per entry, fallback included.
func (t *Table) Build() map[string]Page {
	out := make(map[string]Page, len(t.entries)+1)
	for _, e := range t.entries {
		out[e.Route] = e.New()
	}
	out[t.fallback.Route] = t.fallback.New()
	return out
}
