// Package pages holds the per-route content containers of the shell.
//
// A container never reads application state on its own. Everything it shows
// arrives through the Context passed to View, and View is only called while
// the container is active.
package pages

import (
	"time"

	"scini/internal/state"
)

// Sample is one message seen on the vehicle bus.
type Sample struct {
	Topic string
	Value string
	Time  time.Time
}

// Context is the data a container may render.
type Context struct {
	Width  int
	Height int

	AppTitle string
	Version  string

	// Route is the route that was requested, which differs from the
	// container's own route only for the fallback container.
	Route string
	Query string

	Offline      bool
	BusConnected bool

	CameraMap   state.CameraMap
	Telemetry   []Sample
	Latest      map[string]Sample
	ActivityLog []string
	StorageKeys []string
	StoragePath string

	// Counters shown on the troubleshooting page.
	Dispatched  int64
	BusDropped  int64
	LogsDropped int64
}

// Page is a content container for exactly one route.
type Page interface {
	Route() string
	Title() string
	Active() bool
	SetActive(active bool)
	View(ctx Context) string
}

// base carries the route identity and the active input shared by all containers.
type base struct {
	route  string
	title  string
	active bool
}

func (b *base) Route() string         { return b.route }
func (b *base) Title() string         { return b.title }
func (b *base) Active() bool          { return b.active }
func (b *base) SetActive(active bool) { b.active = active }
