// Package shell is the controller behind the persistent chrome of the
// application: header, drawer, footer and connectivity banner around exactly
// one active page container.
//
// The shell keeps a snapshot of the store fields it renders, translates
// gestures into intents, and talks to the outside world only through the
// injected Services.
package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"scini/internal/state"
	"scini/internal/tui/pages"
	"scini/pkg/logging"
)

const subsystem = "Shell"

// CameraMapKey is the persisted key holding the JSON camera map.
const CameraMapKey = "cameraMap"

// ChannelName is the broadcast channel shared with the messaging worker.
const ChannelName = "swCh"

// ErrCameraMapMalformed is returned by New when the persisted camera map is
// not a JSON object of objects.
var ErrCameraMapMalformed = errors.New("persisted camera map is malformed")

// Options configure a Shell.
type Options struct {
	AppTitle  string
	HomeRoute string
	Pages     *pages.Table
}

// snapshot is the subset of state the shell renders.
type snapshot struct {
	page                string
	lastVisitedListPage string
	offline             bool
	wideLayout          bool
	drawerOpened        bool
	snackbarOpened      bool
}

// Shell is the shell controller. Render and Flush must run on the UI thread.
type Shell struct {
	store Store
	svc   Services
	opts  Options

	containers map[string]pages.Page

	mu    sync.Mutex
	snap  snapshot
	dirty bool

	unsubscribe func()

	firstRendered bool
	resolved      bool
	renderedRoute string
	hasRendered   bool
}

// New builds the shell, subscribes it to store, performs the messaging
// handshake and seeds the camera map from persistence.
func New(store Store, svc Services, opts Options) (*Shell, error) {
	if opts.AppTitle == "" {
		opts.AppTitle = "SCINI"
	}
	if opts.HomeRoute == "" {
		opts.HomeRoute = state.RouteHome
	}
	if opts.Pages == nil {
		opts.Pages = pages.DefaultTable()
	}
	if _, ok := opts.Pages.Lookup(opts.HomeRoute); !ok {
		logging.Warn(subsystem, "home route %q is not a page, using %q", opts.HomeRoute, state.RouteHome)
		opts.HomeRoute = state.RouteHome
	}

	s := &Shell{
		store:      store,
		svc:        svc,
		opts:       opts,
		containers: opts.Pages.Build(),
		dirty:      true,
	}
	s.unsubscribe = store.Subscribe(s.OnStateChanged)
	s.OnStateChanged(store.State())

	if svc.Messaging != nil {
		port := svc.Messaging.NewWorker()
		ch := svc.Messaging.OpenChannel(ChannelName)
		svc.Messaging.Init(port, ch)
	}

	if err := s.loadCameraMap(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close detaches the shell from the store.
func (s *Shell) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *Shell) loadCameraMap() error {
	if s.svc.Persistence == nil {
		return nil
	}
	raw, ok, err := s.svc.Persistence.Get(CameraMapKey)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", CameraMapKey, err)
	}
	if !ok {
		return nil
	}

	m, err := ParseCameraMap(raw)
	if err != nil {
		return err
	}
	logging.Debug(subsystem, "seeding %d camera(s) from persistence", len(m))
	s.store.Dispatch(state.UpdateCameraMap{Map: m})
	return nil
}

// ParseCameraMap decodes a persisted camera map. Anything but a JSON object of
// objects wraps ErrCameraMapMalformed.
func ParseCameraMap(raw string) (state.CameraMap, error) {
	var m state.CameraMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCameraMapMalformed, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: null", ErrCameraMapMalformed)
	}
	return m, nil
}

// OnStateChanged copies the rendered fields out of st. It only marks the
// shell dirty when one of them changed.
func (s *Shell) OnStateChanged(st state.State) {
	next := snapshot{
		page:                st.Page,
		lastVisitedListPage: st.LastVisitedListPage,
		offline:             st.Offline,
		wideLayout:          st.WideLayout,
		drawerOpened:        st.DrawerOpened,
		snackbarOpened:      st.SnackbarOpened,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if next == s.snap {
		return
	}
	s.snap = next
	s.dirty = true
}

// Dirty reports whether a state change has not been flushed yet.
func (s *Shell) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Render builds the tree for the current snapshot. It has no side effects.
func (s *Shell) Render() Tree {
	s.mu.Lock()
	snap := s.snap
	s.mu.Unlock()

	route := snap.page
	if route == "" {
		route = s.opts.HomeRoute
	}
	lastVisited := snap.lastVisitedListPage
	if lastVisited == "" {
		lastVisited = s.opts.HomeRoute
	}
	active := s.opts.Pages.Resolve(route).Route

	tree := Tree{
		Resolved: s.resolved,
		Wide:     snap.wideLayout,
		Route:    route,
		Active:   active,
		Header: Header{
			Title:      s.opts.AppTitle,
			MenuHidden: snap.wideLayout,
			BackHref:   "/" + lastVisited,
		},
		Drawer: Drawer{Opened: snap.drawerOpened},
		Footer: pages.Credits,
		Snackbar: Snackbar{
			Active: snap.snackbarOpened,
			Lines:  snackbarLines(snap.offline),
		},
	}

	tree.Drawer.Links = append(tree.Drawer.Links, Link{
		Label:    "Home",
		Href:     "/" + s.opts.HomeRoute,
		Route:    s.opts.HomeRoute,
		Selected: route == s.opts.HomeRoute,
	})
	for _, e := range s.opts.Pages.Entries() {
		tree.Drawer.Links = append(tree.Drawer.Links, Link{
			Label:    e.Label,
			Href:     "/" + e.Route,
			Route:    e.Route,
			Selected: route == e.Route,
		})
		tree.Pages = append(tree.Pages, PageSlot{Route: e.Route, Active: e.Route == active})
	}
	fallback := s.opts.Pages.Fallback().Route
	tree.Pages = append(tree.Pages, PageSlot{Route: fallback, Active: fallback == active})
	return tree
}

func snackbarLines(offline bool) []string {
	status := "online"
	if offline {
		status = "offline"
	}
	return []string{
		"Network: " + status + ".",
		"SCINI ROV: " + status,
		"Clump: " + status,
	}
}

// Flush renders and runs the post-render hooks: the first-render hook once,
// then the route hook when the route differs from the previous render.
func (s *Shell) Flush() Tree {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	tree := s.Render()
	for route, p := range s.containers {
		p.SetActive(route == tree.Active)
	}

	if !s.firstRendered {
		s.firstRendered = true
		s.OnFirstRender()
		tree.Resolved = s.resolved
	}

	if !s.hasRendered || tree.Route != s.renderedRoute {
		s.hasRendered = true
		s.renderedRoute = tree.Route
		s.onRouteChanged(tree.Route)
	}
	return tree
}

func (s *Shell) onRouteChanged(route string) {
	if s.svc.Viewport != nil {
		s.svc.Viewport.ScrollToOrigin()
	}
	if s.svc.Metadata != nil {
		title := fmt.Sprintf("%s - %s", s.opts.AppTitle, route)
		s.svc.Metadata.Update(title, title)
	}
	logging.Debug(subsystem, "route changed to %s", route)
}

// OnFirstRender installs the navigation, connectivity and breakpoint
// watchers and marks the shell resolved. Only the first call has an effect.
func (s *Shell) OnFirstRender() {
	if s.resolved {
		return
	}
	s.resolved = true
	s.firstRendered = true

	if s.svc.Router != nil {
		if err := s.svc.Router.Install(func(location string) {
			s.store.Dispatch(state.Navigate{Location: location})
		}); err != nil {
			logging.Warn(subsystem, "navigation watcher not installed: %v", err)
		}
	}
	if s.svc.Connectivity != nil {
		if err := s.svc.Connectivity.Install(func(offline bool) {
			s.store.Dispatch(state.SetOffline{Offline: offline})
		}); err != nil {
			logging.Warn(subsystem, "connectivity watcher not installed: %v", err)
		}
	}
	if s.svc.Breakpoint != nil {
		if err := s.svc.Breakpoint.Install(func(matches bool) {
			s.store.Dispatch(state.SetLayout{Wide: matches})
		}); err != nil {
			logging.Warn(subsystem, "breakpoint watcher not installed: %v", err)
		}
	}

	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// OnSpeechResult echoes transcript and, once it is final, navigates to the
// controls page with the transcript as the q parameter.
func (s *Shell) OnSpeechResult(transcript string, isFinal bool) {
	if s.svc.Speech != nil {
		s.svc.Speech.SetValue(transcript)
	}
	if !isFinal {
		return
	}
	s.store.Dispatch(state.UpdateLocationURL{URL: state.ControlsURL(transcript)})
}

// OnMenuClick opens the drawer.
func (s *Shell) OnMenuClick() {
	s.store.Dispatch(state.SetDrawer{Opened: true})
}

// OnDrawerLinkClick closes the drawer and navigates to href.
func (s *Shell) OnDrawerLinkClick(href string) {
	s.store.Dispatch(state.SetDrawer{Opened: false})
	if s.svc.Router != nil {
		s.svc.Router.Push(href)
	}
}

// OnDrawerOpenedChanged mirrors the drawer's own opened signal.
func (s *Shell) OnDrawerOpenedChanged(opened bool) {
	s.store.Dispatch(state.SetDrawer{Opened: opened})
}

// Page returns the container for route, or nil.
func (s *Shell) Page(route string) pages.Page {
	return s.containers[route]
}

// ActivePage returns the container marked active by the last Flush.
func (s *Shell) ActivePage() pages.Page {
	for _, p := range s.containers {
		if p.Active() {
			return p
		}
	}
	return nil
}

// AppTitle returns the configured application title.
func (s *Shell) AppTitle() string {
	return s.opts.AppTitle
}
