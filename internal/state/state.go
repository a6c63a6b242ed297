package state

// Route keys of the pages the shell can show.
const (
	RouteCamera          = "camera"
	RouteControls        = "controls"
	RouteTelemetry       = "telemetry"
	RouteNumbers         = "numbers"
	RouteFiles           = "files"
	RouteTroubleshooting = "troubleshooting"
	RouteCameraGL        = "cameragl"
	RouteReplay          = "replay"
	RouteAbout           = "about"

	// RouteNotFound is the fallback page for unmatched routes.
	RouteNotFound = "404"

	// RouteHome is where "/" leads.
	RouteHome = RouteCamera
)

// Routes lists every page route in drawer order. RouteNotFound is not part of it.
var Routes = []string{
	RouteCamera,
	RouteControls,
	RouteTelemetry,
	RouteNumbers,
	RouteFiles,
	RouteTroubleshooting,
	RouteCameraGL,
	RouteReplay,
	RouteAbout,
}

// IsKnownRoute reports whether route names a page other than the fallback.
func IsKnownRoute(route string) bool {
	for _, r := range Routes {
		if r == route {
			return true
		}
	}
	return false
}

// CameraConfig is the per-camera configuration object persisted as JSON.
type CameraConfig map[string]any

// CameraMap maps a camera id to its configuration.
type CameraMap map[string]CameraConfig

// Clone returns a deep copy so reducers never share maps with callers.
func (m CameraMap) Clone() CameraMap {
	if m == nil {
		return CameraMap{}
	}
	out := make(CameraMap, len(m))
	for id, cfg := range m {
		c := make(CameraConfig, len(cfg))
		for k, v := range cfg {
			c[k] = cloneValue(v)
		}
		out[id] = c
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	default:
		return v
	}
}

// State is the whole application state. Values are replaced, never mutated in place.
type State struct {
	Page                string
	LastVisitedListPage string
	Location            string
	Query               string
	Offline             bool
	WideLayout          bool
	DrawerOpened        bool
	SnackbarOpened      bool
	CameraMap           CameraMap
}

// Initial returns the state the application starts with.
func Initial() State {
	return State{
		Page:                RouteHome,
		LastVisitedListPage: RouteHome,
		Location:            "/",
		CameraMap:           CameraMap{},
	}
}
