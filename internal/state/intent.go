package state

// Intent is a request to change State. Implementations are plain values and
// are consumed exactly once by Reduce.
type Intent interface {
	// Kind names the intent for logging and metrics.
	Kind() string
}

// Navigate moves to the page named by Location ("/path?query").
type Navigate struct {
	Location string
}

// UpdateLocationURL navigates to URL on behalf of the application itself,
// e.g. after a voice command; the router records it in its history.
type UpdateLocationURL struct {
	URL string
}

// SetOffline records the network connectivity observed by the watcher.
type SetOffline struct {
	Offline bool
}

// SetLayout records whether the wide-layout breakpoint matches.
type SetLayout struct {
	Wide bool
}

// SetDrawer opens or closes the navigation drawer.
type SetDrawer struct {
	Opened bool
}

// ShowSnackbar opens the connectivity banner.
type ShowSnackbar struct{}

// CloseSnackbar closes the connectivity banner.
type CloseSnackbar struct{}

// UpdateCameraMap replaces the camera configuration map.
type UpdateCameraMap struct {
	Map CameraMap
}

func (Navigate) Kind() string          { return "navigate" }
func (UpdateLocationURL) Kind() string { return "update-location-url" }
func (SetOffline) Kind() string        { return "set-offline" }
func (SetLayout) Kind() string         { return "set-layout" }
func (SetDrawer) Kind() string         { return "set-drawer" }
func (ShowSnackbar) Kind() string      { return "show-snackbar" }
func (CloseSnackbar) Kind() string     { return "close-snackbar" }
func (UpdateCameraMap) Kind() string   { return "update-camera-map" }
