package state

// Reduce returns the state that results from applying intent to s.
// It never mutates s and has no side effects.
func Reduce(s State, intent Intent) State {
	next := s

	switch in := intent.(type) {
	case Navigate:
		next = navigate(next, in.Location)

	case UpdateLocationURL:
		next = navigate(next, in.URL)

	case SetOffline:
		// The banner only appears when connectivity actually flips.
		if in.Offline != s.Offline {
			next.SnackbarOpened = true
		}
		next.Offline = in.Offline

	case SetLayout:
		next.WideLayout = in.Wide

	case SetDrawer:
		next.DrawerOpened = in.Opened

	case ShowSnackbar:
		next.SnackbarOpened = true

	case CloseSnackbar:
		next.SnackbarOpened = false

	case UpdateCameraMap:
		next.CameraMap = in.Map.Clone()
	}

	return next
}

func navigate(s State, location string) State {
	parsed := ParseLocation(location)

	s.Page = parsed.Page
	s.Location = location
	if s.Location == "" {
		s.Location = "/"
	}
	s.Query = parsed.Query.Get("q")
	if IsKnownRoute(parsed.Page) {
		s.LastVisitedListPage = parsed.Page
	}
	// Close the drawer in case the navigation came from one of its links.
	s.DrawerOpened = false
	return s
}
