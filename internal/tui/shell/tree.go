package shell

// Link is one drawer entry.
type Link struct {
	Label    string
	Href     string
	Route    string
	Selected bool
}

// PageSlot is one content container in the main region.
type PageSlot struct {
	Route  string
	Active bool
}

// Header is the top bar.
type Header struct {
	Title string
	// MenuHidden drops the menu button while the drawer is pinned.
	MenuHidden bool
	// BackHref leads to the last list page visited.
	BackHref string
}

// Snackbar is the connectivity banner.
type Snackbar struct {
	Active bool
	Lines  []string
}

// Tree is the rendered shell. It is a plain value; turning it into terminal
// output is the view's job.
type Tree struct {
	// Resolved is false until the first render hook ran.
	Resolved bool
	Wide     bool

	// Route is the current route and Active the route key of the container
	// showing it. They differ only when the fallback is active.
	Route  string
	Active string

	Header   Header
	Drawer   Drawer
	Pages    []PageSlot
	Footer   string
	Snackbar Snackbar
}

// Drawer is the navigation drawer.
type Drawer struct {
	Opened bool
	Links  []Link
}

// ActiveCount returns how many page slots are active.
func (t Tree) ActiveCount() int {
	n := 0
	for _, p := range t.Pages {
		if p.Active {
			n++
		}
	}
	return n
}
