package controller

import (
	"scini/internal/watch"
)

// Router keeps the navigation history of the shell. It is the terminal
// stand-in for the browser location: Push and Back move through history and
// report the new location, Record appends a location that was reached some
// other way without reporting it.
type Router struct {
	history  []string
	index    int
	callback func(location string)
}

// NewRouter starts the history at location.
func NewRouter(location string) *Router {
	if location == "" {
		location = "/"
	}
	return &Router{history: []string{location}}
}

// Install registers the navigation callback and reports the current
// location. It can only be installed once.
func (r *Router) Install(onLocation func(location string)) error {
	if r.callback != nil {
		return watch.ErrAlreadyInstalled
	}
	r.callback = onLocation
	onLocation(r.Location())
	return nil
}

// Location returns the current location.
func (r *Router) Location() string {
	return r.history[r.index]
}

// Push navigates to href.
func (r *Router) Push(href string) {
	r.Record(href)
	r.notify()
}

// Record appends location to the history unless it is already current.
func (r *Router) Record(location string) {
	if location == "" || location == r.Location() {
		return
	}
	r.history = append(r.history[:r.index+1], location)
	r.index = len(r.history) - 1
}

// Back steps one entry back. It reports false at the start of history.
func (r *Router) Back() bool {
	if r.index == 0 {
		return false
	}
	r.index--
	r.notify()
	return true
}

// CanGoBack reports whether Back would move.
func (r *Router) CanGoBack() bool {
	return r.index > 0
}

func (r *Router) notify() {
	if r.callback != nil {
		r.callback(r.Location())
	}
}
