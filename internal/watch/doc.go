// Package watch turns environment observations into callbacks.
//
// Each watcher is installed once with a callback. It reports its first
// observation and afterwards only changes. When an observation cannot be
// made, the watcher keeps the last value it reported.
package watch

import "errors"

// ErrAlreadyInstalled is returned when a watcher is installed a second time.
var ErrAlreadyInstalled = errors.New("watcher already installed")
