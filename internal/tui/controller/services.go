package controller

import (
	"context"

	"scini/internal/watch"
	"scini/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// contentScroller scrolls the page viewport.
type contentScroller struct{ m *Model }

func (s contentScroller) ScrollToOrigin() {
	s.m.content.GotoTop()
}

// windowTitle queues the title for the next tea.SetWindowTitle. A terminal
// has no place for the description.
type windowTitle struct{ m *Model }

func (w windowTitle) Update(title, _ string) {
	w.m.pendingTitle = title
}

// transcriptEcho shows speech results in the transcript input.
type transcriptEcho struct{ m *Model }

func (t transcriptEcho) SetValue(text string) {
	if t.m.transcript.Value() != text {
		t.m.transcript.SetValue(text)
	}
}

// uiConnectivity moves connectivity reports from the polling goroutine onto
// the UI thread.
type uiConnectivity struct {
	ctx     context.Context
	watcher *watch.Connectivity
	out     chan tea.Msg
}

func (c uiConnectivity) Install(onChange func(offline bool)) error {
	return c.watcher.Install(c.ctx, func(offline bool) {
		select {
		case c.out <- watcherMsg{apply: func() { onChange(offline) }}:
		default:
			logging.Warn(tuiSubsystem, "TUI channel full, dropped connectivity report offline=%v", offline)
		}
	})
}
