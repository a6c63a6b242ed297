package controller

import (
	"scini/internal/mqttbridge"
	"scini/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// watcherMsg carries a watcher observation made on another goroutine. apply
// runs on the UI thread.
type watcherMsg struct {
	apply func()
}

type logEntryMsg struct {
	entry logging.LogEntry
}

type logClosedMsg struct{}

type busMsg struct {
	msg mqttbridge.Message
}

type busClosedMsg struct{}

// snackbarTimeoutMsg closes the banner opened as generation gen.
type snackbarTimeoutMsg struct {
	gen int
}

type clearStatusMsg struct{}

// channelReaderCmd returns a command that forwards one message from ch.
func channelReaderCmd(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func logReaderCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logClosedMsg{}
		}
		return logEntryMsg{entry: entry}
	}
}

func busReaderCmd(ch <-chan mqttbridge.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return busClosedMsg{}
		}
		return busMsg{msg: msg}
	}
}
