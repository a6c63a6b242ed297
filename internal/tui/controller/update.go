package controller

import (
	"strings"

	"scini/internal/mqttbridge"
	"scini/internal/state"
	"scini/internal/tui/components"
	"scini/internal/tui/view"
	"scini/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.breakpoint.Observe(msg.Width)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case watcherMsg:
		msg.apply()
		cmds = append(cmds, channelReaderCmd(m.tuiChannel))

	case logEntryMsg:
		m.appendLog(msg.entry.Line())
		cmds = append(cmds, logReaderCmd(m.logChannel))

	case logClosedMsg:
		m.logChannel = nil

	case busMsg:
		if msg.msg.Type == mqttbridge.MessageStatus && msg.msg.Connected != m.busConnected {
			if msg.msg.Connected {
				logging.Info(tuiSubsystem, "bus connected")
			} else {
				logging.Warn(tuiSubsystem, "bus disconnected: %v", msg.msg.Err)
			}
		}
		m.recordBus(msg.msg)
		cmds = append(cmds, busReaderCmd(m.busChannel))

	case busClosedMsg:
		m.busChannel = nil
		m.busConnected = false

	case snackbarTimeoutMsg:
		if msg.gen == m.snackbarGen && m.store.State().SnackbarOpened {
			m.store.Dispatch(state.CloseSnackbar{})
		}

	case clearStatusMsg:
		m.statusMessage = ""
	}

	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.speaking {
		return m.handleTranscriptKey(msg)
	}
	if m.showLog {
		return m.handleLogKey(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if m.tree.Drawer.Opened {
		if cmd, handled := m.handleDrawerKey(msg); handled {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.shell.OnMenuClick()
	case key.Matches(msg, m.keys.Jump):
		m.jumpTo(int(msg.String()[0] - '0'))
	case key.Matches(msg, m.keys.Speak):
		m.speaking = true
		m.transcript.Reset()
		return m.transcript.Focus()
	case key.Matches(msg, m.keys.Back):
		if !m.router.Back() && m.tree.Active != m.tree.Route {
			m.router.Push(m.tree.Header.BackHref)
		}
	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = true
		m.refreshLogView()
	case key.Matches(msg, m.keys.CopyLogs):
		if m.tree.Active == state.RouteTroubleshooting {
			return m.copyLogs()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleDrawerKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	links := m.tree.Drawer.Links
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.drawerCursor > 0 {
			m.drawerCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.drawerCursor < len(links)-1 {
			m.drawerCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.drawerCursor >= 0 && m.drawerCursor < len(links) {
			m.shell.OnDrawerLinkClick(links[m.drawerCursor].Href)
		}
	case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Menu):
		m.shell.OnDrawerOpenedChanged(false)
	default:
		return nil, false
	}
	return nil, true
}

// jumpTo follows drawer link n. Link 0 is Home, so 1 is the first page.
func (m *Model) jumpTo(n int) {
	links := m.tree.Drawer.Links
	if n <= 0 || n >= len(links) {
		return
	}
	m.shell.OnDrawerLinkClick(links[n].Href)
}

// handleTranscriptKey treats every edit as an interim result and enter as
// the final one.
func (m *Model) handleTranscriptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.speaking = false
		m.transcript.Blur()
		m.transcript.Reset()
		return nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.transcript.Value())
		m.speaking = false
		m.transcript.Blur()
		if text != "" {
			m.shell.OnSpeechResult(text, true)
		}
		m.transcript.Reset()
		return nil
	}

	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	m.shell.OnSpeechResult(m.transcript.Value(), false)
	return cmd
}

func (m *Model) handleLogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ToggleLog), key.Matches(msg, m.keys.Esc):
		m.showLog = false
		return nil
	case key.Matches(msg, m.keys.CopyLogs):
		return m.copyLogs()
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return cmd
}

func (m *Model) copyLogs() tea.Cmd {
	if err := m.copy(strings.Join(m.activityLog, "\n")); err != nil {
		logging.Error(tuiSubsystem, err, "Failed to copy logs")
		return m.setStatusMessage("Copy logs failed", components.MessageError, statusDuration)
	}
	return m.setStatusMessage("Logs copied to clipboard", components.MessageSuccess, statusDuration)
}

func (m *Model) refreshLogView() {
	m.logView.SetContent(view.PrepareLogContent(m.activityLog))
	m.logView.GotoBottom()
}
