package controller

import (
	"scini/internal/tui/view"
)

// View implements tea.Model.
func (m *Model) View() string {
	title := ""
	if p := m.shell.ActivePage(); p != nil {
		title = p.Title()
	}
	return view.Render(view.Frame{
		Tree:         m.tree,
		Width:        m.Width,
		Height:       m.Height,
		PageTitle:    title,
		Content:      m.content.View(),
		Transcript:   m.transcriptView(),
		Speaking:     m.speaking,
		DrawerCursor: m.drawerCursor,
		Online:       !m.store.State().Offline,
		BusConnected: m.busConnected,
		Status:       m.statusMessage,
		StatusType:   m.statusType,
		Help:         m.help.View(m.keys),
		ShowLog:      m.showLog,
		LogView:      m.logView.View(),
	})
}

func (m *Model) transcriptView() string {
	if m.speaking {
		return m.transcript.View()
	}
	return ""
}
