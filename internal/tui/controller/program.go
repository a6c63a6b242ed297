package controller

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program running the shell.
func NewProgram(opts Options) (*tea.Program, *Model, error) {
	m, err := NewModel(opts)
	if err != nil {
		return nil, nil, err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p, m, nil
}
