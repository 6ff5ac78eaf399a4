package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"kanacombo/internal/candidate"
)

// Run starts the TUI and returns the selection active when it exits.
func Run(opts Options) (candidate.ID, string, error) {
	m := NewModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", "", fmt.Errorf("run tui: %w", err)
	}

	id, label := final.(Model).Selection()
	return id, label, nil
}
