package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailsModal shows the selection state of the control
type DetailsModal struct {
	visible bool
	title   string
	lines   []string
	width   int
	height  int
}

// NewDetailsModal creates a new details modal
func NewDetailsModal() *DetailsModal {
	return &DetailsModal{
		title: "Selection Details",
	}
}

// Show displays the modal with the given key/value lines
func (m *DetailsModal) Show(lines []string, width, height int) {
	m.visible = true
	m.lines = lines
	m.width = width
	m.height = height
}

// Hide hides the modal
func (m *DetailsModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently shown
func (m DetailsModal) IsVisible() bool {
	return m.visible
}

// Update handles tea messages
func (m DetailsModal) Update(msg tea.Msg) (DetailsModal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter, tea.KeySpace:
			m.Hide()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// DetailLine formats one key/value line.
func DetailLine(key string, value any) string {
	return fmt.Sprintf("%-12s %v", key+":", value)
}

// View renders the modal
func (m DetailsModal) View() string {
	if !m.visible {
		return ""
	}

	if m.width < 20 || m.height < 10 {
		return "Terminal too small"
	}

	modalWidth := m.width * 60 / 100
	if modalWidth < 40 {
		modalWidth = min(40, m.width-4)
	}
	if modalWidth > 80 {
		modalWidth = 80
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(modalWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1).
		Align(lipgloss.Center).
		Width(modalWidth - 4)

	contentStyle := lipgloss.NewStyle().
		Width(modalWidth - 4)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1).
		Align(lipgloss.Center).
		Width(modalWidth - 4)

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.title))
	content.WriteString("\n\n")
	content.WriteString(contentStyle.Render(strings.Join(m.lines, "\n")))
	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Press Esc, Enter, or Space to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(content.String()),
	)
}
