package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanacombo/internal/candidate"
)

// FooterComponent renders the state indicator and the selection summary
type FooterComponent struct {
	state     ControlState
	width     int
	currentID candidate.ID
	history   []candidate.ID
	capacity  int
	instance  string
}

// NewFooterComponent creates a new footer component
func NewFooterComponent(state ControlState, width int) *FooterComponent {
	return &FooterComponent{
		state: state,
		width: width,
	}
}

// UpdateSelection sets the selection details shown in the footer.
func (f *FooterComponent) UpdateSelection(current candidate.ID, history []candidate.ID, capacity int, instance string) {
	f.currentID = current
	f.history = history
	f.capacity = capacity
	f.instance = instance
}

// Render renders the complete footer with state indicator and status bar
func (f *FooterComponent) Render() string {
	indicator := NewStateIndicatorComponent(f.state)
	remainingWidth := max(f.width-indicator.Width(), 0)

	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236"))

	current := "none"
	if !f.currentID.IsNull() {
		current = string(f.currentID)
	}

	// Layout: kanacombo | id | history | instance
	sections := []string{
		"kanacombo",
		"id: " + current,
		fmt.Sprintf("history %d/%d: %s", len(f.history), f.capacity, formatHistory(f.history)),
	}
	if f.instance != "" {
		sections = append(sections, f.instance)
	}

	separator := base.Render("   ")
	var styled []string
	for _, section := range sections {
		styled = append(styled, base.Render(section))
	}
	composed := strings.Join(styled, separator)

	paddingNeeded := remainingWidth - lipgloss.Width(composed) - 2 // -2 for left/right padding
	if paddingNeeded > 0 {
		composed += base.Render(strings.Repeat(" ", paddingNeeded))
	}

	mainFooter := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Width(remainingWidth).
		Padding(0, 1).
		Render(composed)

	return indicator.Render() + mainFooter
}

func formatHistory(ids []candidate.ID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}
