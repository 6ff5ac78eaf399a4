package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists the key bindings of the control
type HelpModal struct {
	visible bool
}

// NewHelpModal creates a new help modal
func NewHelpModal() *HelpModal {
	return &HelpModal{}
}

// Show makes the help modal visible
func (h *HelpModal) Show() {
	h.visible = true
}

// Hide makes the help modal invisible
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is visible
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

type binding struct {
	key  string
	desc string
}

var bindingGroups = []struct {
	title    string
	bindings []binding
}{
	{"Search:", []binding{
		{"type", "Filter by label, id, hiragana or romaji"},
		{"Up / Down", "Move through the suggestions"},
		{"Tab / Shift+Tab", "Move through the suggestions, or commit when they are closed"},
		{"Enter", "Accept the suggestion or commit the text"},
		{"Esc", "Close the suggestions"},
	}},
	{"Selection:", []binding{
		{"F4 / Alt+Down", "Open the full list"},
		{"Ctrl+U", "Clear the selection"},
		{"F2", "Show selection details"},
	}},
	{"Composition:", []binding{
		{"Ctrl+O", "Start or finish a composition"},
		{"Esc (composing)", "Cancel the composition"},
	}},
	{"General:", []binding{
		{"F1", "Show this help"},
		{"Ctrl+C", "Exit and print the selection"},
	}},
}

// View renders the help modal
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Background(lipgloss.Color("235"))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		MarginBottom(1)

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render("kanacombo Help"))
	content.WriteString("\n\n")

	for _, group := range bindingGroups {
		content.WriteString(keyStyle.Render(group.title))
		content.WriteString("\n")
		for _, b := range group.bindings {
			content.WriteString(commandStyle.Render(b.key) + " - " + descStyle.Render(b.desc))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(descStyle.Render("Press Esc to close this help"))

	return modalStyle.Render(content.String())
}
