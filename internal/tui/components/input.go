package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	invalidInputStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#FFBEBE")).
				Foreground(lipgloss.Color("0"))
	preeditStyle = lipgloss.NewStyle().Underline(true)
)

// InputComponent handles the rendering of the edit field
type InputComponent struct {
	field   string
	preedit string
	invalid bool
	width   int
}

// NewInputComponent creates a new input component. field is the rendered
// text input and preedit any open composition.
func NewInputComponent(field, preedit string, invalid bool, width int) *InputComponent {
	return &InputComponent{
		field:   field,
		preedit: preedit,
		invalid: invalid,
		width:   width,
	}
}

// Render renders the input area with border and styling
func (i *InputComponent) Render() string {
	content := i.field
	if i.preedit != "" {
		content += preeditStyle.Render(i.preedit)
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(max(i.width-2, 1)).
		Padding(0, 1)
	if i.invalid {
		style = style.
			BorderForeground(lipgloss.Color("196")).
			Inherit(invalidInputStyle)
	}
	return style.Render(content)
}

// Height is the number of lines Render produces.
func (i *InputComponent) Height() int {
	return 3
}
