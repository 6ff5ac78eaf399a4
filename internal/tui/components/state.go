package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ControlState is the coarse state shown at the left of the footer.
type ControlState int

const (
	StateIdle ControlState = iota
	StateComposing
	StateInvalid
	StateList
)

func (s ControlState) String() string {
	switch s {
	case StateComposing:
		return "COMPOSE"
	case StateInvalid:
		return "INVALID"
	case StateList:
		return "LIST"
	default:
		return "IDLE"
	}
}

// StateIndicatorComponent renders the control state with a colored background
type StateIndicatorComponent struct {
	state ControlState
}

func NewStateIndicatorComponent(state ControlState) *StateIndicatorComponent {
	return &StateIndicatorComponent{state: state}
}

func (s *StateIndicatorComponent) Render() string {
	var color string
	switch s.state {
	case StateComposing:
		color = "5" // Magenta
	case StateInvalid:
		color = "1" // Red
	case StateList:
		color = "2" // Green
	default:
		color = "4" // Blue
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(color)).
		Render(s.label())
}

// Width returns the width of the indicator
func (s *StateIndicatorComponent) Width() int {
	return len(s.label())
}

func (s *StateIndicatorComponent) label() string {
	return " " + s.state.String() + " "
}
