package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatuslineMessageType represents the type of statusline message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineWarning
	StatuslineError
)

// StatuslineMessage represents a message to display in the statusline
type StatuslineMessage struct {
	Type     StatuslineMessageType
	Text     string
	Duration time.Duration
	ShowTime time.Time
}

// StatuslineComponent shows transient notices such as selection changes
// and reload results.
type StatuslineComponent struct {
	message *StatuslineMessage
	width   int
}

// NewStatuslineComponent creates a new statusline component
func NewStatuslineComponent(width int) *StatuslineComponent {
	return &StatuslineComponent{
		width: width,
	}
}

// Flash shows text for d. A zero d keeps it until replaced.
func (s *StatuslineComponent) Flash(kind StatuslineMessageType, text string, d time.Duration) {
	s.message = &StatuslineMessage{
		Type:     kind,
		Text:     text,
		Duration: d,
		ShowTime: time.Now(),
	}
}

// Message returns the message on display, nil once it has expired.
func (s *StatuslineComponent) Message() *StatuslineMessage {
	if s.HasExpired() {
		return nil
	}
	return s.message
}

// ClearMessage clears the current message
func (s *StatuslineComponent) ClearMessage() {
	s.message = nil
}

// HasExpired checks if the current message has expired
func (s *StatuslineComponent) HasExpired() bool {
	if s.message == nil || s.message.Duration == 0 {
		return false
	}
	return time.Since(s.message.ShowTime) > s.message.Duration
}

// Render renders the statusline
func (s *StatuslineComponent) Render() string {
	msg := s.Message()
	if msg == nil {
		return lipgloss.NewStyle().
			Width(s.width).
			Render(" ")
	}

	var fg lipgloss.Color
	switch msg.Type {
	case StatuslineWarning:
		fg = lipgloss.Color("226") // Yellow
	case StatuslineError:
		fg = lipgloss.Color("196") // Red
	default:
		fg = lipgloss.Color("252") // Light gray for info
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Width(s.width).
		Padding(0, 1).
		Render(msg.Text)
}

// SetWidth updates the width of the statusline
func (s *StatuslineComponent) SetWidth(width int) {
	s.width = width
}
