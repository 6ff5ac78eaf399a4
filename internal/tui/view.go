package tui

import (
	"kanacombo/internal/tui/components"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Modals overlay everything else
	if m.helpModal.IsVisible() {
		return m.helpModal.View()
	}
	if m.detailsModal.IsVisible() {
		return m.detailsModal.View()
	}

	input := components.NewInputComponent(
		m.input.View(),
		m.preedit,
		m.control.Invalid(),
		m.viewport.width,
	).Render()

	popup := m.popupComponent().Render()
	if popup != "" {
		popup += "\n"
	}

	footer := components.NewFooterComponent(m.state(), m.viewport.width)
	footer.UpdateSelection(
		m.control.CurrentID(),
		m.control.History().Snapshot(),
		m.control.History().Capacity(),
		shortID(m.instanceID),
	)

	return input + "\n" + popup + m.statusline.Render() + "\n" + footer.Render()
}

// popupComponent renders the drop-down list when it is open and the
// completion popup otherwise.
func (m Model) popupComponent() components.PopupComponent {
	rs := m.control.Rows()
	if m.listOpen {
		all := make([]int, len(rs))
		for i := range rs {
			all[i] = i
		}
		return components.NewPopupComponent(rs, all, m.listCursor, m.control.CurrentRow(), m.maxVisible, m.viewport.width)
	}

	popup := m.control.Popup()
	if !popup.Active {
		return components.NewPopupComponent(rs, nil, -1, -1, m.maxVisible, m.viewport.width)
	}
	return components.NewPopupComponent(rs, popup.Items, popup.Selected, m.control.CurrentRow(), m.maxVisible, m.viewport.width)
}

func (m Model) state() components.ControlState {
	switch {
	case m.composing:
		return components.StateComposing
	case m.listOpen:
		return components.StateList
	case m.control.Invalid():
		return components.StateInvalid
	default:
		return components.StateIdle
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
