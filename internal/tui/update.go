package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kanacombo/internal/combo"
	"kanacombo/internal/logger"
	"kanacombo/internal/rows"
	"kanacombo/internal/tui/components"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.input.Width = max(msg.Width-6, 1) // Account for border padding
		m.statusline.SetWidth(msg.Width)
		m.ready = true
		if m.detailsModal.IsVisible() {
			details, _ := m.detailsModal.Update(msg)
			m.detailsModal = &details
		}
		return m, nil

	case tea.KeyMsg:
		if m.detailsModal.IsVisible() {
			details, cmd := m.detailsModal.Update(msg)
			m.detailsModal = &details
			return m, cmd
		}
		if m.helpModal.IsVisible() {
			switch msg.String() {
			case "esc", "f1", "enter":
				m.helpModal.Hide()
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		cmd = m.handleKey(msg)
		return m, cmd

	case ItemsReloadedMsg:
		m.control.SetItems(msg.Items)
		applied := m.apply(m.control.Effects())
		m.clampListCursor()
		cmd = tea.Batch(
			applied,
			m.flash(components.StatuslineInfo, fmt.Sprintf("Reloaded %d items", len(msg.Items))),
			m.waitForReload(),
		)
		return m, cmd

	case WatchErrorMsg:
		logger.Error("[%s] watch: %v", m.instanceID, msg.Err)
		cmd = tea.Batch(
			m.flash(components.StatuslineError, "Reload failed: "+msg.Err.Error()),
			m.waitForReload(),
		)
		return m, cmd

	case clearStatusMsg:
		if m.statusline.HasExpired() {
			m.statusline.ClearMessage()
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "f1":
		m.helpModal.Show()
		return nil
	case "f2":
		m.detailsModal.Show(m.detailLines(), m.viewport.width, m.viewport.height)
		return nil
	}

	if m.composing {
		return m.handleComposeKey(msg)
	}
	if m.listOpen {
		return m.handleListKey(msg)
	}

	switch msg.String() {
	case "ctrl+o":
		m.composing = true
		m.preedit = ""
		return nil
	case "f4", "alt+down":
		m.openList()
		return nil
	case "ctrl+u":
		m.control.ClearSelection()
		return m.apply(m.control.Effects())
	case "up":
		return m.dispatch(combo.Navigate{Dir: combo.NavPrev})
	case "down":
		return m.dispatch(combo.Navigate{Dir: combo.NavNext})
	case "enter":
		return m.dispatch(combo.Navigate{Dir: combo.NavConfirm})
	case "tab":
		if m.control.Popup().Active {
			return m.dispatch(combo.Navigate{Dir: combo.NavNext})
		}
		return m.dispatch(combo.Commit{})
	case "shift+tab":
		if m.control.Popup().Active {
			return m.dispatch(combo.Navigate{Dir: combo.NavPrev})
		}
		return m.dispatch(combo.Commit{})
	case "esc":
		if m.control.Popup().Active {
			return m.dispatch(combo.Navigate{Dir: combo.NavDismiss})
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.dispatch(combo.TextEdited{Text: after}))
	}
	return cmd
}

// handleComposeKey feeds keystrokes into the open preedit.
func (m *Model) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	committed := m.input.Value()

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.preedit += " "
		} else {
			m.preedit += string(msg.Runes)
		}
		return m.dispatch(combo.CompositionChanged{
			Combined:    committed + m.preedit,
			Composition: m.preedit,
		})

	case tea.KeyBackspace:
		if m.preedit == "" {
			return nil
		}
		r := []rune(m.preedit)
		m.preedit = string(r[:len(r)-1])
		if m.preedit == "" {
			m.composing = false
		}
		return m.dispatch(combo.CompositionChanged{
			Combined:    committed + m.preedit,
			Composition: m.preedit,
		})

	case tea.KeyEnter, tea.KeyCtrlO:
		text := committed + m.preedit
		m.composing = false
		m.preedit = ""
		m.input.SetValue(text)
		m.input.CursorEnd()
		// The committed preedit is an ordinary edit once the composition closes.
		return tea.Batch(
			m.dispatch(combo.CompositionEnded{Text: text}),
			m.dispatch(combo.TextEdited{Text: text}),
		)

	case tea.KeyTab:
		return m.dispatch(combo.Commit{})

	case tea.KeyEsc:
		m.composing = false
		m.preedit = ""
		return m.dispatch(combo.CompositionEnded{Text: committed})
	}
	return nil
}

// handleListKey drives the full drop-down list.
func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		m.moveListCursor(-1)
	case "down":
		m.moveListCursor(1)
	case "enter":
		m.listOpen = false
		return m.dispatch(combo.PickRow{Row: m.listCursor})
	case "esc", "f4", "alt+up":
		m.listOpen = false
	}
	return nil
}

func (m *Model) openList() {
	m.listOpen = true
	m.listCursor = m.control.CurrentRow()
	if m.listCursor < 0 {
		m.listCursor = m.control.Table().FirstSelectable()
	}
	m.clampListCursor()
}

// moveListCursor steps over header rows.
func (m *Model) moveListCursor(step int) {
	rs := m.control.Rows()
	for i := m.listCursor + step; i >= 0 && i < len(rs); i += step {
		if !rows.IsHeader(rs[i]) {
			m.listCursor = i
			return
		}
	}
}

func (m *Model) clampListCursor() {
	n := m.control.Table().Len()
	if n == 0 {
		m.listCursor = 0
		return
	}
	m.listCursor = min(max(m.listCursor, 0), n-1)
	if rows.IsHeader(m.control.Table().At(m.listCursor)) {
		m.moveListCursor(1)
	}
}

// dispatch runs ev through the control and applies what it produced.
func (m *Model) dispatch(ev combo.Event) tea.Cmd {
	logger.Event("combo.event", map[string]any{
		"instance": m.instanceID,
		"event":    describe(ev),
	})
	return m.apply(m.control.Handle(ev))
}

// apply mirrors effects onto the widgets.
func (m *Model) apply(effects []combo.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		logger.Event("combo.effect", map[string]any{
			"instance": m.instanceID,
			"effect":   describe(e),
		})

		switch e := e.(type) {
		case combo.SetText:
			if m.input.Value() != e.Text {
				m.input.SetValue(e.Text)
				m.input.CursorEnd()
			}
		case combo.SetInvalid:
			if e.Invalid && !m.composing {
				cmds = append(cmds, m.flash(components.StatuslineWarning, "No candidate matches the text"))
			}
		case combo.RebuildRows:
			m.clampListCursor()
		case combo.SelectionChanged:
			label := "nothing"
			if r := m.control.Table().At(e.Row); r != nil && !e.ID.IsNull() {
				label = r.Text()
			}
			logger.Info("[%s] selection changed: row=%d kind=%s id=%q", m.instanceID, e.Row, rows.Kind(m.control.Table().At(e.Row)), e.ID)
			cmds = append(cmds, m.flash(components.StatuslineInfo, "Selected "+label))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) flash(kind components.StatuslineMessageType, text string) tea.Cmd {
	m.statusline.Flash(kind, text, statusDuration)
	return tea.Tick(statusDuration, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) detailLines() []string {
	c := m.control
	id, label := m.Selection()
	if id.IsNull() {
		label = "(placeholder)"
	}
	history := c.History().Snapshot()
	ids := make([]string, len(history))
	for i, h := range history {
		ids[i] = string(h)
	}

	kind := "none"
	if r := c.Table().At(c.CurrentRow()); r != nil {
		kind = rows.Kind(r)
	}
	reading, tokens := "-", "-"
	if e, ok := c.Entry(id); ok && !id.IsNull() {
		if e.Katakana != "" {
			reading = e.Katakana
		}
		tokens = e.Tokens
	}

	return []string{
		components.DetailLine("Selected", label),
		components.DetailLine("ID", id),
		components.DetailLine("Reading", reading),
		components.DetailLine("Tokens", tokens),
		components.DetailLine("Row", fmt.Sprintf("%d (%s)", c.CurrentRow(), kind)),
		components.DetailLine("Last valid", c.LastValidRow()),
		components.DetailLine("Rows", c.Table().Len()),
		components.DetailLine("History", fmt.Sprintf("[%s] (%d max)", strings.Join(ids, ", "), c.History().Capacity())),
		components.DetailLine("Invalid", c.Invalid()),
		components.DetailLine("Instance", m.instanceID),
	}
}

func describe(v any) string {
	return fmt.Sprintf("%T%+v", v, v)
}
