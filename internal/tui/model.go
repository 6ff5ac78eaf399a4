package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"kanacombo/internal/candidate"
	"kanacombo/internal/combo"
	"kanacombo/internal/itemsource"
	"kanacombo/internal/rows"
	"kanacombo/internal/tui/components"
)

// Model represents the Bubble Tea model hosting one combo control
type Model struct {
	control *combo.Control
	input   textinput.Model

	viewport struct {
		width  int
		height int
	}
	ready      bool
	maxVisible int

	// Terminals do not expose input method preedits, so composition is
	// driven explicitly with Ctrl+O.
	composing bool
	preedit   string

	listOpen   bool
	listCursor int

	instanceID string
	watcher    *itemsource.Watcher

	statusline   *components.StatuslineComponent
	helpModal    *components.HelpModal
	detailsModal *components.DetailsModal
}

// Options configures NewModel.
type Options struct {
	// History is shared with other controls. Nil selects candidate.Shared.
	History *candidate.History
	Rows    rows.Options
	Items   []candidate.Item

	// InitialID is selected after loading, when present.
	InitialID  candidate.ID
	MaxVisible int

	// Watcher, when set, feeds reloaded items into the control.
	Watcher *itemsource.Watcher
}

// ItemsReloadedMsg carries a fresh item list from the watcher
type ItemsReloadedMsg struct {
	Items []candidate.Item
}

// WatchErrorMsg reports a failed reload
type WatchErrorMsg struct {
	Err error
}

// clearStatusMsg expires the statusline message
type clearStatusMsg struct{}

const statusDuration = 3 * time.Second

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = opts.Rows.PlaceholderText
	if ti.Placeholder == "" {
		ti.Placeholder = rows.DefaultPlaceholderText
	}
	ti.Prompt = ""
	ti.Focus()

	maxVisible := opts.MaxVisible
	if maxVisible < 1 {
		maxVisible = 10
	}

	m := Model{
		control:      combo.New(opts.History, opts.Rows),
		input:        ti,
		maxVisible:   maxVisible,
		instanceID:   generateInstanceID(),
		watcher:      opts.Watcher,
		statusline:   components.NewStatuslineComponent(0),
		helpModal:    components.NewHelpModal(),
		detailsModal: components.NewDetailsModal(),
	}

	m.control.SetItems(opts.Items)
	if !opts.InitialID.IsNull() {
		m.control.SetCurrentID(opts.InitialID)
	}
	m.apply(m.control.Effects())
	return m
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

// Control exposes the hosted control.
func (m Model) Control() *combo.Control {
	return m.control
}

// Selection returns the id and display text of the active row. The id is
// null when the placeholder is active.
func (m Model) Selection() (candidate.ID, string) {
	r := m.control.Table().At(m.control.CurrentRow())
	if r == nil || rows.IsPlaceholder(r) {
		return "", ""
	}
	return r.ID(), r.Text()
}

// waitForReload blocks on the watcher and turns its output into messages.
func (m Model) waitForReload() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case items, ok := <-w.Items():
			if !ok {
				return nil
			}
			return ItemsReloadedMsg{Items: items}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}

// generateInstanceID creates a short UUIDv7-based id for log correlation
func generateInstanceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to a timestamp-based ID if UUID generation fails
		return fmt.Sprintf("kc_%d", time.Now().UnixNano())
	}
	return id.String()
}
