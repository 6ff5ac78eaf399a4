// Package combo is the input state machine of an editable, searchable
// selection control. A Control consumes host events one at a time and
// answers with effects; it never touches a rendering surface.
//
// The control is Idle while the field holds committed text only, and
// Composing while an input method preedit is open. Text typed in either
// state narrows the completion popup. Commit validates the text against the
// rows and reverts to the last valid row on a miss; commits during a
// composition are ignored until it closes.
package combo

import (
	"strings"

	"kanacombo/internal/candidate"
	"kanacombo/internal/completion"
	"kanacombo/internal/logger"
	"kanacombo/internal/rows"
)

// Control is not safe for concurrent use. Its History may be shared.
type Control struct {
	model *candidate.Model
	opts  rows.Options
	table *rows.Table
	popup completion.State

	text        string
	composition string
	composing   bool
	invalid     bool

	current    int
	lastValid  int
	rebuilding bool

	effects []Effect
}

// New creates a control with no candidates. history is shared with every
// other control built on it; nil selects candidate.Shared.
func New(history *candidate.History, opts rows.Options) *Control {
	return &Control{
		model:     candidate.NewModel(history),
		opts:      opts,
		table:     rows.Build(nil, nil, opts),
		popup:     completion.NewState(),
		current:   -1,
		lastValid: -1,
	}
}

// SetItems replaces the candidate set and rebuilds the rows. The current
// selection survives unless it vanished or the history had to be pruned,
// in which case the first selectable row becomes active. Only the pruning
// fallback is reported as a selection change.
func (c *Control) SetItems(items []candidate.Item) {
	before := c.CurrentID()
	preserve := before
	pruned := c.model.SetItems(items)
	if pruned {
		preserve = ""
	}

	c.composing = false
	c.composition = ""
	c.rebuild(preserve)

	if pruned && c.CurrentID() != before {
		c.emit(SelectionChanged{Row: c.current, ID: c.CurrentID()})
	}
}

// CurrentID returns the id of the active row, null when nothing or the
// placeholder is active.
func (c *Control) CurrentID() candidate.ID {
	if r := c.table.At(c.current); r != nil {
		return r.ID()
	}
	return ""
}

// SetCurrentTextIfValid selects the row showing text. The empty text selects
// the placeholder. It reports false, changing nothing, when no row matches.
func (c *Control) SetCurrentTextIfValid(text string) bool {
	if text == "" && c.table.HasPlaceholder() {
		c.selectPlaceholder()
		return true
	}

	row := c.table.FindText(text, false)
	if row < 0 {
		return false
	}
	c.setCurrent(row)
	c.setInvalid(false)
	return true
}

// SetCurrentID selects the first row bound to id. On a miss the placeholder
// is selected and false is returned.
func (c *Control) SetCurrentID(id candidate.ID) bool {
	if !id.IsNull() {
		if row, ok := c.table.RowOf(id); ok {
			c.setCurrent(row)
			return true
		}
	}
	if c.table.HasPlaceholder() {
		c.setCurrent(c.table.PlaceholderRow())
	}
	return false
}

// ClearSelection selects the placeholder if there is one and forgets the
// popup query.
func (c *Control) ClearSelection() {
	c.popup.Reset()
	if c.table.HasPlaceholder() {
		c.setCurrent(c.table.PlaceholderRow())
	}
}

// Handle processes ev to completion and returns the effects it produced,
// including any left over from direct API calls.
func (c *Control) Handle(ev Event) []Effect {
	switch ev := ev.(type) {
	case TextEdited:
		c.textEdited(ev.Text)
	case CompositionChanged:
		c.compositionChanged(ev.Combined, ev.Composition)
	case CompositionEnded:
		c.compositionEnded(ev.Text)
	case Commit:
		c.validateOrRevert()
	case Navigate:
		c.navigate(ev.Dir)
	case Activate:
		c.activate(ev.Text)
	case PickRow:
		c.pick(ev.Row)
	}
	return c.Effects()
}

// Effects drains the effects produced since the last call.
func (c *Control) Effects() []Effect {
	out := c.effects
	c.effects = nil
	return out
}

// Table returns the current rows.
func (c *Control) Table() *rows.Table { return c.table }

// Rows returns the current row list.
func (c *Control) Rows() []rows.Row { return c.table.Rows }

// Popup returns a copy of the completion popup state.
func (c *Control) Popup() completion.State {
	p := c.popup
	p.Items = append([]int(nil), c.popup.Items...)
	return p
}

// Text returns the committed field text.
func (c *Control) Text() string { return c.text }

// Composition returns the open preedit, if any.
func (c *Control) Composition() string { return c.composition }

// Composing reports whether an input method session is open.
func (c *Control) Composing() bool { return c.composing }

// EffectiveText is the committed text plus the open preedit.
func (c *Control) EffectiveText() string {
	if c.composing {
		return c.text + c.composition
	}
	return c.text
}

// Invalid reports whether the field should show the invalid cue.
func (c *Control) Invalid() bool { return c.invalid }

// CurrentRow returns the active row index, or -1.
func (c *Control) CurrentRow() int { return c.current }

// LastValidRow returns the row a failed commit reverts to, or -1.
func (c *Control) LastValidRow() int { return c.lastValid }

// History returns the history the control promotes into.
func (c *Control) History() *candidate.History { return c.model.History() }

// Entry returns the candidate entry behind id.
func (c *Control) Entry(id candidate.ID) (candidate.Entry, bool) {
	return c.model.Lookup(id)
}

func (c *Control) textEdited(text string) {
	c.text = text
	if c.composing {
		return
	}
	c.popup.Complete(c.table.Rows, text)
	c.updateValidity()
}

func (c *Control) compositionChanged(combined, composition string) {
	if composition == "" {
		c.compositionEnded(combined)
		return
	}

	c.composing = true
	c.composition = composition
	c.text = strings.TrimSuffix(combined, composition)

	// A fresh preedit invalidates any highlight so nothing is committed
	// behind the user's back.
	c.popup.Complete(c.table.Rows, combined)
	c.updateValidity()
}

func (c *Control) compositionEnded(text string) {
	c.composing = false
	c.composition = ""
	c.text = text
	c.updateValidity()
}

func (c *Control) validateOrRevert() {
	if c.composing {
		return
	}
	c.popup.Hide()

	text := c.text
	if text == "" && c.table.HasPlaceholder() {
		c.selectPlaceholder()
		return
	}

	if row := c.table.FindText(text, true); row >= 0 {
		if row != c.current {
			c.setCurrent(row)
		}
		c.lastValid = c.current
		c.setInvalid(false)
		return
	}

	if c.table.At(c.lastValid) != nil {
		logger.Debug("combo: %q matches no row, reverting to row %d", text, c.lastValid)
		c.setCurrent(c.lastValid)
		if r := c.table.At(c.current); rows.IsPlaceholder(r) {
			c.setText("")
		} else {
			c.setText(r.Text())
		}
		c.setInvalid(false)
		return
	}

	logger.Debug("combo: %q matches no row and nothing to revert to", text)
	c.setText("")
	c.setInvalid(true)
}

func (c *Control) navigate(dir Direction) {
	switch dir {
	case NavNext, NavPrev:
		if !c.popup.Active {
			return
		}
		if dir == NavNext {
			c.popup.SelectNext()
		} else {
			c.popup.SelectPrev()
		}
		if row, ok := c.popup.SelectedRow(); ok {
			c.setText(c.table.At(row).Text())
		}
		c.updateValidity()

	case NavConfirm:
		if row, ok := c.popup.SelectedRow(); ok {
			c.activate(c.table.At(row).Text())
			return
		}
		c.validateOrRevert()

	case NavDismiss:
		c.popup.Hide()
	}
}

func (c *Control) activate(text string) {
	c.popup.Hide()
	c.setText(text)
	if row := c.table.FindText(text, true); row >= 0 {
		c.setCurrent(row)
	}
	c.setInvalid(false)
}

func (c *Control) pick(row int) {
	r := c.table.At(row)
	if r == nil || rows.IsHeader(r) {
		return
	}

	c.popup.Hide()
	if rows.IsPlaceholder(r) {
		c.selectPlaceholder()
		return
	}
	c.setCurrent(row)
	c.setInvalid(false)
}

func (c *Control) selectPlaceholder() {
	ph := c.table.PlaceholderRow()
	c.setCurrent(ph)
	c.lastValid = ph
	c.setText("")
	c.setInvalid(false)
}

// setCurrent makes row active and mirrors it into the field text. Changes
// of the active row outside a rebuild run the selection side effects.
func (c *Control) setCurrent(row int) {
	prev := c.current
	c.current = row

	if r := c.table.At(row); r != nil {
		if rows.IsPlaceholder(r) {
			c.setText("")
			c.setInvalid(false)
		} else {
			c.setText(r.Text())
		}
	}

	if row != prev {
		c.currentChanged(row)
	}
}

func (c *Control) currentChanged(row int) {
	if c.rebuilding || row < 0 {
		return
	}

	switch r := c.table.At(row).(type) {
	case rows.Placeholder:
		c.lastValid = row
		c.setText("")
		c.emit(SelectionChanged{Row: row})

	case rows.Header:
		return

	case rows.HistoryData:
		c.lastValid = row
		c.emit(SelectionChanged{Row: row, ID: r.ID()})

	case rows.Data:
		c.lastValid = row
		id := r.ID()
		if c.model.History().Promote(id) {
			c.rebuild(id)
		}
		c.emit(SelectionChanged{Row: c.current, ID: id})
	}
}

// rebuild regenerates the rows and reactivates preserve, falling back to
// the first selectable row.
func (c *Control) rebuild(preserve candidate.ID) {
	c.rebuilding = true

	c.table = rows.Build(c.model.Entries(), c.model.History().Snapshot(), c.opts)
	c.current = -1

	target := c.table.FirstSelectable()
	if !preserve.IsNull() {
		if row, ok := c.table.RowOf(preserve); ok {
			target = row
		}
	}
	c.setCurrent(target)

	c.lastValid = c.current
	c.setInvalid(false)
	c.rebuilding = false

	c.popup.Refilter(c.table.Rows)
	c.emit(RebuildRows{})
	logger.Debug("combo: rebuilt %d rows, active row %d", c.table.Len(), c.current)
}

func (c *Control) updateValidity() {
	valid := c.table.IsExactMatch(c.EffectiveText()) || c.popup.HasSelection()
	c.setInvalid(!valid)
}

func (c *Control) setText(text string) {
	if c.text == text {
		return
	}
	c.text = text
	c.emit(SetText{Text: text})
}

func (c *Control) setInvalid(invalid bool) {
	if c.invalid == invalid {
		return
	}
	c.invalid = invalid
	c.emit(SetInvalid{Invalid: invalid})
}

func (c *Control) emit(e Effect) {
	c.effects = append(c.effects, e)
}
