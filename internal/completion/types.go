package completion

import (
	"kanacombo/internal/rows"
)

// State is the completion popup: the rows matching Query and the
// highlighted entry. Selected indexes Items; -1 means nothing highlighted.
type State struct {
	Active   bool
	Query    string
	Items    []int
	Selected int
}

// NewState returns a closed popup.
func NewState() State {
	return State{Selected: -1}
}

// Complete filters rs by query and opens the popup if anything matched.
// The highlight is cleared.
func (c *State) Complete(rs []rows.Row, query string) {
	c.Query = query
	c.Items = Filter(rs, query)
	c.Active = len(c.Items) > 0
	c.Selected = -1
}

// Refilter re-applies the current query to rs, keeping the popup closed if
// it was closed.
func (c *State) Refilter(rs []rows.Row) {
	c.Items = Filter(rs, c.Query)
	c.Active = c.Active && len(c.Items) > 0
	c.Selected = -1
}

// Hide closes the popup without forgetting the query.
func (c *State) Hide() {
	c.Active = false
	c.Selected = -1
}

// Reset closes the popup and forgets the query.
func (c *State) Reset() {
	c.Active = false
	c.Query = ""
	c.Items = nil
	c.Selected = -1
}

// SelectNext highlights the next item, wrapping around. Without a highlight
// it starts at the first item.
func (c *State) SelectNext() {
	if len(c.Items) == 0 {
		return
	}
	if c.Selected < 0 {
		c.Selected = 0
		return
	}
	c.Selected = (c.Selected + 1) % len(c.Items)
}

// SelectPrev highlights the previous item, wrapping around. Without a
// highlight it starts at the last item.
func (c *State) SelectPrev() {
	if len(c.Items) == 0 {
		return
	}
	if c.Selected < 0 {
		c.Selected = len(c.Items) - 1
		return
	}
	c.Selected = (c.Selected - 1 + len(c.Items)) % len(c.Items)
}

// HasSelection reports whether the open popup has a highlighted item.
func (c *State) HasSelection() bool {
	return c.Active && c.Selected >= 0 && c.Selected < len(c.Items)
}

// SelectedRow returns the row index behind the highlight.
func (c *State) SelectedRow() (int, bool) {
	if !c.HasSelection() {
		return -1, false
	}
	return c.Items[c.Selected], true
}
