// Package candidate holds the canonical candidate list of a control and the
// recency history shared between controls.
package candidate

import (
	"kanacombo/internal/logger"
)

// Model owns the entries of one control. The first entry is always the
// placeholder.
type Model struct {
	entries []Entry
	history *History
}

// NewModel creates a model backed by history. A nil history selects the
// process-wide Shared history.
func NewModel(history *History) *Model {
	if history == nil {
		history = Shared()
	}
	return &Model{
		entries: []Entry{{}},
		history: history,
	}
}

// SetItems replaces the candidate set. Items with a null id are dropped. Ids
// missing from the new set are pruned from the history; the return value
// reports whether that happened.
func (m *Model) SetItems(items []Item) bool {
	entries := make([]Entry, 0, len(items)+1)
	entries = append(entries, Entry{})

	ids := make(map[ID]struct{}, len(items))
	dropped := 0
	for _, item := range items {
		if item.ID.IsNull() {
			dropped++
			continue
		}
		entries = append(entries, NewEntry(item))
		ids[item.ID] = struct{}{}
	}
	m.entries = entries

	pruned := m.history.Prune(func(id ID) bool {
		_, ok := ids[id]
		return ok
	})

	logger.Debug("candidate: %d entries, %d dropped, history pruned=%t", len(entries)-1, dropped, pruned)
	return pruned
}

// Entries returns the entries, placeholder first. The slice must not be
// modified.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Lookup returns the first entry with id.
func (m *Model) Lookup(id ID) (Entry, bool) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// History returns the history backing the model.
func (m *Model) History() *History {
	return m.history
}
