package candidate

import (
	"slices"
	"sync"
)

// DefaultHistoryCapacity is the number of recent selections kept.
const DefaultHistoryCapacity = 5

// History is a bounded most-recent-first list of selected ids without
// duplicates. A single History may back any number of controls; every
// method is safe for concurrent use.
type History struct {
	mu       sync.Mutex
	ids      []ID
	capacity int
}

var (
	shared     *History
	sharedOnce sync.Once
)

// NewHistory creates an empty history. A non-positive capacity selects
// DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Shared returns the process-wide history, creating it on first use.
func Shared() *History {
	sharedOnce.Do(func() {
		shared = NewHistory(DefaultHistoryCapacity)
	})
	return shared
}

// Capacity returns the maximum number of ids kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Promote moves id to the front, inserting it if absent and dropping the
// oldest entries beyond capacity. It reports whether the order changed.
func (h *History) Promote(id ID) bool {
	if id.IsNull() {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if i := slices.Index(h.ids, id); i >= 0 {
		if i == 0 {
			return false
		}
		h.ids = slices.Delete(h.ids, i, i+1)
	}

	h.ids = slices.Insert(h.ids, 0, id)
	if len(h.ids) > h.capacity {
		h.ids = h.ids[:h.capacity]
	}
	return true
}

// Prune removes every id for which keep returns false and reports whether
// anything was removed.
func (h *History) Prune(keep func(ID) bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	before := len(h.ids)
	h.ids = slices.DeleteFunc(h.ids, func(id ID) bool {
		return !keep(id)
	})
	return len(h.ids) != before
}

// Snapshot returns a copy of the ids, most recent first.
func (h *History) Snapshot() []ID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.ids)
}

// Contains reports whether id is in the history.
func (h *History) Contains(id ID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Contains(h.ids, id)
}

// Len returns the number of ids held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.ids)
}

// Clear drops every id.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ids = nil
}
