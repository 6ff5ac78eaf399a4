package candidate

import (
	"fmt"

	"kanacombo/internal/kana"
)

// ID identifies a selectable candidate. The zero value is the null id
// carried only by the placeholder.
type ID string

// IsNull reports whether id is the null id.
func (id ID) IsNull() bool {
	return id == ""
}

// Item is the shape a host supplies to SetItems.
type Item struct {
	ID       ID
	Label    string
	Katakana string
}

// Entry is one candidate as seen by the row builder. Entries are rebuilt
// from scratch on every SetItems and never mutated afterwards.
type Entry struct {
	ID       ID
	Label    string
	Katakana string
	Tokens   string
}

// IsPlaceholder reports whether e is the synthesized "unselected" entry.
func (e Entry) IsPlaceholder() bool {
	return e.ID.IsNull()
}

// NewEntry builds the entry for item. The display label carries the id so
// that candidates sharing a label stay distinguishable.
func NewEntry(item Item) Entry {
	return Entry{
		ID:       item.ID,
		Label:    DisplayLabel(item.ID, item.Label),
		Katakana: item.Katakana,
		Tokens:   kana.SearchTokens(item.Label, item.Katakana, string(item.ID)),
	}
}

// DisplayLabel formats the text shown for a candidate.
func DisplayLabel(id ID, label string) string {
	return fmt.Sprintf("%s : %s", id, label)
}
