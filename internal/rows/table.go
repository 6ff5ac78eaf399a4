package rows

import (
	"kanacombo/internal/candidate"
)

// Table is the result of Build.
type Table struct {
	Rows []Row

	placeholder int
	firstRow    map[candidate.ID]int
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// At returns row i, or nil when i is out of range.
func (t *Table) At(i int) Row {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// PlaceholderRow returns the placeholder's index, or -1.
func (t *Table) PlaceholderRow() int {
	return t.placeholder
}

// HasPlaceholder reports whether a placeholder row exists.
func (t *Table) HasPlaceholder() bool {
	return t.placeholder >= 0
}

// RowOf returns the first data row bound to id.
func (t *Table) RowOf(id candidate.ID) (int, bool) {
	row, ok := t.firstRow[id]
	return row, ok
}

// FirstSelectable returns the placeholder row if present, else the first
// non-header row, else -1.
func (t *Table) FirstSelectable() int {
	if t.placeholder >= 0 {
		return t.placeholder
	}
	for i, r := range t.Rows {
		if !IsHeader(r) {
			return i
		}
	}
	return -1
}

// FindText returns the first non-header row whose text equals text, or -1.
// The placeholder row is skipped when skipPlaceholder is set.
func (t *Table) FindText(text string, skipPlaceholder bool) int {
	for i, r := range t.Rows {
		switch r.(type) {
		case Header:
			continue
		case Placeholder:
			if skipPlaceholder {
				continue
			}
		}
		if r.Text() == text {
			return i
		}
	}
	return -1
}

// IsExactMatch reports whether text resolves to a row. The empty text
// matches when there is a placeholder to fall back to.
func (t *Table) IsExactMatch(text string) bool {
	if text == "" {
		return t.HasPlaceholder()
	}
	return t.FindText(text, true) >= 0
}
