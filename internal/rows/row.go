// Package rows derives the ordered display rows of a control from its
// candidate entries and the recency history.
package rows

import (
	"kanacombo/internal/candidate"
)

// Row is one line of the drop-down list. The set of implementations is
// closed: Placeholder, Header, Data and HistoryData.
type Row interface {
	// Text is the display text of the row.
	Text() string
	// SearchToken is the blob the incremental matcher searches. Only Data
	// rows carry one.
	SearchToken() string
	// ID is the candidate id bound to the row, null for headers and the
	// placeholder.
	ID() candidate.ID

	isRow()
}

// Placeholder is the reserved "unselected" row.
type Placeholder struct {
	Label string
}

// Header introduces a section; it can never be selected.
type Header struct {
	Head  string
	Label string
}

// Data is a regular candidate row.
type Data struct {
	Entry candidate.Entry
}

// HistoryData repeats a recently selected candidate in the history section.
// It is reachable by exact text or explicit pick, never by token search.
type HistoryData struct {
	Entry candidate.Entry
}

func (p Placeholder) Text() string        { return p.Label }
func (p Placeholder) SearchToken() string { return "" }
func (p Placeholder) ID() candidate.ID    { return "" }
func (Placeholder) isRow()                {}

func (h Header) Text() string        { return h.Label }
func (h Header) SearchToken() string { return "" }
func (h Header) ID() candidate.ID    { return "" }
func (Header) isRow()                {}

func (d Data) Text() string        { return d.Entry.Label }
func (d Data) SearchToken() string { return d.Entry.Tokens }
func (d Data) ID() candidate.ID    { return d.Entry.ID }
func (Data) isRow()                {}

func (h HistoryData) Text() string        { return h.Entry.Label }
func (h HistoryData) SearchToken() string { return "" }
func (h HistoryData) ID() candidate.ID    { return h.Entry.ID }
func (HistoryData) isRow()                {}

// IsHeader reports whether r is a section header.
func IsHeader(r Row) bool {
	_, ok := r.(Header)
	return ok
}

// IsPlaceholder reports whether r is the placeholder row.
func IsPlaceholder(r Row) bool {
	_, ok := r.(Placeholder)
	return ok
}

// Kind names the variant of r for logs and the details view.
func Kind(r Row) string {
	switch r.(type) {
	case Placeholder:
		return "placeholder"
	case Header:
		return "header"
	case Data:
		return "data"
	case HistoryData:
		return "history"
	default:
		return "unknown"
	}
}
