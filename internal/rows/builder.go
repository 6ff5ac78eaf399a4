package rows

import (
	"cmp"
	"slices"
	"strings"

	"kanacombo/internal/candidate"
)

const (
	// DefaultPlaceholderText is shown for the unselected row.
	DefaultPlaceholderText = "未選択"
	// DefaultHistoryLabel heads the history section.
	DefaultHistoryLabel = "History"
	// NoKatakanaHead heads the section of entries without a reading.
	NoKatakanaHead = "#"

	separatorFill = "─"
	separatorLen  = 100
)

// Options tunes the labels used by Build.
type Options struct {
	PlaceholderText string
	HistoryLabel    string
}

func (o Options) withDefaults() Options {
	if o.PlaceholderText == "" {
		o.PlaceholderText = DefaultPlaceholderText
	}
	if o.HistoryLabel == "" {
		o.HistoryLabel = DefaultHistoryLabel
	}
	return o
}

// HeaderText renders the filler line used for a section header.
func HeaderText(head string) string {
	return strings.Repeat(separatorFill, separatorLen) + " " + head + " " + separatorFill
}

// Build lays out entries: the placeholder, the history section for ids still
// present, then every other entry grouped by the first katakana character.
// history is read once; callers pass a snapshot.
func Build(entries []candidate.Entry, history []candidate.ID, opts Options) *Table {
	opts = opts.withDefaults()
	t := &Table{
		placeholder: -1,
		firstRow:    make(map[candidate.ID]int),
	}

	byID := make(map[candidate.ID]candidate.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byID[e.ID]; !ok {
			byID[e.ID] = e
		}
	}

	if ph, ok := byID[""]; ok {
		if ph.Label == "" {
			t.placeholder = len(t.Rows)
			t.Rows = append(t.Rows, Placeholder{Label: opts.PlaceholderText})
		} else {
			t.appendData(ph)
		}
	}

	var recent []candidate.Entry
	for _, id := range history {
		if e, ok := byID[id]; ok && !id.IsNull() {
			recent = append(recent, e)
		}
	}
	if len(recent) > 0 {
		t.Rows = append(t.Rows, Header{Head: opts.HistoryLabel, Label: HeaderText(opts.HistoryLabel)})
		for _, e := range recent {
			t.Rows = append(t.Rows, HistoryData{Entry: e})
		}
	}

	sorted := make([]candidate.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.IsPlaceholder() {
			sorted = append(sorted, e)
		}
	}
	slices.SortStableFunc(sorted, func(a, b candidate.Entry) int {
		aEmpty, bEmpty := a.Katakana == "", b.Katakana == ""
		if aEmpty != bEmpty {
			if aEmpty {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Katakana, b.Katakana)
	})

	current, started := "", false
	for _, e := range sorted {
		head := headOf(e.Katakana)
		if !started || head != current {
			started, current = true, head
			label := head
			if label == "" {
				label = NoKatakanaHead
			}
			t.Rows = append(t.Rows, Header{Head: label, Label: HeaderText(label)})
		}
		t.appendData(e)
	}

	return t
}

func (t *Table) appendData(e candidate.Entry) {
	row := len(t.Rows)
	t.Rows = append(t.Rows, Data{Entry: e})
	if e.ID.IsNull() {
		return
	}
	if _, ok := t.firstRow[e.ID]; !ok {
		t.firstRow[e.ID] = row
	}
}

func headOf(katakana string) string {
	for _, r := range katakana {
		return string(r)
	}
	return ""
}
