package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanacombo/internal/candidate"
	"kanacombo/internal/rows"
)

func buildTable(history ...candidate.ID) *rows.Table {
	entries := []candidate.Entry{{}}
	for _, item := range []candidate.Item{
		{ID: "1", Label: "Apple", Katakana: "アップル"},
		{ID: "3", Label: "Orange", Katakana: "オレンジ"},
		{ID: "5", Label: "Banana", Katakana: "バナナ"},
		{ID: "7", Label: "Lemon", Katakana: "レモン"},
		{ID: "9", Label: "Strawberry", Katakana: "ストロベリー"},
		{ID: "12", Label: "Kiwi"},
	} {
		entries = append(entries, candidate.NewEntry(item))
	}
	return rows.Build(entries, history, rows.Options{})
}

func labels(t *rows.Table, idx []int) []string {
	var out []string
	for _, i := range idx {
		out = append(out, t.At(i).Text())
	}
	return out
}

func TestFilter(t *testing.T) {
	table := buildTable()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"katakana", "バナ", []string{"5 : Banana"}},
		{"hiragana", "すとろ", []string{"9 : Strawberry"}},
		{"romaji", "remo", []string{"7 : Lemon"}},
		{"case insensitive", "APPLE", []string{"1 : Apple"}},
		{"id token", "12", []string{"12 : Kiwi"}},
		{"row order", "an", []string{"3 : Orange", "5 : Banana"}},
		{"empty query matches every token row", "", []string{"1 : Apple", "3 : Orange", "9 : Strawberry", "5 : Banana", "7 : Lemon", "12 : Kiwi"}},
		{"no match", "zzz", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, labels(table, Filter(table.Rows, test.query)))
		})
	}
}

func TestFilterExcludesNonDataRows(t *testing.T) {
	table := buildTable("1", "5")

	for _, i := range Filter(table.Rows, "a") {
		r := table.At(i)
		_, isData := r.(rows.Data)
		assert.True(t, isData, "row %d (%s) is not a data row", i, rows.Kind(r))
		assert.Contains(t, r.SearchToken(), "a")
	}

	// History rows only match by exact text, never through tokens
	matches := Filter(table.Rows, "Banana")
	assert.Len(t, matches, 1)
	_, isData := table.At(matches[0]).(rows.Data)
	assert.True(t, isData)

	// Headers and the placeholder carry no token
	assert.Empty(t, Filter(table.Rows, "─"))
	assert.Empty(t, Filter(table.Rows, rows.DefaultPlaceholderText))
}
