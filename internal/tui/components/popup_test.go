package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanacombo/internal/candidate"
	"kanacombo/internal/rows"
)

func fruitRows() []rows.Row {
	items := []candidate.Item{
		{ID: "1", Label: "Apple", Katakana: "アップル"},
		{ID: "3", Label: "Orange", Katakana: "オレンジ"},
		{ID: "5", Label: "Banana", Katakana: "バナナ"},
	}
	entries := []candidate.Entry{{}}
	for _, item := range items {
		entries = append(entries, candidate.NewEntry(item))
	}
	return rows.Build(entries, nil, rows.Options{}).Rows
}

func allIndices(rs []rows.Row) []int {
	out := make([]int, len(rs))
	for i := range rs {
		out[i] = i
	}
	return out
}

func TestPopupWindowScrollsToSelection(t *testing.T) {
	rs := fruitRows()
	items := allIndices(rs)

	tests := []struct {
		selected   int
		start, end int
	}{
		{-1, 0, 3},
		{0, 0, 3},
		{2, 0, 3},
		{3, 1, 4},
		{len(items) - 1, len(items) - 3, len(items)},
	}
	for _, tt := range tests {
		p := NewPopupComponent(rs, items, tt.selected, -1, 3, 40)
		start, end := p.Window()
		assert.Equal(t, tt.start, start, "selected %d", tt.selected)
		assert.Equal(t, tt.end, end, "selected %d", tt.selected)
	}
}

func TestPopupRender(t *testing.T) {
	rs := fruitRows()
	p := NewPopupComponent(rs, allIndices(rs), 2, 0, 20, 40)

	out := p.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(rs)+2)
	assert.Equal(t, len(rs)+2, p.Height())

	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
	assert.Contains(t, out, "未選択")
	assert.Contains(t, out, "> 1 : Apple")
	assert.Contains(t, out, "✓ ")
	assert.Contains(t, out, " ア ─")
}

func TestPopupEmpty(t *testing.T) {
	p := NewPopupComponent(fruitRows(), nil, -1, -1, 10, 40)
	assert.Equal(t, "", p.Render())
	assert.Equal(t, 0, p.Height())
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
	assert.Equal(t, "", fit("abc", 0))
}

func TestTailFitKeepsLabel(t *testing.T) {
	header := rows.HeaderText("ア")
	got := tailFit(header, 10)

	assert.True(t, strings.HasSuffix(got, " ア ─"))
	assert.LessOrEqual(t, len([]rune(got)), 10)
}
