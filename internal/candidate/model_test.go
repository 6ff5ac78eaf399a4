package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItemsSynthesizesPlaceholder(t *testing.T) {
	m := NewModel(NewHistory(5))
	m.SetItems([]Item{
		{ID: "1", Label: "Apple", Katakana: "アップル"},
		{ID: "", Label: "Broken"},
		{ID: "3", Label: "Orange", Katakana: "オレンジ"},
	})

	entries := m.Entries()
	require.Len(t, entries, 3)

	assert.True(t, entries[0].IsPlaceholder())
	assert.Equal(t, Entry{}, entries[0])

	assert.Equal(t, Entry{
		ID:       "1",
		Label:    "1 : Apple",
		Katakana: "アップル",
		Tokens:   "アップル あっぷる appuru Apple 1",
	}, entries[1])
	assert.Equal(t, ID("3"), entries[2].ID)
}

func TestNewModelStartsWithPlaceholderOnly(t *testing.T) {
	m := NewModel(NewHistory(5))
	require.Len(t, m.Entries(), 1)
	assert.True(t, m.Entries()[0].IsPlaceholder())
}

func TestNewModelDefaultsToSharedHistory(t *testing.T) {
	assert.Same(t, Shared(), NewModel(nil).History())
}

func TestSetItemsPrunesHistory(t *testing.T) {
	h := NewHistory(5)
	h.Promote("1")
	h.Promote("2")

	m := NewModel(h)
	assert.False(t, m.SetItems([]Item{{ID: "1"}, {ID: "2"}, {ID: "3"}}))
	assert.Equal(t, []ID{"2", "1"}, h.Snapshot())

	assert.True(t, m.SetItems([]Item{{ID: "1"}, {ID: "3"}}))
	assert.Equal(t, []ID{"1"}, h.Snapshot())
}

func TestLookup(t *testing.T) {
	m := NewModel(NewHistory(5))
	m.SetItems([]Item{
		{ID: "1", Label: "Apple"},
		{ID: "1", Label: "Duplicate"},
	})

	e, ok := m.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "1 : Apple", e.Label)

	_, ok = m.Lookup("9")
	assert.False(t, ok)
}
