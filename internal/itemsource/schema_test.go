package itemsource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)

	item := s.Items
	assert.Equal(t, "object", item.Type)
	assert.ElementsMatch(t, []string{"id", "label"}, item.Required)

	id, ok := item.Properties.Get("id")
	require.True(t, ok)
	assert.Len(t, id.OneOf, 2)

	_, ok = item.Properties.Get("katakana")
	assert.True(t, ok)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "kanacombo items", decoded["title"])
	assert.Equal(t, false, decoded["items"].(map[string]any)["additionalProperties"])
}
