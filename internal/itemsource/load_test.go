package itemsource

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanacombo/internal/candidate"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDecodeJSON(t *testing.T) {
	items, err := DecodeJSON(strings.NewReader(`[
		{"id": 1, "label": "Apple", "katakana": "アップル"},
		{"id": "b-2", "label": "Banana"},
		{"id": null, "label": "Nothing"},
		{"id": 3.5, "label": "Odd"}
	]`))
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, candidate.Item{ID: "1", Label: "Apple", Katakana: "アップル"}, items[0])
	assert.Equal(t, candidate.ID("b-2"), items[1].ID)
	assert.Equal(t, "", items[1].Katakana)
	assert.True(t, items[2].ID.IsNull())
	assert.Equal(t, candidate.ID("3.5"), items[3].ID)
}

func TestDecodeJSONRejectsBadInput(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"id": 1}`))
	assert.Error(t, err)

	_, err = DecodeJSON(strings.NewReader(`[{"id": true, "label": "x"}]`))
	assert.Error(t, err)
}

func TestNormalizeHalfWidthKatakana(t *testing.T) {
	items := Normalize([]candidate.Item{
		{ID: " 7 ", Label: "ﾚﾓﾝ", Katakana: " ﾚﾓﾝ "},
		{ID: "8", Label: "Ａｐｐｌｅ", Katakana: "ｱｯﾌﾟﾙ"},
	})

	assert.Equal(t, candidate.Item{ID: "7", Label: "レモン", Katakana: "レモン"}, items[0])
	assert.Equal(t, "Apple", items[1].Label)
	assert.Equal(t, "アップル", items[1].Katakana)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "items.json", `[{"id": 5, "label": "Banana", "katakana": "バナナ"}]`)

	items, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []candidate.Item{{ID: "5", Label: "Banana", Katakana: "バナナ"}}, items)
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func createDB(t *testing.T, table string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE ` + table + ` (id, label TEXT, katakana TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO `+table+` (id, label, katakana) VALUES
		(1, 'Apple', 'アップル'),
		('x9', 'Strawberry', 'ストロベリー'),
		(NULL, 'Ghost', NULL),
		(4, 'Grape', NULL)`)
	require.NoError(t, err)
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := createDB(t, "fruit")

	items, err := Load(path, "fruit")
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, candidate.Item{ID: "1", Label: "Apple", Katakana: "アップル"}, items[0])
	assert.Equal(t, candidate.ID("x9"), items[1].ID)
	assert.True(t, items[2].ID.IsNull())
	assert.Equal(t, "", items[3].Katakana)
}

func TestLoadSQLiteDefaultTable(t *testing.T) {
	path := createDB(t, DefaultTable)

	items, err := LoadSQLite(path, "")
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestLoadSQLiteErrors(t *testing.T) {
	path := createDB(t, "fruit")

	_, err := LoadSQLite(path, "fruit; DROP TABLE fruit")
	assert.ErrorContains(t, err, "invalid table name")

	_, err = LoadSQLite(path, "missing")
	assert.Error(t, err)

	_, err = LoadSQLite(filepath.Join(t.TempDir(), "absent.db"), "fruit")
	assert.Error(t, err)
}

func TestFruitFeedsModel(t *testing.T) {
	m := candidate.NewModel(candidate.NewHistory(0))
	m.SetItems(Fruit())

	// Placeholder plus ten fruits.
	assert.Len(t, m.Entries(), 11)
}
