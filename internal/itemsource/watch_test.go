package itemsource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanacombo/internal/candidate"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "items.json", `[{"id": 1, "label": "Apple"}]`)

	w, err := Watch(path, "", 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 2, "label": "Banana", "katakana": "ﾊﾞﾅﾅ"}]`), 0644))

	select {
	case items := <-w.Items():
		assert.Equal(t, []candidate.Item{{ID: "2", Label: "Banana", Katakana: "バナナ"}}, items)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsBadFile(t *testing.T) {
	path := writeFile(t, "items.json", `[]`)

	w, err := Watch(path, "", 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))

	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path := writeFile(t, "items.json", `[]`)

	w, err := Watch(path, "", 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	sibling := filepath.Join(filepath.Dir(path), "other.json")
	require.NoError(t, os.WriteFile(sibling, []byte(`[]`), 0644))

	select {
	case <-w.Items():
		t.Fatal("unexpected reload for sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := writeFile(t, "items.json", `[]`)

	w, err := Watch(path, "", 0)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
