package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Combo.HistoryCapacity)
	assert.Equal(t, "未選択", cfg.Combo.Placeholder)
	assert.Equal(t, "History", cfg.Combo.HistoryLabel)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanacombo.toml")
	content := `
[combo]
history_capacity = 3
placeholder = "(none)"

[items]
path = "fruit.json"
watch = true

[log]
dir = "/tmp/kc"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Combo.HistoryCapacity)
	assert.Equal(t, "(none)", cfg.Combo.Placeholder)
	assert.Equal(t, "History", cfg.Combo.HistoryLabel)
	assert.Equal(t, 10, cfg.Combo.MaxVisible)
	assert.Equal(t, "fruit.json", cfg.Items.Path)
	assert.True(t, cfg.Items.Watch)
	assert.Equal(t, "items", cfg.Items.Table)
	assert.Equal(t, "/tmp/kc", cfg.Log.Dir)

	opts := cfg.RowOptions()
	assert.Equal(t, "(none)", opts.PlaceholderText)
	assert.Equal(t, "History", opts.HistoryLabel)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[combo\nhistory_capacity = "), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero capacity", func(c *Config) { c.Combo.HistoryCapacity = 0 }, "combo.history_capacity"},
		{"zero visible", func(c *Config) { c.Combo.MaxVisible = 0 }, "combo.max_visible"},
		{"table injection", func(c *Config) { c.Items.Table = "items; drop" }, "items.table"},
		{"watch without path", func(c *Config) { c.Items.Watch = true }, "items.watch"},
		{"negative debounce", func(c *Config) { c.Items.DebounceMs = -1 }, "items.debounce_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanacombo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[combo]\nhistory_capacity = -2\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "validation failed")
}
