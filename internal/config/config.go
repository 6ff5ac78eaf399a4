// Package config handles configuration loading and validation for kanacombo.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"kanacombo/internal/candidate"
	"kanacombo/internal/rows"
)

// Config holds the complete kanacombo configuration.
type Config struct {
	// Combo configures the control and its popup.
	Combo ComboConfig `toml:"combo"`

	// Items configures where candidates come from.
	Items ItemsConfig `toml:"items"`

	// Log configures the log files.
	Log LogConfig `toml:"log"`
}

// ComboConfig holds control configuration.
type ComboConfig struct {
	// HistoryCapacity is the number of recent selections kept.
	HistoryCapacity int `toml:"history_capacity"`

	// MaxVisible is the number of popup rows shown at once.
	MaxVisible int `toml:"max_visible"`

	// Placeholder is the text of the "unselected" row.
	Placeholder string `toml:"placeholder"`

	// HistoryLabel is the label of the history section header.
	HistoryLabel string `toml:"history_label"`
}

// ItemsConfig holds candidate source configuration.
type ItemsConfig struct {
	// Path is a JSON or SQLite item file. Empty selects the built-in list.
	Path string `toml:"path"`

	// Table is the SQLite table read when Path is a database.
	Table string `toml:"table"`

	// Watch reloads Path when it changes on disk.
	Watch bool `toml:"watch"`

	// DebounceMs is how long the file must stay quiet before reloading.
	DebounceMs int `toml:"debounce_ms"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Dir is the directory holding kanacombo.log and events.log.
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Combo: ComboConfig{
			HistoryCapacity: candidate.DefaultHistoryCapacity,
			MaxVisible:      10,
			Placeholder:     rows.DefaultPlaceholderText,
			HistoryLabel:    rows.DefaultHistoryLabel,
		},
		Items: ItemsConfig{
			Table:      "items",
			DebounceMs: 150,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// RowOptions returns the row builder options for this configuration.
func (c *Config) RowOptions() rows.Options {
	return rows.Options{
		PlaceholderText: c.Combo.Placeholder,
		HistoryLabel:    c.Combo.HistoryLabel,
	}
}
