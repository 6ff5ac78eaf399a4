// Package itemsource loads candidate items from files and keeps them fresh.
package itemsource

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/text/unicode/norm"

	"kanacombo/internal/candidate"
	"kanacombo/internal/logger"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "items"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// rawID accepts both string and numeric ids in item files.
type rawID string

func (id *rawID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rawID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = rawID(n.String())
	return nil
}

// Record is one entry of an item file.
type Record struct {
	ID       rawID  `json:"id" jsonschema:"required" jsonschema_description:"Unique identifier, string or integer. Records without an id are ignored."`
	Label    string `json:"label" jsonschema:"required" jsonschema_description:"Display label."`
	Katakana string `json:"katakana,omitempty" jsonschema_description:"Katakana reading used for grouping and transliterated search. Half-width katakana is accepted."`
}

// Load reads items from path. Files ending in .db, .sqlite or .sqlite3 are
// read from table, anything else is parsed as a JSON array of records.
func Load(path, table string) ([]candidate.Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, table)
	}
	return LoadJSON(path)
}

// LoadJSON reads a JSON item file. A path of "-" reads standard input.
func LoadJSON(path string) ([]candidate.Item, error) {
	if path == "-" {
		return DecodeJSON(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open item file: %w", err)
	}
	defer f.Close()

	items, err := DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded %d items from %s", len(items), path)
	return items, nil
}

// DecodeJSON parses a JSON array of records from r.
func DecodeJSON(r io.Reader) ([]candidate.Item, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]candidate.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, candidate.Item{
			ID:       candidate.ID(rec.ID),
			Label:    rec.Label,
			Katakana: rec.Katakana,
		})
	}
	return Normalize(items), nil
}

// LoadSQLite reads items from the id, label and katakana columns of table.
func LoadSQLite(path, table string) ([]candidate.Item, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open item database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open item database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT id, label, katakana FROM %s ORDER BY rowid", table))
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []candidate.Item
	for rows.Next() {
		var (
			id       any
			label    sql.NullString
			katakana sql.NullString
		)
		if err := rows.Scan(&id, &label, &katakana); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, candidate.Item{
			ID:       columnID(id),
			Label:    label.String,
			Katakana: katakana.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	logger.Debug("loaded %d items from %s:%s", len(items), path, table)
	return Normalize(items), nil
}

func columnID(v any) candidate.ID {
	switch id := v.(type) {
	case nil:
		return ""
	case []byte:
		return candidate.ID(id)
	case string:
		return candidate.ID(id)
	default:
		return candidate.ID(fmt.Sprint(id))
	}
}

// Normalize applies NFKC to labels and readings so that half-width
// katakana groups and matches like its full-width form.
func Normalize(items []candidate.Item) []candidate.Item {
	for i := range items {
		items[i].ID = candidate.ID(strings.TrimSpace(string(items[i].ID)))
		items[i].Label = norm.NFKC.String(items[i].Label)
		items[i].Katakana = strings.TrimSpace(norm.NFKC.String(items[i].Katakana))
	}
	return items
}
