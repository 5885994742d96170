// Package prefs stores small per-user preference files next to the
// config, outside the expense document. The document format is a
// compatibility contract; preferences are not part of it.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const searchesFile = "searches.json"

// SavedSearch is a named history-filter preset.
type SavedSearch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Term     string `json:"term"`
	Category string `json:"category"`
	Range    int    `json:"range"`
}

// NewSavedSearch returns a preset with a fresh id.
func NewSavedSearch(name, term, category string, dateRange int) SavedSearch {
	return SavedSearch{
		ID:       uuid.NewString(),
		Name:     name,
		Term:     term,
		Category: category,
		Range:    dateRange,
	}
}

func searchesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "fintrack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, searchesFile), nil
}

// SaveSearches writes the full preset list, replacing the file.
func SaveSearches(searches []SavedSearch) error {
	path, err := searchesPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(searches, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSearches reads the preset list; a missing file is an empty list.
func LoadSearches() ([]SavedSearch, error) {
	path, err := searchesPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var searches []SavedSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, err
	}
	return searches, nil
}
