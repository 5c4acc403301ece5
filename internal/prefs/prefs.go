package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persists small string preferences as JSON under a config directory.
// Every value carries an expiry; reads past the expiry behave as missing.
// Callers own validation of the returned string (the store is shape-agnostic).
type Store struct {
	Dir string
}

const fileName = "prefs.json"

// PageSizeKey is the one preference the list controller persists.
const (
	PageSizeKey     = "pageSize"
	PageSizeTTLDays = 365
)

type entry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

func (s Store) path() string { return filepath.Join(s.Dir, fileName) }

// load never fails: a missing or corrupted file is an empty store.
func (s Store) load() map[string]entry {
	out := map[string]entry{}
	if strings.TrimSpace(s.Dir) == "" {
		return out
	}
	b, err := os.ReadFile(s.path())
	if err != nil {
		return out
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]entry{}
	}
	return out
}

// Get returns the stored value for key, or def when the key is missing,
// unreadable, or expired.
func (s Store) Get(key, def string) string {
	e, ok := s.load()[key]
	if !ok || e.Value == "" {
		return def
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		return def
	}
	return e.Value
}

// Set writes the value with an expiry ttlDays from now (0 = no expiry).
func (s Store) Set(key, value string, ttlDays int) error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("prefs: no config dir")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	m := s.load()
	e := entry{Value: value}
	if ttlDays > 0 {
		e.ExpiresAt = time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
	}
	m[key] = e

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0o600)
}
