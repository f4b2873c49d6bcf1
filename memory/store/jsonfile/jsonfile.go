// Package jsonfile persists the session as a single JSON document at a
// fixed path, mirroring the one-key browser-local record the web app uses.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nutrichat/nutrichat-go/memory"
)

// schemaVersion is bumped when the record layout changes; loads reject
// versions they don't understand instead of misreading them.
const schemaVersion = 1

// record wraps the session with a version field. Timestamps inside the
// session are typed time.Time, so encoding/json parses the RFC3339 strings
// back into real time values on load; a raw-string timestamp cannot survive
// a round trip here.
type record struct {
	SchemaVersion int             `json:"schemaVersion"`
	Session       *memory.Session `json:"session"`
}

// Store reads and writes the session document.
type Store struct {
	path string
}

// New creates a store at the given file path. The parent directory is
// created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. Missing file means no session.
func (s *Store) Load() (*memory.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if rec.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("unsupported session schema version %d", rec.SchemaVersion)
	}
	return rec.Session, nil
}

// Save writes the full session, replacing the previous record. The write
// goes through a temp file and rename so a crash can't leave a torn record.
func (s *Store) Save(sess *memory.Session) error {
	data, err := json.Marshal(record{SchemaVersion: schemaVersion, Session: sess})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the record. Clearing an absent record is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
