// Package sqlite persists the session in an embedded SQLite database.
// The sessions table holds at most one row; saves replace it wholesale.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/memory"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
	version INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	location TEXT,
	dietary_goal TEXT,
	nearby_resources TEXT NOT NULL,
	conversation_history TEXT NOT NULL,
	last_updated TEXT NOT NULL
);
`

// Store persists the session in SQLite. Structured columns hold the
// session fields as JSON text; last_updated is RFC3339 so the timestamp
// survives the round trip as a real time value.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. WAL mode keeps concurrent reads from blocking on writes.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	var version int
	err = db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec("INSERT INTO schema_info (version) VALUES (?)", schemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		db.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		db.Close()
		return nil, fmt.Errorf("unsupported session schema version %d", version)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted session. An empty table means no session.
func (s *Store) Load() (*memory.Session, error) {
	row := s.db.QueryRow(`
		SELECT id, location, dietary_goal, nearby_resources, conversation_history, last_updated
		FROM sessions LIMIT 1`)

	var (
		sess        memory.Session
		location    sql.NullString
		goal        sql.NullString
		resources   string
		history     string
		lastUpdated string
	)
	err := row.Scan(&sess.SessionID, &location, &goal, &resources, &history, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if location.Valid {
		sess.Location = &core.UserLocation{}
		if err := json.Unmarshal([]byte(location.String), sess.Location); err != nil {
			return nil, fmt.Errorf("parse location: %w", err)
		}
	}
	if goal.Valid {
		sess.DietaryGoal = &core.DietaryGoal{}
		if err := json.Unmarshal([]byte(goal.String), sess.DietaryGoal); err != nil {
			return nil, fmt.Errorf("parse dietary goal: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(resources), &sess.NearbyResources); err != nil {
		return nil, fmt.Errorf("parse nearby resources: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &sess.ConversationHistory); err != nil {
		return nil, fmt.Errorf("parse conversation history: %w", err)
	}
	sess.LastUpdated, err = time.Parse(time.RFC3339Nano, lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("parse last updated: %w", err)
	}
	return &sess, nil
}

// Save replaces the stored session with the given one.
func (s *Store) Save(sess *memory.Session) error {
	var location, goal any
	if sess.Location != nil {
		data, err := json.Marshal(sess.Location)
		if err != nil {
			return fmt.Errorf("marshal location: %w", err)
		}
		location = string(data)
	}
	if sess.DietaryGoal != nil {
		data, err := json.Marshal(sess.DietaryGoal)
		if err != nil {
			return fmt.Errorf("marshal dietary goal: %w", err)
		}
		goal = string(data)
	}
	resources, err := json.Marshal(sess.NearbyResources)
	if err != nil {
		return fmt.Errorf("marshal nearby resources: %w", err)
	}
	history, err := json.Marshal(sess.ConversationHistory)
	if err != nil {
		return fmt.Errorf("marshal conversation history: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO sessions (id, location, dietary_goal, nearby_resources, conversation_history, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.SessionID, location, goal, string(resources), string(history),
		sess.LastUpdated.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return tx.Commit()
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
