package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/memory"
)

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))
	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session for missing file, got %+v", sess)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested", "session.json"))

	updated := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	goal := core.DietaryGoal{Type: core.GoalSnapBenefits, Description: "stretch SNAP dollars"}
	sess := &memory.Session{
		SessionID: "session_test",
		Location: &core.UserLocation{
			Neighborhood: "Harlem",
			Coordinates:  &core.Coordinates{Lat: 40.8116, Lng: -73.9465},
		},
		DietaryGoal: &goal,
		ConversationHistory: []core.ConversationMessage{
			{Role: core.RoleUser, Content: "hi", Timestamp: updated},
		},
		LastUpdated: updated,
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected session, got nil")
	}
	if loaded.SessionID != sess.SessionID {
		t.Errorf("session id = %q, want %q", loaded.SessionID, sess.SessionID)
	}
	if loaded.Location == nil || loaded.Location.Coordinates == nil {
		t.Fatal("location did not survive round trip")
	}
	if loaded.Location.Coordinates.Lat != 40.8116 {
		t.Errorf("lat = %v, want 40.8116", loaded.Location.Coordinates.Lat)
	}
	if !loaded.LastUpdated.Equal(updated) {
		t.Errorf("lastUpdated = %v, want %v", loaded.LastUpdated, updated)
	}
	if len(loaded.ConversationHistory) != 1 || !loaded.ConversationHistory[0].Timestamp.Equal(updated) {
		t.Errorf("history timestamp did not round-trip: %+v", loaded.ConversationHistory)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))

	if err := store.Save(&memory.Session{SessionID: "session_one"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := store.Save(&memory.Session{SessionID: "session_two"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SessionID != "session_two" {
		t.Errorf("session id = %q, want session_two", loaded.SessionID)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestLoadWrongSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"schemaVersion":99,"session":{"sessionId":"x"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected error for unknown schema version")
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := New(path)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}

	if err := store.Save(&memory.Session{SessionID: "session_x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	sess, err := store.Load()
	if err != nil || sess != nil {
		t.Fatalf("after Clear: session=%v err=%v, want nil/nil", sess, err)
	}
}
