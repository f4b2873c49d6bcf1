package memory

// Store is the persistence backend for the session record.
// Implementations: jsonfile (single JSON document, mirrors the original
// browser-local record) and sqlite (embedded database with a schema version).
type Store interface {
	// Load reads the persisted session. A missing record returns (nil, nil);
	// a corrupt record returns an error, which the Bank treats as "no
	// session" rather than propagating.
	Load() (*Session, error)

	// Save writes the full session, replacing any previous record.
	Save(s *Session) error

	// Clear removes the persisted record entirely.
	Clear() error
}
