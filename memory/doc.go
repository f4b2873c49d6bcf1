// Package memory implements the session memory bank: the single stateful
// container for a user's location, dietary goal, nearby-resource snapshot,
// and conversation history.
//
// Architecture:
//   - Session: the persisted record (one active session per Bank)
//   - Store: pluggable persistence backend (JSON file or SQLite)
//   - Bank: orchestrates mutations, derivation, and write-through persistence
//
// The Bank is an injectable instance, not a package-level singleton; callers
// construct one per process (or per tab/request scope) and pass it around.
// Every mutating operation updates the in-memory session first and then
// writes the full session through to the Store. Persistence is best-effort:
// store failures are logged and swallowed, and the in-memory operation still
// completes.
//
// The conversation stage (which piece of context the assistant still needs)
// is derived from field presence on every call and never stored, so a stale
// or contradictory stage cannot exist.
package memory
