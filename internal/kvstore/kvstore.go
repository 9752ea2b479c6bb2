// Package kvstore provides the durable key-value store every persistence
// layer is built on. The contract is deliberately small: a read returns the
// stored text or reports it absent, a write replaces the whole value. Storage
// failures are logged and swallowed — callers treat a failed write as ignored
// and a failed read as absent, so they can never crash the application.
package kvstore

import (
	"database/sql"
	"log/slog"
	"time"
)

// Store is the key-value collaborator backing all persistence. The
// implementation may vary (embedded database, in-memory map for tests)
// without changing this contract.
type Store interface {
	// Get returns the stored value for key, or ok=false if absent.
	Get(key string) (value string, ok bool)

	// Set replaces the stored value for key. Whole-value replace: two
	// concurrent writers to the same key follow last-write-wins.
	Set(key, value string)
}

// SQLite is the production Store backed by the embedded SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a Store backed by the given database. The kv_records
// table must exist (see database.Migrate).
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Get reads a single record. Any database error is logged and reported as
// an absent key.
func (s *SQLite) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Error("kvstore read failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

// Set upserts a single record. Errors are logged and swallowed.
func (s *SQLite) Set(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now(),
	)
	if err != nil {
		slog.Error("kvstore write failed", "key", key, "error", err)
	}
}

// Memory is an in-memory Store for tests.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.values[key] = value
}
