// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package statedb provides a durable string-keyed mapping with ordinary
// get/set/delete semantics, backed by an embedded SQLite database. Each
// operation is individually atomic; no multi-key transactions are offered.
package statedb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a key is absent from the store.
var ErrNotFound = errors.New("statedb: key not found")

// Store is a SQLite-backed persistent key/value mapping. Values are JSON
// encoded, so anything json.Marshal accepts round-trips.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the store at path. ":memory:" works for
// tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("statedb: open %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("statedb: enable WAL: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("statedb: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("statedb: encode value for %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, encoded)
	if err != nil {
		return fmt.Errorf("statedb: set %q: %w", key, err)
	}
	return nil
}

// Get decodes the value stored under key into out. Returns ErrNotFound when
// the key is absent.
func (s *Store) Get(ctx context.Context, key string, out any) error {
	var encoded []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM state WHERE key = ?", key).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("statedb: get %q: %w", key, err)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("statedb: decode value for %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Returns ErrNotFound when absent.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM state WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("statedb: delete %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("statedb: delete %q: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return nil
}

// Keys returns every stored key in lexical order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM state ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("statedb: list keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("statedb: scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("statedb: iterate keys: %w", err)
	}
	return keys, nil
}

// Len returns the number of entries in the store.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM state").Scan(&n); err != nil {
		return 0, fmt.Errorf("statedb: count entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
