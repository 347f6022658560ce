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

// Package memory provides a small persistent vector collection with a cheap,
// deterministic embedding. It exists so pipeline tools have a shared memory
// handle without any remote embedding dependency.
package memory

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	_ "modernc.org/sqlite"
)

// EmbedDimensions is the length of every embedding vector.
const EmbedDimensions = 128

// Embed produces a deterministic embedding for text: the sha256 digest
// repeated across the vector, scaled into [0, 1].
func Embed(text string) []float32 {
	digest := sha256.Sum256([]byte(text))
	const scale = 1.0 / 255.0
	vec := make([]float32, EmbedDimensions)
	for i := range vec {
		vec[i] = float32(digest[i%len(digest)]) * scale
	}
	return vec
}

// Result is one Query hit.
type Result struct {
	ID       string
	Document string
	Score    float64
}

// Collection is a named set of documents with their embeddings, persisted in
// an embedded SQLite database.
type Collection struct {
	db   *sql.DB
	name string
}

// Open opens (creating if necessary) the named collection at path.
func Open(path, name string) (*Collection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("memory: open %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("memory: enable WAL: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id         TEXT NOT NULL,
		collection TEXT NOT NULL,
		document   TEXT NOT NULL,
		embedding  BLOB NOT NULL,
		PRIMARY KEY (collection, id)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("memory: init schema: %w", err)
	}
	return &Collection{db: db, name: name}, nil
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Add stores document under id, replacing any previous entry.
func (c *Collection) Add(ctx context.Context, id, document string) error {
	embedding, err := json.Marshal(Embed(document))
	if err != nil {
		return fmt.Errorf("memory: encode embedding: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO entries (id, collection, document, embedding) VALUES (?, ?, ?, ?)
		 ON CONFLICT(collection, id) DO UPDATE SET document = excluded.document, embedding = excluded.embedding`,
		id, c.name, document, embedding)
	if err != nil {
		return fmt.Errorf("memory: add %q: %w", id, err)
	}
	return nil
}

// Len returns the number of entries in the collection.
func (c *Collection) Len(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entries WHERE collection = ?", c.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("memory: count entries: %w", err)
	}
	return n, nil
}

// Query returns up to n documents ranked by cosine similarity to text.
func (c *Collection) Query(ctx context.Context, text string, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	query := Embed(text)
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, document, embedding FROM entries WHERE collection = ?", c.name)
	if err != nil {
		return nil, fmt.Errorf("memory: query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			id, document string
			encoded      []byte
		)
		if err := rows.Scan(&id, &document, &encoded); err != nil {
			return nil, fmt.Errorf("memory: scan entry: %w", err)
		}
		var embedding []float32
		if err := json.Unmarshal(encoded, &embedding); err != nil {
			return nil, fmt.Errorf("memory: decode embedding for %q: %w", id, err)
		}
		results = append(results, Result{
			ID:       id,
			Document: document,
			Score:    cosine(query, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("memory: iterate entries: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// Close closes the underlying database.
func (c *Collection) Close() error {
	return c.db.Close()
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
