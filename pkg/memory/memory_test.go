// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "vector.db"), "conversations")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestEmbed_Deterministic(t *testing.T) {
	a := Embed("hello world")
	b := Embed("hello world")
	assert.Equal(t, a, b)

	c := Embed("something else")
	assert.NotEqual(t, a, c)
}

func TestEmbed_Shape(t *testing.T) {
	vec := Embed("any text at all")
	require.Len(t, vec, EmbedDimensions)
	for _, v := range vec {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestCollection_AddAndLen(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "a", "the first document"))
	require.NoError(t, c.Add(ctx, "b", "the second document"))

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Same id replaces, not duplicates.
	require.NoError(t, c.Add(ctx, "a", "the first document, revised"))
	n, err = c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCollection_QueryRanksExactMatchFirst(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "greeting", "alice: hello there"))
	require.NoError(t, c.Add(ctx, "weather", "bob: it is raining again"))
	require.NoError(t, c.Add(ctx, "farewell", "carol: goodbye for now"))

	results, err := c.Query(ctx, "alice: hello there", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// An identical document embeds identically, so it scores 1.0 at the top.
	assert.Equal(t, "greeting", results[0].ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	assert.GreaterOrEqual(t, results[1].Score, results[2].Score)
}

func TestCollection_QueryLimits(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "only", "a single entry"))

	results, err := c.Query(ctx, "anything", 5)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = c.Query(ctx, "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCollection_NamespacedByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector.db")
	ctx := context.Background()

	first, err := Open(path, "conversations")
	require.NoError(t, err)
	defer func() { _ = first.Close() }()
	require.NoError(t, first.Add(ctx, "a", "in conversations"))

	second, err := Open(path, "facts")
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	n, err := second.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
