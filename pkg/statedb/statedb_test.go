// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package statedb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "username", "alice"))

	var got string
	require.NoError(t, store.Get(ctx, "username", &got))
	assert.Equal(t, "alice", got)
}

func TestStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "reply", "first"))
	require.NoError(t, store.Set(ctx, "reply", "second"))

	var got string
	require.NoError(t, store.Get(ctx, "reply", &got))
	assert.Equal(t, "second", got)
}

func TestStore_StructValues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, store.Set(ctx, "rec", record{Name: "alice", Count: 3}))

	var got record
	require.NoError(t, store.Get(ctx, "rec", &got))
	assert.Equal(t, record{Name: "alice", Count: 3}, got)
}

func TestStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got string
	err := store.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "username", "alice"))
	require.NoError(t, store.Delete(ctx, "username"))

	var got string
	assert.ErrorIs(t, store.Get(ctx, "username", &got), ErrNotFound)

	// Deleting a key that is already gone reports not found.
	assert.ErrorIs(t, store.Delete(ctx, "username"), ErrNotFound)
}

func TestStore_KeysAndLen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "username", "alice"))
	require.NoError(t, store.Set(ctx, "message", "hi"))
	require.NoError(t, store.Set(ctx, "reply", "yo"))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"message", "reply", "username"}, keys)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "username", "alice"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	var got string
	require.NoError(t, reopened.Get(ctx, "username", &got))
	assert.Equal(t, "alice", got)
}
