// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package brain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestTracker_TrackedForFullLifetime(t *testing.T) {
	tr := NewTracker(zaptest.NewLogger(t))

	started := make(chan struct{})
	release := make(chan struct{})
	tr.Go(context.Background(), "blocked", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	// Membership is set before the goroutine even starts.
	assert.Equal(t, 1, tr.Len())

	<-started
	assert.Equal(t, 1, tr.Len())

	close(release)
	require.NoError(t, tr.AwaitPending(context.Background()))
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_AwaitPendingCoversLateSpawns(t *testing.T) {
	tr := NewTracker(zaptest.NewLogger(t))

	// The first task spawns a second one before finishing; the wait must
	// cover both.
	secondDone := make(chan struct{})
	tr.Go(context.Background(), "first", func(ctx context.Context) error {
		tr.Go(ctx, "second", func(ctx context.Context) error {
			defer close(secondDone)
			time.Sleep(20 * time.Millisecond)
			return nil
		})
		return nil
	})

	require.NoError(t, tr.AwaitPending(context.Background()))
	select {
	case <-secondDone:
	default:
		t.Fatal("AwaitPending returned before the late-spawned task finished")
	}
}

func TestTracker_AwaitPendingCancellation(t *testing.T) {
	tr := NewTracker(zaptest.NewLogger(t))

	release := make(chan struct{})
	defer close(release)
	tr.Go(context.Background(), "stuck", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := tr.AwaitPending(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTracker_PanicContained(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	tr := NewTracker(zap.New(core))

	tr.Go(context.Background(), "panics", func(ctx context.Context) error {
		panic("kaboom")
	})
	require.NoError(t, tr.AwaitPending(context.Background()))

	entries := logs.FilterMessage("background task panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "panics", entries[0].ContextMap()["task"])
}

func TestTracker_FailureLoggedSiblingsUnaffected(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	tr := NewTracker(zap.New(core))

	sibling := make(chan struct{})
	tr.Go(context.Background(), "fails", func(ctx context.Context) error {
		return errors.New("task error")
	})
	tr.Go(context.Background(), "survives", func(ctx context.Context) error {
		defer close(sibling)
		time.Sleep(20 * time.Millisecond)
		return nil
	})

	require.NoError(t, tr.AwaitPending(context.Background()))
	<-sibling

	entries := logs.FilterMessage("background task failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fails", entries[0].ContextMap()["task"])
}

func TestTracker_CancellationNotLoggedAsFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	tr := NewTracker(zap.New(core))

	tr.Go(context.Background(), "cancelled", func(ctx context.Context) error {
		return context.Canceled
	})
	require.NoError(t, tr.AwaitPending(context.Background()))

	assert.Zero(t, logs.Len())
}
