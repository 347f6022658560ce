// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gestalt-labs/brain/pkg/brain"
)

func newTestApp(t *testing.T, queue *brain.Queue) *App {
	t.Helper()
	a, err := New(Options{
		Queue:        queue,
		DrainTimeout: 2 * time.Second,
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return a
}

// drainingOrchestrator consumes the queue until the shutdown sentinel.
func drainingOrchestrator(queue *brain.Queue) func(context.Context) error {
	return func(ctx context.Context) error {
		for {
			sub, err := queue.Get(ctx)
			if err != nil {
				return err
			}
			if sub == nil {
				return nil
			}
		}
	}
}

// parkedActor blocks until cancellation, like the outbound keeper.
func parkedActor(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// flaggedActor exits cleanly once the shutdown flag closes, like the
// inbound server.
func flaggedActor(shutdown <-chan struct{}) func(context.Context) error {
	return func(ctx context.Context) error {
		select {
		case <-shutdown:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func TestApp_TriggeredShutdownExitsClean(t *testing.T) {
	queue := brain.NewQueue(8)
	a := newTestApp(t, queue)

	go func() {
		time.Sleep(20 * time.Millisecond)
		a.Shutdown()
	}()

	err := a.Run(context.Background(),
		drainingOrchestrator(queue),
		flaggedActor(a.ShutdownChan()),
		parkedActor)
	assert.NoError(t, err)
}

func TestApp_ExternalCancellationExitsClean(t *testing.T) {
	queue := brain.NewQueue(8)
	a := newTestApp(t, queue)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := a.Run(ctx,
		drainingOrchestrator(queue),
		flaggedActor(a.ShutdownChan()),
		parkedActor)
	assert.NoError(t, err)
}

func TestApp_ActorFailurePropagates(t *testing.T) {
	queue := brain.NewQueue(8)
	a := newTestApp(t, queue)

	boom := errors.New("listen tcp: address already in use")
	failing := func(ctx context.Context) error { return boom }

	err := a.Run(context.Background(),
		drainingOrchestrator(queue),
		failing,
		parkedActor)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "inbound")
}

func TestApp_CancellationFlavoredExitNotAFailure(t *testing.T) {
	queue := brain.NewQueue(8)
	a := newTestApp(t, queue)

	// An actor surfacing context.Canceled asked to stop, it did not fail.
	cancelled := func(ctx context.Context) error { return context.Canceled }

	err := a.Run(context.Background(),
		drainingOrchestrator(queue),
		flaggedActor(a.ShutdownChan()),
		cancelled)
	assert.NoError(t, err)
}

func TestApp_WaitsForOrchestratorDrain(t *testing.T) {
	queue := brain.NewQueue(8)
	a := newTestApp(t, queue)

	release := make(chan struct{})
	orchestrator := func(ctx context.Context) error {
		for {
			sub, err := queue.Get(ctx)
			if err != nil {
				return err
			}
			if sub == nil {
				// Simulate in-flight work outliving the sentinel.
				<-release
				return nil
			}
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background(),
			orchestrator,
			flaggedActor(a.ShutdownChan()),
			parkedActor)
	}()

	a.Shutdown()

	select {
	case <-done:
		t.Fatal("Run returned before the orchestrator finished draining")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after drain completed")
	}
}

func TestApp_DrainTimeoutForcesCancellation(t *testing.T) {
	queue := brain.NewQueue(8)
	a, err := New(Options{
		Queue:        queue,
		DrainTimeout: 50 * time.Millisecond,
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	// An orchestrator that ignores the sentinel and only reacts to
	// cancellation still cannot wedge shutdown.
	stubborn := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	go a.Shutdown()
	err = a.Run(context.Background(),
		stubborn,
		flaggedActor(a.ShutdownChan()),
		parkedActor)
	assert.NoError(t, err)
}

func TestApp_RequiresQueue(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}
