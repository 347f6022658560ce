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

// Package app coordinates the lifecycle of the three top-level actors: the
// orchestrator loop, the inbound gRPC server, and the outbound channel
// keeper. The first actor to finish (or an external interrupt) triggers an
// ordered, idempotent teardown of the rest.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gestalt-labs/brain/pkg/brain"
)

// DefaultDrainTimeout bounds how long the teardown waits for the
// orchestrator to drain in-flight submissions before cancelling everything.
const DefaultDrainTimeout = 10 * time.Second

const (
	actorOrchestrator = "orchestrator"
	actorInbound      = "inbound"
	actorOutbound     = "outbound"
)

// Options configures an App.
type Options struct {
	Queue *brain.Queue

	// DrainTimeout overrides DefaultDrainTimeout when positive.
	DrainTimeout time.Duration

	Logger *zap.Logger
}

// App is the shutdown coordinator.
type App struct {
	queue        *brain.Queue
	drainTimeout time.Duration
	logger       *zap.Logger

	once     sync.Once
	shutdown chan struct{}
}

// New creates a coordinator for the given queue.
func New(opts Options) (*App, error) {
	if opts.Queue == nil {
		return nil, fmt.Errorf("app: queue is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	drain := opts.DrainTimeout
	if drain <= 0 {
		drain = DefaultDrainTimeout
	}
	return &App{
		queue:        opts.Queue,
		drainTimeout: drain,
		logger:       logger,
		shutdown:     make(chan struct{}),
	}, nil
}

// ShutdownChan returns the shared shutdown flag, closed once teardown
// begins. The inbound server's wait loop observes it.
func (a *App) ShutdownChan() <-chan struct{} {
	return a.shutdown
}

// Shutdown triggers the coordinated teardown: the shutdown sentinel goes on
// the queue and the shared flag closes. Safe to call from multiple paths.
func (a *App) Shutdown() {
	a.queue.Shutdown()
	a.once.Do(func() { close(a.shutdown) })
}

type result struct {
	name string
	err  error
}

// Run starts the three actors and blocks until coordinated shutdown
// completes. It returns an error only when an actor failed before the
// shutdown began; actors that merely unwound from the blanket cancellation
// have their exits logged, not propagated.
func (a *App) Run(ctx context.Context, orchestrator, inbound, outbound func(context.Context) error) error {
	actorCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan result, 3)
	start := func(name string, fn func(context.Context) error) {
		a.logger.Info("starting actor", zap.String("actor", name))
		go func() { results <- result{name: name, err: fn(actorCtx)} }()
	}
	start(actorOrchestrator, orchestrator)
	start(actorInbound, inbound)
	start(actorOutbound, outbound)

	// First-completed-wins race between the actors and external cancellation.
	remaining := 3
	var first *result
	select {
	case r := <-results:
		remaining--
		first = &r
		a.logResult(r)
	case <-ctx.Done():
		a.logger.Info("cancellation requested, shutting down brain services")
	}

	// Ordered teardown: sentinel and flag first so the orchestrator can
	// drain and the inbound server can stop gracefully. Cancellation is
	// the backstop for anything still parked once the drain window ends.
	a.Shutdown()
	drainGuard := time.AfterFunc(a.drainTimeout, cancel)

	orchestratorDone := first != nil && first.name == actorOrchestrator
	for remaining > 0 && !orchestratorDone {
		r := <-results
		remaining--
		a.logResult(r)
		if r.name == actorOrchestrator {
			orchestratorDone = true
		}
	}
	drainGuard.Stop()
	cancel()
	for remaining > 0 {
		r := <-results
		remaining--
		a.logResult(r)
	}
	a.logger.Info("shutdown complete")

	// Only a failure that preceded the coordinated shutdown is the
	// process's failure; everything after it was asked to stop.
	if first != nil && first.err != nil && !isCancellation(first.err) {
		return fmt.Errorf("%s: %w", first.name, first.err)
	}
	return nil
}

func (a *App) logResult(r result) {
	switch {
	case r.err == nil:
		a.logger.Info("actor finished", zap.String("actor", r.name))
	case isCancellation(r.err):
		a.logger.Info("actor cancelled", zap.String("actor", r.name))
	default:
		a.logger.Error("actor failed", zap.String("actor", r.name), zap.Error(r.err))
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
