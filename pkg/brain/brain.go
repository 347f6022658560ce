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

// Package brain implements the orchestration core: the submission queue, the
// reply handle, the intake/route/handle loop, the task tracker, and the
// request-scoped context propagation that isolates concurrent submissions.
package brain

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gestalt-labs/brain/pkg/memory"
	"github.com/gestalt-labs/brain/pkg/statedb"
)

// Options configures a Brain. Queue and Pipeline are required; everything
// else degrades gracefully when absent.
type Options struct {
	Queue    *Queue
	Pipeline Processor

	// Store persists the orchestrator's BrainState across restarts.
	Store *statedb.Store

	// Memory is the shared vector collection exposed to pipeline call trees.
	Memory *memory.Collection

	// Stubs provides the outbound Gestalt stub published by the keeper.
	Stubs StubProvider

	// MaxInflight caps concurrently processing submissions. Zero means
	// unbounded, matching the original behavior; a cap is an optional
	// hardening knob, not a semantic change.
	MaxInflight int

	Logger *zap.Logger
}

// Brain is the central consumer of the submission queue. Run drives the
// intake -> route -> handle -> intake state machine, fanning each submission
// out into a tracked background task so the loop can immediately accept the
// next one.
type Brain struct {
	queue    *Queue
	tracker  *Tracker
	pipeline Processor
	store    *statedb.Store
	memory   *memory.Collection
	stubs    StubProvider
	logger   *zap.Logger
	sem      chan struct{}

	mu    sync.Mutex
	state *BrainState
}

// New creates a Brain from opts.
func New(opts Options) (*Brain, error) {
	if opts.Queue == nil {
		return nil, fmt.Errorf("brain: queue is required")
	}
	if opts.Pipeline == nil {
		return nil, fmt.Errorf("brain: pipeline is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var sem chan struct{}
	if opts.MaxInflight > 0 {
		sem = make(chan struct{}, opts.MaxInflight)
	}
	return &Brain{
		queue:    opts.Queue,
		tracker:  NewTracker(logger),
		pipeline: opts.Pipeline,
		store:    opts.Store,
		memory:   opts.Memory,
		stubs:    opts.Stubs,
		logger:   logger,
		sem:      sem,
		state:    &BrainState{},
	}, nil
}

// Tracker exposes the pending task set, mainly for tests and shutdown
// introspection.
func (b *Brain) Tracker() *Tracker {
	return b.tracker
}

// routeDecision is the pure routing step between intake and handling.
type routeDecision int

const (
	routeStop routeDecision = iota
	routeProcess
)

func route(sub *Submission) routeDecision {
	if sub == nil {
		return routeStop
	}
	return routeProcess
}

// Run executes the orchestrator loop until the shutdown sentinel is observed
// or ctx is cancelled. On the sentinel path every already-spawned background
// task is drained before Run returns.
func (b *Brain) Run(ctx context.Context) error {
	if b.store != nil {
		state, err := LoadState(ctx, b.store)
		if err != nil {
			return fmt.Errorf("brain: restore state: %w", err)
		}
		b.mu.Lock()
		b.state = state
		b.mu.Unlock()
	}

	for {
		b.logger.Info("brain waiting for submissions")
		sub, err := b.queue.Get(ctx)
		if err != nil {
			// Cancellation re-raises through the intake suspension point.
			return err
		}
		switch route(sub) {
		case routeStop:
			b.logger.Info("brain shutdown signalled, draining pending tasks",
				zap.Int("pending", b.tracker.Len()))
			if err := b.tracker.AwaitPending(ctx); err != nil {
				return err
			}
			b.logger.Info("brain stopped")
			return nil
		case routeProcess:
			b.logger.Info("brain received submission",
				zap.String("submission_id", sub.ID),
				zap.String("username", sub.Event.GetUsername()))
			b.handle(ctx, sub)
		}
	}
}

// handle spawns the submission's background task and immediately returns so
// the loop re-enters intake: accepting the next submission and finishing the
// previous one run concurrently on purpose.
func (b *Brain) handle(ctx context.Context, sub *Submission) {
	b.tracker.Go(ctx, "process_submission", func(taskCtx context.Context) error {
		if b.sem != nil {
			select {
			case b.sem <- struct{}{}:
				defer func() { <-b.sem }()
			case <-taskCtx.Done():
				sub.Reply.Reject(taskCtx.Err())
				return taskCtx.Err()
			}
		}
		return b.processSubmission(taskCtx, sub)
	})
}

// processSubmission runs the external pipeline for one submission and
// fulfils its reply handle exactly once, whatever happens.
func (b *Brain) processSubmission(ctx context.Context, sub *Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submission processing panicked: %v", r)
		}
		if err != nil {
			sub.Reply.Reject(err)
		}
	}()

	// Overwrite the orchestrator's state record and take the copy this
	// call tree will see. Siblings each get their own copy.
	b.mu.Lock()
	b.state.Username = sub.Event.GetUsername()
	b.state.Message = sub.Event.GetMessage()
	reqState := b.state.Clone()
	b.mu.Unlock()
	b.persist(ctx, sub.ID)

	reqCtx := WithState(ctx, reqState)
	if b.stubs != nil {
		if stub, ok := b.stubs.Stub(); ok {
			reqCtx = WithOutbound(reqCtx, stub)
		}
	}
	if b.memory != nil {
		reqCtx = WithCollection(reqCtx, b.memory)
	}

	prompt := sub.Event.GetMessage()
	if prompt == "" {
		prompt = "No message provided"
	}
	reply, err := b.pipeline.Process(reqCtx, prompt)
	if err != nil {
		return fmt.Errorf("process submission %s: %w", sub.ID, err)
	}

	b.mu.Lock()
	b.state.Reply = reply
	b.mu.Unlock()
	b.persist(ctx, sub.ID)
	b.remember(ctx, sub, reply)

	sub.Reply.Resolve(reply)
	return nil
}

// persist writes the current state record through to the store. Persistence
// failures are logged, not fatal: losing a checkpoint must not fail the
// submission.
func (b *Brain) persist(ctx context.Context, submissionID string) {
	if b.store == nil {
		return
	}
	b.mu.Lock()
	snapshot := b.state.Clone()
	b.mu.Unlock()
	if err := SaveState(ctx, b.store, snapshot); err != nil {
		b.logger.Warn("failed to persist brain state",
			zap.String("submission_id", submissionID),
			zap.Error(err))
	}
}

// remember records the exchange in the shared memory collection.
func (b *Brain) remember(ctx context.Context, sub *Submission, reply string) {
	if b.memory == nil {
		return
	}
	doc := fmt.Sprintf("%s: %s -> %s", sub.Event.GetUsername(), sub.Event.GetMessage(), reply)
	if err := b.memory.Add(ctx, uuid.NewString(), doc); err != nil {
		b.logger.Warn("failed to record exchange in memory",
			zap.String("submission_id", sub.ID),
			zap.Error(err))
	}
}
