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
package brain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gestalt-labs/brain/internal/csync"
)

// Tracker registers every spawned background task and surfaces uncaught
// failures without crashing siblings. A task is a member of the pending set
// from before its goroutine starts until its cleanup runs, with no gap.
type Tracker struct {
	logger *zap.Logger
	tasks  *csync.Map[string, string]
	change chan struct{}
}

// NewTracker creates an empty tracker.
func NewTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		logger: logger,
		tasks:  csync.NewMap[string, string](),
		change: make(chan struct{}, 1),
	}
}

// Go spawns fn as a tracked background task. A non-cancellation error or a
// panic is logged and contained: one submission's failure never aborts
// sibling submissions or the orchestrator loop.
func (t *Tracker) Go(ctx context.Context, name string, fn func(context.Context) error) {
	id := uuid.NewString()
	t.tasks.Set(id, name)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("background task panicked",
					zap.String("task", name),
					zap.String("task_id", id),
					zap.Any("panic", r))
			}
			t.tasks.Delete(id)
			select {
			case t.change <- struct{}{}:
			default:
			}
		}()
		if err := fn(ctx); err != nil && !isCancellation(err) {
			t.logger.Error("background task failed",
				zap.String("task", name),
				zap.String("task_id", id),
				zap.Error(err))
		}
	}()
}

// Len returns the number of in-flight tasks.
func (t *Tracker) Len() int {
	return t.tasks.Len()
}

// AwaitPending blocks until the pending set is empty, re-checking membership
// after every completion because new tasks may be spawned while waiting.
// A cancelled wait returns ctx.Err().
func (t *Tracker) AwaitPending(ctx context.Context) error {
	for t.tasks.Len() > 0 {
		select {
		case <-t.change:
		case <-ctx.Done():
			return fmt.Errorf("awaiting %d pending tasks: %w", t.tasks.Len(), ctx.Err())
		}
	}
	return nil
}

// isCancellation reports whether err is a context cancellation rather than a
// genuine failure. Cancellation is never treated as an error.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
