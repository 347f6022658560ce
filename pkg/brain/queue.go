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
	"sync"

	"github.com/google/uuid"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
)

// DefaultQueueSize is the default submission queue capacity.
const DefaultQueueSize = 64

// Submission pairs one inbound chat event with its reply handle. Exactly one
// submission is produced per inbound Chat call and exactly one resolution
// (success or failure) occurs per submission.
type Submission struct {
	ID    string
	Event *brainv1.ChatEvent
	Reply *ReplyHandle
}

// NewSubmission wraps an inbound chat event with a fresh reply handle.
func NewSubmission(event *brainv1.ChatEvent) *Submission {
	return &Submission{
		ID:    uuid.NewString(),
		Event: event,
		Reply: NewReplyHandle(),
	}
}

// Queue is the FIFO channel between the inbound gRPC service and the
// orchestrator loop. A nil submission is the in-band shutdown sentinel:
// submissions enqueued before the sentinel are still consumed, anything
// after it is never observed.
type Queue struct {
	ch       chan *Submission
	shutdown sync.Once
}

// NewQueue creates a queue with the given capacity (DefaultQueueSize if <= 0).
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan *Submission, size)}
}

// Put enqueues a submission, blocking while the queue is full. It fails only
// when ctx is cancelled first.
func (q *Queue) Put(ctx context.Context, sub *Submission) error {
	select {
	case q.ch <- sub:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get dequeues the next submission in FIFO order, blocking until one is
// available. A nil submission with nil error means shutdown was signalled.
// A cancelled wait returns ctx.Err().
func (q *Queue) Get(ctx context.Context) (*Submission, error) {
	select {
	case sub := <-q.ch:
		return sub, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shutdown places the shutdown sentinel on the queue. Safe to call from
// multiple shutdown paths: only the first call enqueues the sentinel, and a
// sentinel left unconsumed after the loop has exited is not an error.
func (q *Queue) Shutdown() {
	q.shutdown.Do(func() {
		select {
		case q.ch <- nil:
		default:
			// Queue full: hand the sentinel off without blocking the
			// shutdown path. The consumer drains submissions ahead of it.
			go func() { q.ch <- nil }()
		}
	})
}
