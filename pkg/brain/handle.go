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
)

// ReplyHandle is a single-assignment container linking a submission to its
// eventual reply or failure. Resolve and Reject may each be called any number
// of times from any goroutine, but only the first call wins; later calls are
// no-ops and report false. The first result is never overwritten.
type ReplyHandle struct {
	once  sync.Once
	done  chan struct{}
	reply string
	err   error
}

// NewReplyHandle creates an unresolved reply handle.
func NewReplyHandle() *ReplyHandle {
	return &ReplyHandle{done: make(chan struct{})}
}

// Resolve fulfils the handle with a reply. Returns true if this call won.
func (h *ReplyHandle) Resolve(reply string) bool {
	won := false
	h.once.Do(func() {
		h.reply = reply
		won = true
		close(h.done)
	})
	return won
}

// Reject fulfils the handle with a failure. Returns true if this call won.
func (h *ReplyHandle) Reject(err error) bool {
	won := false
	h.once.Do(func() {
		h.err = err
		won = true
		close(h.done)
	})
	return won
}

// Done returns a channel closed once the handle is resolved or rejected.
func (h *ReplyHandle) Done() <-chan struct{} {
	return h.done
}

// Resolved reports whether the handle has been fulfilled.
func (h *ReplyHandle) Resolved() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the handle is fulfilled or ctx is cancelled. A cancelled
// wait returns ctx.Err() unchanged so cancellation propagates to the caller.
func (h *ReplyHandle) Wait(ctx context.Context) (string, error) {
	select {
	case <-h.done:
		return h.reply, h.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
