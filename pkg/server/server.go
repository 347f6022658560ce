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

// Package server implements the inbound BrainService gRPC endpoint. Each
// Chat call becomes one queued submission plus one suspended wait on its
// reply handle.
package server

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
	"github.com/gestalt-labs/brain/pkg/brain"
)

// BrainServer implements the BrainService gRPC server.
type BrainServer struct {
	brainv1.UnimplementedBrainServiceServer

	queue  *brain.Queue
	logger *zap.Logger
}

// NewBrainServer creates a BrainService server feeding the given queue.
func NewBrainServer(queue *brain.Queue, logger *zap.Logger) *BrainServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrainServer{queue: queue, logger: logger}
}

// Chat enqueues the event and suspends until its reply handle resolves.
// The enqueue always happens before the wait, so a call can never be lost
// between the two. Exactly one response or error is produced per call.
func (s *BrainServer) Chat(ctx context.Context, req *brainv1.ChatEvent) (*brainv1.ChatResponse, error) {
	sub := brain.NewSubmission(&brainv1.ChatEvent{
		Username: req.GetUsername(),
		Message:  req.GetMessage(),
	})
	if err := s.queue.Put(ctx, sub); err != nil {
		// Only a cancelled call reaches here; re-raise the cancellation.
		return nil, err
	}

	reply, err := sub.Reply.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Error("failed to process chat event",
			zap.String("submission_id", sub.ID),
			zap.String("username", req.GetUsername()),
			zap.Error(err))
		// Internal detail stays in the log, not in the response.
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return &brainv1.ChatResponse{Reply: reply}, nil
}
