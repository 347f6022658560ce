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
package pipeline

import (
	"context"

	"go.uber.org/zap"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
	"github.com/gestalt-labs/brain/pkg/brain"
)

// Broadcast decorates a processor so every reply is also sent back to the
// Gestalt peer over the outbound stub published in the request context. A
// broadcast failure (peer down, no stub published) is logged but never fails
// the submission: the reply already exists.
type Broadcast struct {
	Next   brain.Processor
	Logger *zap.Logger
}

// Process runs the wrapped processor and mirrors its reply outbound.
func (b Broadcast) Process(ctx context.Context, prompt string) (string, error) {
	reply, err := b.Next.Process(ctx, prompt)
	if err != nil {
		return "", err
	}

	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stub, ok := brain.OutboundFrom(ctx)
	if !ok {
		logger.Warn("no outbound stub published, skipping broadcast")
		return reply, nil
	}
	if _, err := stub.SendChatMessage(ctx, &brainv1.SendChatMessageRequest{Payload: reply}); err != nil {
		logger.Warn("failed to broadcast reply to gestalt", zap.Error(err))
	}
	return reply, nil
}

var _ brain.Processor = Broadcast{}
