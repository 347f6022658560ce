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

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
)

// Processor is the external processing pipeline: an opaque callable that
// takes a prompt and produces a reply. How the reply is computed is not the
// orchestrator's concern.
type Processor interface {
	Process(ctx context.Context, prompt string) (string, error)
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx context.Context, prompt string) (string, error)

// Process calls fn.
func (fn ProcessorFunc) Process(ctx context.Context, prompt string) (string, error) {
	return fn(ctx, prompt)
}

// StubProvider exposes the outbound Gestalt stub currently published by the
// channel keeper, if one is live.
type StubProvider interface {
	Stub() (brainv1.GestaltServiceClient, bool)
}
