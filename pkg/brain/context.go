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
	"github.com/gestalt-labs/brain/pkg/memory"
)

// Request-scoped values ride on the context of each submission's call tree.
// A task that sets a value exposes it only to the sub-calls it makes, never
// to sibling tasks: sibling isolation falls out of context chaining, so no
// locking discipline is needed here.

type stateKey struct{}
type outboundKey struct{}
type collectionKey struct{}

// WithState returns a context carrying the submission's BrainState copy.
func WithState(ctx context.Context, state *BrainState) context.Context {
	return context.WithValue(ctx, stateKey{}, state)
}

// StateFrom returns the BrainState of the current call tree, if any.
func StateFrom(ctx context.Context) (*BrainState, bool) {
	state, ok := ctx.Value(stateKey{}).(*BrainState)
	return state, ok
}

// WithOutbound returns a context carrying the current Gestalt stub.
func WithOutbound(ctx context.Context, stub brainv1.GestaltServiceClient) context.Context {
	return context.WithValue(ctx, outboundKey{}, stub)
}

// OutboundFrom returns the Gestalt stub of the current call tree, if any.
// Absence means the outbound channel keeper has not published a connection.
func OutboundFrom(ctx context.Context) (brainv1.GestaltServiceClient, bool) {
	stub, ok := ctx.Value(outboundKey{}).(brainv1.GestaltServiceClient)
	return stub, ok
}

// WithCollection returns a context carrying the shared memory collection.
func WithCollection(ctx context.Context, col *memory.Collection) context.Context {
	return context.WithValue(ctx, collectionKey{}, col)
}

// CollectionFrom returns the memory collection of the current call tree.
func CollectionFrom(ctx context.Context) (*memory.Collection, bool) {
	col, ok := ctx.Value(collectionKey{}).(*memory.Collection)
	return col, ok
}
