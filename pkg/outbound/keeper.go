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

// Package outbound keeps a long-lived client connection to the Gestalt peer
// alive for the lifetime of the process and publishes its stub to anyone who
// needs to call out.
package outbound

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
)

// ErrUnavailable is returned by Send when no connection is currently
// published. Recoverable: retry once the keeper is running.
var ErrUnavailable = errors.New("outbound: gestalt stub is not available")

// Keeper owns the outbound Gestalt connection. The stub is published for the
// scope of Run and cleared on the way out, so lookups after cancellation
// report unavailable instead of returning a stale handle.
type Keeper struct {
	target string
	logger *zap.Logger

	mu   sync.RWMutex
	stub brainv1.GestaltServiceClient
}

// NewKeeper creates a keeper for the already-resolved target address.
func NewKeeper(target string, logger *zap.Logger) *Keeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Keeper{target: target, logger: logger}
}

// Target returns the resolved outbound address.
func (k *Keeper) Target() string {
	return k.target
}

// Run opens the outbound channel, publishes the stub, and parks until ctx is
// cancelled. The connection dials lazily, so a peer that is down does not
// fail Run; calls through the stub report their own unavailability.
func (k *Keeper) Run(ctx context.Context) error {
	conn, err := grpc.NewClient(k.target,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("outbound: connect %s: %w", k.target, err)
	}

	k.mu.Lock()
	k.stub = brainv1.NewGestaltServiceClient(conn)
	k.mu.Unlock()
	k.logger.Info("outbound gestalt channel open", zap.String("target", k.target))

	defer func() {
		k.mu.Lock()
		k.stub = nil
		k.mu.Unlock()
		if err := conn.Close(); err != nil {
			k.logger.Warn("error closing outbound channel", zap.Error(err))
		}
		k.logger.Info("outbound gestalt channel closed")
	}()

	<-ctx.Done()
	return ctx.Err()
}

// Stub returns the currently published Gestalt stub.
func (k *Keeper) Stub() (brainv1.GestaltServiceClient, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.stub, k.stub != nil
}

// Send asks the Gestalt peer to broadcast payload. Fails with ErrUnavailable
// when no connection is published.
func (k *Keeper) Send(ctx context.Context, payload string) (*brainv1.SendChatMessageResponse, error) {
	stub, ok := k.Stub()
	if !ok {
		return nil, ErrUnavailable
	}
	resp, err := stub.SendChatMessage(ctx, &brainv1.SendChatMessageRequest{Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("outbound: send chat message: %w", err)
	}
	return resp, nil
}
