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

	"github.com/gestalt-labs/brain/pkg/statedb"
)

// Persisted state keys. Each BrainState field maps to its own key so the
// on-disk layout stays a plain string mapping.
const (
	StateKeyUsername = "username"
	StateKeyMessage  = "message"
	StateKeyReply    = "reply"
)

// BrainState is the orchestrator's per-run state record. The orchestrator
// owns one logical instance, overwritten at the start of each submission's
// processing; each background task receives its own copy through the request
// context so concurrent submissions never observe each other's values.
type BrainState struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Reply    string `json:"reply"`
}

// Clone returns an independent copy of the state.
func (s *BrainState) Clone() *BrainState {
	c := *s
	return &c
}

// LoadState reads the persisted BrainState from the store. Missing keys are
// left at their zero value so a fresh database yields an empty state.
func LoadState(ctx context.Context, store *statedb.Store) (*BrainState, error) {
	state := &BrainState{}
	for key, dst := range map[string]*string{
		StateKeyUsername: &state.Username,
		StateKeyMessage:  &state.Message,
		StateKeyReply:    &state.Reply,
	} {
		if err := store.Get(ctx, key, dst); err != nil {
			if errors.Is(err, statedb.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("load state key %q: %w", key, err)
		}
	}
	return state, nil
}

// SaveState writes the BrainState fields through to the store.
func SaveState(ctx context.Context, store *statedb.Store, state *BrainState) error {
	for key, val := range map[string]string{
		StateKeyUsername: state.Username,
		StateKeyMessage:  state.Message,
		StateKeyReply:    state.Reply,
	} {
		if err := store.Set(ctx, key, val); err != nil {
			return fmt.Errorf("save state key %q: %w", key, err)
		}
	}
	return nil
}
