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

// Package pipeline contains reference implementations of the brain.Processor
// interface: the echo subflow used by default, an Anthropic-backed processor,
// and a broadcast decorator that mirrors replies to the Gestalt peer.
package pipeline

import (
	"context"
	"fmt"

	"github.com/gestalt-labs/brain/pkg/brain"
)

// EchoFlow is the default processing pipeline: it echoes the prompt back.
type EchoFlow struct{}

// Process returns the echoed prompt.
func (EchoFlow) Process(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("Subflow echoing: %s", prompt), nil
}

var _ brain.Processor = EchoFlow{}
