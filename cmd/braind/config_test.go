// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Brain: BrainConfig{
			QueueSize:           64,
			DrainTimeoutSeconds: 10,
		},
		Pipeline: PipelineConfig{Kind: "echo"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid echo config",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown pipeline kind",
			mutate:  func(c *Config) { c.Pipeline.Kind = "markov" },
			wantErr: "unknown pipeline.kind",
		},
		{
			name:    "anthropic without key",
			mutate:  func(c *Config) { c.Pipeline.Kind = "anthropic" },
			wantErr: "no Anthropic API key",
		},
		{
			name: "anthropic with key",
			mutate: func(c *Config) {
				c.Pipeline.Kind = "anthropic"
				c.Pipeline.AnthropicAPIKey = "sk-test"
			},
		},
		{
			name:    "zero queue size",
			mutate:  func(c *Config) { c.Brain.QueueSize = 0 },
			wantErr: "queue_size",
		},
		{
			name:    "negative max inflight",
			mutate:  func(c *Config) { c.Brain.MaxInflight = -1 },
			wantErr: "max_inflight",
		},
		{
			name:    "zero drain timeout",
			mutate:  func(c *Config) { c.Brain.DrainTimeoutSeconds = 0 },
			wantErr: "drain_timeout_seconds",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANTHROPIC_API_KEY", "")
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_AnthropicKeyFallsBackToEnv(t *testing.T) {
	cfg := validTestConfig()
	t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")
	assert.Equal(t, "sk-from-env", cfg.AnthropicKey())

	cfg.Pipeline.AnthropicAPIKey = "sk-from-config"
	assert.Equal(t, "sk-from-config", cfg.AnthropicKey())
}
