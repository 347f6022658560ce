// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Precedence(t *testing.T) {
	t.Setenv(BrainBindEnv, "env:1111")

	tests := []struct {
		name       string
		override   string
		configured string
		want       string
	}{
		{
			name:       "override wins over everything",
			override:   "flag:2222",
			configured: "file:3333",
			want:       "flag:2222",
		},
		{
			name:       "configured beats environment",
			configured: "file:3333",
			want:       "file:3333",
		},
		{
			name: "environment beats builtin default",
			want: "env:1111",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBrainBind(tt.override, tt.configured)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_BuiltinDefaults(t *testing.T) {
	// No env vars set in the test environment for these names.
	t.Setenv(BrainBindEnv, "")
	t.Setenv(GestaltEndpointEnv, "")
	t.Setenv(StatePathEnv, "")
	t.Setenv(MemoryPathEnv, "")

	assert.Equal(t, DefaultBrainBind, ResolveBrainBind("", ""))
	assert.Equal(t, DefaultGestaltEndpoint, ResolveGestaltEndpoint("", ""))
	assert.Equal(t, DefaultStatePath, ResolveStatePath("", ""))
	assert.Equal(t, DefaultMemoryPath, ResolveMemoryPath("", ""))
}

func TestResolve_EnvironmentNames(t *testing.T) {
	t.Setenv(GestaltEndpointEnv, "gestalt.internal:50052")
	t.Setenv(StatePathEnv, "/var/lib/brain/state.db")
	t.Setenv(MemoryPathEnv, "/var/lib/brain/vector.db")

	assert.Equal(t, "gestalt.internal:50052", ResolveGestaltEndpoint("", ""))
	assert.Equal(t, "/var/lib/brain/state.db", ResolveStatePath("", ""))
	assert.Equal(t, "/var/lib/brain/vector.db", ResolveMemoryPath("", ""))
}
