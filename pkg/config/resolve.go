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

// Package config resolves addresses and paths for the brain process.
// Every resolver applies the same precedence: explicit override, then
// configured value, then environment, then hardcoded default.
package config

import "os"

const (
	// DefaultBrainBind is the fallback inbound gRPC bind address.
	DefaultBrainBind = "127.0.0.1:50051"
	// DefaultGestaltEndpoint is the fallback outbound Gestalt target.
	DefaultGestaltEndpoint = "127.0.0.1:50052"
	// DefaultStatePath is the fallback location of the persistent state mapping.
	DefaultStatePath = "./state.db"
	// DefaultMemoryPath is the fallback location of the vector memory store.
	DefaultMemoryPath = "./vector.db"

	// BrainBindEnv overrides the inbound bind address.
	BrainBindEnv = "BRAIN_GRPC_ADDR"
	// GestaltEndpointEnv overrides the outbound Gestalt target.
	GestaltEndpointEnv = "GESTALT_GRPC_ENDPOINT"
	// StatePathEnv overrides the state database path.
	StatePathEnv = "BRAIN_STATE_DB_PATH"
	// MemoryPathEnv overrides the vector database path.
	MemoryPathEnv = "BRAIN_VECTOR_DB_PATH"
)

func resolve(override, configured, env, fallback string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// ResolveBrainBind resolves the inbound gRPC bind address.
func ResolveBrainBind(override, configured string) string {
	return resolve(override, configured, BrainBindEnv, DefaultBrainBind)
}

// ResolveGestaltEndpoint resolves the outbound Gestalt target address.
func ResolveGestaltEndpoint(override, configured string) string {
	return resolve(override, configured, GestaltEndpointEnv, DefaultGestaltEndpoint)
}

// ResolveStatePath resolves the persistent state mapping location.
func ResolveStatePath(override, configured string) string {
	return resolve(override, configured, StatePathEnv, DefaultStatePath)
}

// ResolveMemoryPath resolves the vector memory store location.
func ResolveMemoryPath(override, configured string) string {
	return resolve(override, configured, MemoryPathEnv, DefaultMemoryPath)
}
