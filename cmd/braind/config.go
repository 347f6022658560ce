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
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/gestalt-labs/brain/pkg/brain"
)

// DefaultConfigFileName is the name of the config file
const DefaultConfigFileName = "braind"

// Config holds all configuration for the Brain daemon.
// Priority: CLI flags > config file > env vars > defaults
type Config struct {
	// Server configuration (inbound gRPC)
	Server ServerConfig `mapstructure:"server"`

	// Gestalt configuration (outbound gRPC)
	Gestalt GestaltConfig `mapstructure:"gestalt"`

	// State configuration (persistent key/value store)
	State StateConfig `mapstructure:"state"`

	// Memory configuration (vector collection)
	Memory MemoryConfig `mapstructure:"memory"`

	// Brain configuration (orchestrator loop)
	Brain BrainConfig `mapstructure:"brain"`

	// Pipeline configuration (submission processing)
	Pipeline PipelineConfig `mapstructure:"pipeline"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the inbound gRPC server configuration.
type ServerConfig struct {
	// Bind is the inbound listen address (host:port)
	Bind string `mapstructure:"bind"`
}

// GestaltConfig holds the outbound Gestalt channel configuration.
type GestaltConfig struct {
	// Endpoint is the Gestalt peer address (host:port)
	Endpoint string `mapstructure:"endpoint"`
}

// StateConfig holds the persistent state store configuration.
type StateConfig struct {
	// Path is the SQLite state database path
	Path string `mapstructure:"path"`
}

// MemoryConfig holds the vector memory configuration.
type MemoryConfig struct {
	// Path is the SQLite vector database path
	Path string `mapstructure:"path"`

	// Collection is the vector collection name
	Collection string `mapstructure:"collection"`
}

// BrainConfig holds the orchestrator loop configuration.
type BrainConfig struct {
	// QueueSize is the submission queue capacity
	QueueSize int `mapstructure:"queue_size"`

	// MaxInflight caps concurrent submission processing (0 = unbounded)
	MaxInflight int `mapstructure:"max_inflight"`

	// DrainTimeoutSeconds bounds the shutdown drain window
	DrainTimeoutSeconds int `mapstructure:"drain_timeout_seconds"`
}

// PipelineConfig holds the processing pipeline configuration.
type PipelineConfig struct {
	// Kind selects the processor: "echo" or "anthropic"
	Kind string `mapstructure:"kind"`

	// AnthropicAPIKey is the Anthropic API key (or use ANTHROPIC_API_KEY)
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`

	// AnthropicModel is the Anthropic model identifier
	AnthropicModel string `mapstructure:"anthropic_model"`

	// MaxTokens is the maximum tokens per completion
	MaxTokens int64 `mapstructure:"max_tokens"`

	// Temperature is the sampling temperature
	Temperature float64 `mapstructure:"temperature"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log encoding (text, json)
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration with the standard precedence chain.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config search paths (in order of priority)
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/brain/")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	// Read config file (if it exists)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// Config file not found; using defaults + env vars + flags
	}

	// Bind environment variables
	viper.SetEnvPrefix("BRAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("memory.collection", "conversations")

	viper.SetDefault("brain.queue_size", brain.DefaultQueueSize)
	viper.SetDefault("brain.max_inflight", 0)
	viper.SetDefault("brain.drain_timeout_seconds", 10)

	viper.SetDefault("pipeline.kind", "echo")
	viper.SetDefault("pipeline.anthropic_model", "claude-3-5-sonnet-20241022")
	viper.SetDefault("pipeline.max_tokens", 1024)
	viper.SetDefault("pipeline.temperature", 0.7)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// server.bind, gestalt.endpoint, state.path, and memory.path stay
	// unset here: pkg/config resolves them against BRAIN_GRPC_ADDR,
	// GESTALT_GRPC_ENDPOINT, BRAIN_STATE_DB_PATH, and BRAIN_VECTOR_DB_PATH
	// before falling back to the builtin defaults.
}

// AnthropicKey returns the configured Anthropic API key, falling back to the
// conventional ANTHROPIC_API_KEY environment variable.
func (c *Config) AnthropicKey() string {
	if c.Pipeline.AnthropicAPIKey != "" {
		return c.Pipeline.AnthropicAPIKey
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}

// Validate checks the configuration for fatal misconfiguration.
func (c *Config) Validate() error {
	switch c.Pipeline.Kind {
	case "echo":
	case "anthropic":
		if c.AnthropicKey() == "" {
			return fmt.Errorf("pipeline.kind is %q but no Anthropic API key is configured (set pipeline.anthropic_api_key or ANTHROPIC_API_KEY)", c.Pipeline.Kind)
		}
	default:
		return fmt.Errorf("unknown pipeline.kind: %q (must be 'echo' or 'anthropic')", c.Pipeline.Kind)
	}

	if c.Brain.QueueSize <= 0 {
		return fmt.Errorf("brain.queue_size must be positive, got %d", c.Brain.QueueSize)
	}
	if c.Brain.MaxInflight < 0 {
		return fmt.Errorf("brain.max_inflight must not be negative, got %d", c.Brain.MaxInflight)
	}
	if c.Brain.DrainTimeoutSeconds <= 0 {
		return fmt.Errorf("brain.drain_timeout_seconds must be positive, got %d", c.Brain.DrainTimeoutSeconds)
	}
	return nil
}
