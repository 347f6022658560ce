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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gestalt-labs/brain/internal/version"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:     "braind",
	Short:   "Brain - conversational agent orchestration daemon",
	Long:    `Brain (braind) accepts chat events over gRPC, routes them through a single orchestrator loop with a processing pipeline, and pushes replies back out over the Gestalt channel.`,
	Version: version.Get(),
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./braind.yaml)")

	// Network flags. Defaults stay empty so environment variables keep
	// their place in the precedence chain (flags > file > env > builtin).
	rootCmd.PersistentFlags().String("bind", "", "inbound gRPC bind address")
	rootCmd.PersistentFlags().String("gestalt-endpoint", "", "outbound Gestalt gRPC endpoint")

	// Storage flags
	rootCmd.PersistentFlags().String("state-db", "", "SQLite state database path")
	rootCmd.PersistentFlags().String("vector-db", "", "SQLite vector memory database path")

	// Pipeline flags
	rootCmd.PersistentFlags().String("pipeline", "", "processing pipeline (echo, anthropic)")
	rootCmd.PersistentFlags().String("anthropic-key", "", "Anthropic API key (or use ANTHROPIC_API_KEY)")
	rootCmd.PersistentFlags().String("anthropic-model", "", "Anthropic model")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("server.bind", rootCmd.PersistentFlags().Lookup("bind"))
	_ = viper.BindPFlag("gestalt.endpoint", rootCmd.PersistentFlags().Lookup("gestalt-endpoint"))

	_ = viper.BindPFlag("state.path", rootCmd.PersistentFlags().Lookup("state-db"))
	_ = viper.BindPFlag("memory.path", rootCmd.PersistentFlags().Lookup("vector-db"))

	_ = viper.BindPFlag("pipeline.kind", rootCmd.PersistentFlags().Lookup("pipeline"))
	_ = viper.BindPFlag("pipeline.anthropic_api_key", rootCmd.PersistentFlags().Lookup("anthropic-key"))
	_ = viper.BindPFlag("pipeline.anthropic_model", rootCmd.PersistentFlags().Lookup("anthropic-model"))

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
}
