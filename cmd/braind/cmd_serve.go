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
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	brainlog "github.com/gestalt-labs/brain/internal/log"
	"github.com/gestalt-labs/brain/pkg/app"
	"github.com/gestalt-labs/brain/pkg/brain"
	gestaltconfig "github.com/gestalt-labs/brain/pkg/config"
	"github.com/gestalt-labs/brain/pkg/memory"
	"github.com/gestalt-labs/brain/pkg/outbound"
	"github.com/gestalt-labs/brain/pkg/pipeline"
	"github.com/gestalt-labs/brain/pkg/server"
	"github.com/gestalt-labs/brain/pkg/statedb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Brain daemon",
	Long: `Start the Brain daemon.

The daemon will:
- Listen for Chat events on the inbound gRPC endpoint
- Run the orchestrator loop over the submission queue
- Keep the outbound Gestalt channel alive for reply broadcasts
- Persist orchestrator state to the SQLite state database

Press Ctrl+C to gracefully shutdown.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	if err := config.Validate(); err != nil {
		stdlog.Fatalf("Configuration validation failed: %v", err)
	}

	logger, err := brainlog.Init(config.Logging.Level, config.Logging.Format)
	if err != nil {
		stdlog.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting brain daemon", zap.String("version", rootCmd.Version))
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Info("config file loaded", zap.String("path", used))
	}

	bind := gestaltconfig.ResolveBrainBind("", config.Server.Bind)
	endpoint := gestaltconfig.ResolveGestaltEndpoint("", config.Gestalt.Endpoint)
	statePath := gestaltconfig.ResolveStatePath("", config.State.Path)
	memoryPath := gestaltconfig.ResolveMemoryPath("", config.Memory.Path)

	store, err := statedb.Open(statePath)
	if err != nil {
		logger.Fatal("failed to open state database", zap.String("path", statePath), zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	collection, err := memory.Open(memoryPath, config.Memory.Collection)
	if err != nil {
		logger.Fatal("failed to open vector memory", zap.String("path", memoryPath), zap.Error(err))
	}
	defer func() { _ = collection.Close() }()

	queue := brain.NewQueue(config.Brain.QueueSize)
	keeper := outbound.NewKeeper(endpoint, logger.Named("outbound"))

	processor := buildPipeline(logger)

	orchestrator, err := brain.New(brain.Options{
		Queue:       queue,
		Pipeline:    processor,
		Store:       store,
		Memory:      collection,
		Stubs:       keeper,
		MaxInflight: config.Brain.MaxInflight,
		Logger:      logger.Named("brain"),
	})
	if err != nil {
		logger.Fatal("failed to create orchestrator", zap.Error(err))
	}

	coordinator, err := app.New(app.Options{
		Queue:        queue,
		DrainTimeout: time.Duration(config.Brain.DrainTimeoutSeconds) * time.Second,
		Logger:       logger.Named("app"),
	})
	if err != nil {
		logger.Fatal("failed to create coordinator", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("brain services configured",
		zap.String("bind", bind),
		zap.String("gestalt_endpoint", endpoint),
		zap.String("state_db", statePath),
		zap.String("vector_db", memoryPath),
		zap.String("pipeline", config.Pipeline.Kind))

	inbound := func(ctx context.Context) error {
		return server.Serve(ctx, queue, bind, coordinator.ShutdownChan(), logger.Named("server"))
	}
	if err := coordinator.Run(ctx, orchestrator.Run, inbound, keeper.Run); err != nil {
		logger.Error("brain daemon exited with failure", zap.Error(err))
		os.Exit(1)
	}
}

// buildPipeline assembles the configured processor, always wrapped so
// replies mirror out to the Gestalt peer.
func buildPipeline(logger *zap.Logger) brain.Processor {
	var processor brain.Processor
	switch config.Pipeline.Kind {
	case "anthropic":
		processor = pipeline.NewAnthropic(func(o *pipeline.AnthropicOptions) {
			o.APIKey = config.AnthropicKey()
			o.Model = anthropic.Model(config.Pipeline.AnthropicModel)
			o.MaxTokens = config.Pipeline.MaxTokens
			o.Temperature = config.Pipeline.Temperature
		})
	default:
		processor = pipeline.EchoFlow{}
	}
	return pipeline.Broadcast{Next: processor, Logger: logger.Named("broadcast")}
}
