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
package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
	"github.com/gestalt-labs/brain/pkg/brain"
)

// gracefulStopTimeout bounds how long active RPCs may delay shutdown before
// the server is stopped forcefully.
const gracefulStopTimeout = 10 * time.Second

// Serve runs the inbound gRPC server on bind until the shutdown channel
// closes, ctx is cancelled, or the listener fails. In-flight Chat calls are
// given a graceful-stop window so their reply handles can still resolve.
func Serve(ctx context.Context, queue *brain.Queue, bind string, shutdown <-chan struct{}, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	lis, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", bind, err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(LoggingUnaryInterceptor(logger)))
	brainv1.RegisterBrainServiceServer(grpcServer, NewBrainServer(queue, logger))

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(lis) }()
	logger.Info("brain gRPC started", zap.String("address", bind))

	select {
	case err := <-serveErr:
		// The listener died on its own: an actor crash, not a shutdown.
		return fmt.Errorf("server: serve: %w", err)
	case <-shutdown:
		logger.Info("shutdown signal received, stopping brain gRPC")
	case <-ctx.Done():
		logger.Info("context cancelled, stopping brain gRPC")
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
		logger.Info("brain gRPC stopped gracefully")
	case <-time.After(gracefulStopTimeout):
		logger.Warn("graceful stop timeout, forcing shutdown")
		grpcServer.Stop()
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}
