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
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor logs every unary RPC with its method, duration,
// and status code. A panicking handler is contained and reported as Internal
// rather than tearing down the server.
func LoggingUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("rpc handler panicked",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r))
				resp, err = nil, status.Error(codes.Internal, "internal server error")
			}
			logger.Debug("rpc finished",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
				zap.String("code", status.Code(err).String()))
		}()
		return handler(ctx, req)
	}
}
