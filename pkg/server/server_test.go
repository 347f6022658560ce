// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	brainv1 "github.com/gestalt-labs/brain/gen/go/brain/v1"
	"github.com/gestalt-labs/brain/pkg/brain"
)

// resolveNext consumes one submission from the queue and fulfils it with fn.
func resolveNext(t *testing.T, queue *brain.Queue, fn func(sub *brain.Submission)) {
	t.Helper()
	go func() {
		sub, err := queue.Get(context.Background())
		if err != nil || sub == nil {
			return
		}
		fn(sub)
	}()
}

func TestChat_EnqueuesAndReturnsReply(t *testing.T) {
	queue := brain.NewQueue(8)
	srv := NewBrainServer(queue, zaptest.NewLogger(t))

	resolveNext(t, queue, func(sub *brain.Submission) {
		sub.Reply.Resolve(fmt.Sprintf("hi %s", sub.Event.GetUsername()))
	})

	resp, err := srv.Chat(context.Background(), &brainv1.ChatEvent{
		Username: "alice",
		Message:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hi alice", resp.GetReply())
}

func TestChat_InternalErrorIsMasked(t *testing.T) {
	queue := brain.NewQueue(8)
	srv := NewBrainServer(queue, zaptest.NewLogger(t))

	resolveNext(t, queue, func(sub *brain.Submission) {
		sub.Reply.Reject(errors.New("pipeline exploded: secret detail"))
	})

	_, err := srv.Chat(context.Background(), &brainv1.ChatEvent{Username: "alice"})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	// The failure detail stays in the log, not in the response.
	assert.Equal(t, "internal server error", st.Message())
}

func TestChat_CallerCancellationPropagates(t *testing.T) {
	queue := brain.NewQueue(8)
	srv := NewBrainServer(queue, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	// Nothing consumes the queue, so the call parks on the reply handle
	// until the caller gives up.
	_, err := srv.Chat(ctx, &brainv1.ChatEvent{Username: "alice", Message: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChat_EventCopiedNotAliased(t *testing.T) {
	queue := brain.NewQueue(8)
	srv := NewBrainServer(queue, zaptest.NewLogger(t))

	event := &brainv1.ChatEvent{Username: "alice", Message: "original"}
	resolveNext(t, queue, func(sub *brain.Submission) {
		assert.NotSame(t, event, sub.Event)
		assert.Equal(t, "alice", sub.Event.GetUsername())
		assert.Equal(t, "original", sub.Event.GetMessage())
		sub.Reply.Resolve("ok")
	})

	_, err := srv.Chat(context.Background(), event)
	require.NoError(t, err)
}

func TestChat_EndToEndOverBufconn(t *testing.T) {
	queue := brain.NewQueue(8)
	orchestrator, err := brain.New(brain.Options{
		Queue: queue,
		Pipeline: brain.ProcessorFunc(func(_ context.Context, prompt string) (string, error) {
			return fmt.Sprintf("Subflow echoing: %s", prompt), nil
		}),
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	runDone := make(chan error, 1)
	go func() { runDone <- orchestrator.Run(context.Background()) }()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	brainv1.RegisterBrainServiceServer(grpcServer, NewBrainServer(queue, zaptest.NewLogger(t)))
	go func() { _ = grpcServer.Serve(lis) }()
	defer grpcServer.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	client := brainv1.NewBrainServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Chat(ctx, &brainv1.ChatEvent{Username: "alice", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Subflow echoing: hello", resp.GetReply())

	queue.Shutdown()
	select {
	case err := <-runDone:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("orchestrator did not drain after shutdown")
	}
}
