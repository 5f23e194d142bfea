package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	runErr      error
	block       chan struct{}
	shutdownErr error
	shutdowns   int
}

func (f *fakeRunner) Run() error {
	if f.block != nil {
		<-f.block
	}
	return f.runErr
}

func (f *fakeRunner) Shutdown(context.Context) error {
	f.shutdowns++
	if f.block != nil {
		close(f.block)
	}
	return f.shutdownErr
}

func TestServe_RunFailureStillShutsDown(t *testing.T) {
	listenErr := errors.New("listen tcp :8080: bind: address already in use")
	srv := &fakeRunner{runErr: listenErr}

	err := serve(context.Background(), srv, time.Second)

	require.ErrorIs(t, err, listenErr)
	assert.Equal(t, 1, srv.shutdowns)
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	srv := &fakeRunner{block: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serve(ctx, srv, time.Second)

	require.NoError(t, err)
	assert.Equal(t, 1, srv.shutdowns)
}

func TestServe_ShutdownErrorReturned(t *testing.T) {
	shutdownErr := errors.New("shutdown server: context deadline exceeded")
	srv := &fakeRunner{block: make(chan struct{}), shutdownErr: shutdownErr}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serve(ctx, srv, time.Second)

	assert.ErrorIs(t, err, shutdownErr)
}
