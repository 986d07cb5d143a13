package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/config"
	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
)

func TestServe_ListenFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), srv, time.Second, logger.Discard()) }()

	select {
	case err := <-done:
		require.ErrorContains(t, err, "listen on "+ln.Addr().String())
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, time.Second, logger.Discard()) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestRun_ReturnsStartupErrors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "sqlite"

	err := run(context.Background(), cfg, logger.Discard())
	require.ErrorContains(t, err, `unsupported store driver "sqlite"`)
}
