package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rasamaha24/m5-advocate-portal/pkg/logger"
	"github.com/Rasamaha24/m5-advocate-portal/pkg/transport"
)

func TestRoundTripper_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	var got string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
	}

	ctx := logger.WithRequestID(context.Background(), "req-123")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-123", got)
}

func TestRoundTripper_NoRequestID(t *testing.T) {
	t.Parallel()

	var sawHeader bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Request-Id"]
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.False(t, sawHeader)
}
