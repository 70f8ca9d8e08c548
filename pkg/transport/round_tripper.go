package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Rasamaha24/m5-advocate-portal/pkg/logger"
)

// RequestIDRoundTripper propagates the request id to outbound calls and logs
// them.
type RequestIDRoundTripper struct {
	Transport http.RoundTripper
}

func NewRequestIDRoundTripper(transport http.RoundTripper) *RequestIDRoundTripper {
	return &RequestIDRoundTripper{Transport: transport}
}

func (t *RequestIDRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	return resp, nil
}
