// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client the model backends share.
package httputil

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport logs each round trip at debug level and otherwise defers to
// Base. It never retries.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"elapsed_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		logger.Debug("http.request.failed", append(attrs, "error", err)...)
		return nil, err
	}
	logger.Debug("http.request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}

// NewClient returns a client whose requests are logged through logger.
// A nil logger uses slog.Default at request time.
func NewClient(logger *slog.Logger) *http.Client {
	return &http.Client{Transport: &Transport{Logger: logger}}
}
