// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm sends a composed prompt to a generative model and returns the
// free-form reply. Each backend makes exactly one blocking request per call;
// there are no retries.
package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// Backend abstracts the generative model API so tests can supply a fake.
type Backend interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate sends one prompt and returns the reply text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// New validates cfg and builds the backend it selects. A missing credential
// is reported before any client is constructed.
func New(ctx context.Context, cfg types.AIConfig) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case types.ProviderOpenAI:
		return NewOpenAIBackend(cfg), nil
	case types.ProviderVertex:
		b, err := NewVertexBackend(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		b, err := NewGeminiBackend(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Close releases the backend's client when it holds one.
func Close(b Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Invoke calls the backend once. Call failures are reported as
// types.KindModelCall and replies without text as types.KindEmptyResponse.
func Invoke(ctx context.Context, b Backend, prompt string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	logger.Debug("llm.generate.request",
		"provider", b.Name(),
		"prompt_chars", len(prompt),
	)

	text, err := b.Generate(ctx, prompt)
	if err != nil {
		logger.Error("llm.generate.error",
			"provider", b.Name(),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &types.Error{Kind: types.KindModelCall, Err: err}
	}

	logger.Debug("llm.generate.response",
		"provider", b.Name(),
		"bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if strings.TrimSpace(text) == "" {
		return "", &types.Error{Kind: types.KindEmptyResponse, Err: fmt.Errorf("%s returned no text content", b.Name())}
	}
	return text, nil
}
