// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/pdiddy/pdf-extractor/internal/httputil"
	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// GeminiBackend calls the Gemini API with an API key.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend creates a Gemini client. cfg.BaseURL, when set, replaces
// the API endpoint.
func NewGeminiBackend(ctx context.Context, cfg types.AIConfig) (*GeminiBackend, error) {
	return newGeminiBackend(ctx, cfg, httputil.NewClient(nil))
}

func newGeminiBackend(ctx context.Context, cfg types.AIConfig, httpClient *http.Client) (*GeminiBackend, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	return &GeminiBackend{client: client, model: cfg.ModelName()}, nil
}

// Name returns the provider identifier.
func (g *GeminiBackend) Name() string { return string(types.ProviderGemini) }

// Generate sends the prompt as a single user turn.
func (g *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content with %s: %w", g.model, err)
	}
	return geminiText(resp), nil
}

// geminiText joins the text parts of the first candidate, skipping thoughts.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
