// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// VertexBackend calls Gemini through Vertex AI using application default
// credentials.
type VertexBackend struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewVertexBackend creates a Vertex AI client for cfg.Project in cfg.Region.
func NewVertexBackend(ctx context.Context, cfg types.AIConfig) (*VertexBackend, error) {
	if cfg.Project == "" || cfg.Region == "" {
		return nil, fmt.Errorf("NewVertexBackend: project and region cannot be empty")
	}

	client, err := genai.NewClient(ctx, cfg.Project, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &VertexBackend{
		client: client,
		model:  client.GenerativeModel(cfg.ModelName()),
		name:   cfg.ModelName(),
	}, nil
}

// Name returns the provider identifier.
func (v *VertexBackend) Name() string { return string(types.ProviderVertex) }

// Generate sends the prompt as a single text part.
func (v *VertexBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := v.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content with %s: %w", v.name, err)
	}
	return vertexText(resp), nil
}

// Close releases the underlying client.
func (v *VertexBackend) Close() error {
	if v.client != nil {
		return v.client.Close()
	}
	return nil
}

// vertexText concatenates the text parts of the first candidate.
func vertexText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
