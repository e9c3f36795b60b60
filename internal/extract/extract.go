// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs the extraction pipeline: load the field schema, read
// the PDF text, build the prompt, call the model, and parse its JSON reply.
// Stages run strictly in that order; each stage's output is the next
// stage's only input.
package extract

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pdiddy/pdf-extractor/internal/llm"
	"github.com/pdiddy/pdf-extractor/internal/pdftext"
	"github.com/pdiddy/pdf-extractor/internal/prompt"
	"github.com/pdiddy/pdf-extractor/internal/response"
	"github.com/pdiddy/pdf-extractor/internal/schema"
	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// TextExtractor reads the text of a PDF. pdftext.Extract is the production
// implementation; tests substitute canned text.
type TextExtractor func(path string) (string, error)

// Pipeline holds everything one extraction run needs.
type Pipeline struct {
	Backend llm.Backend
	Config  types.ExtractionConfig
	Logger  *slog.Logger

	// ExtractText defaults to pdftext.Extract.
	ExtractText TextExtractor
}

// Result is the outcome of a successful run.
type Result struct {
	RunID string

	// Object is the parsed model reply.
	Object types.Object

	// Response is the raw model reply.
	Response string

	// TextChars is the length of the extracted document text in characters,
	// and Truncated reports whether part of it was left out of the prompt.
	TextChars int
	Truncated bool
}

// New builds a pipeline for cfg. The credential is checked before anything
// else, so a missing key fails without touching the schema, the PDF, or
// the network.
func New(ctx context.Context, cfg types.ExtractionConfig, logger *slog.Logger) (*Pipeline, error) {
	backend, err := llm.New(ctx, cfg.AIConfig)
	if err != nil {
		return nil, err
	}
	return &Pipeline{Backend: backend, Config: cfg, Logger: logger}, nil
}

// Close releases the backend.
func (p *Pipeline) Close() error {
	return llm.Close(p.Backend)
}

// Prompt runs the stages up to prompt construction and returns the prompt
// that would be sent to the model.
func (p *Pipeline) Prompt(pdfPath string) (string, *Result, error) {
	log := p.logger()
	res := &Result{RunID: uuid.NewString()}
	log = log.With("run_id", res.RunID)

	schemaPath := p.Config.Schema()
	fields, err := schema.Load(schemaPath)
	if err != nil {
		return "", nil, err
	}
	log.Debug("extract.schema.loaded", "path", schemaPath, "fields", len(fields))

	extractText := p.ExtractText
	if extractText == nil {
		extractText = pdftext.Extract
	}
	start := time.Now()
	text, err := extractText(pdfPath)
	if err != nil {
		return "", nil, err
	}
	res.TextChars = utf8.RuneCountInString(text)
	res.Truncated = prompt.Truncated(text, p.Config.Limit())
	log.Debug("extract.pdf.read",
		"path", pdfPath,
		"chars", res.TextChars,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if res.Truncated {
		log.Warn("extract.prompt.truncated",
			"chars", res.TextChars,
			"max_chars", p.Config.Limit(),
		)
	}

	full, err := prompt.Compose(prompt.BuildSchemaPrompt(fields), text, p.Config.Limit())
	if err != nil {
		return "", nil, err
	}
	return full, res, nil
}

// Run executes the whole pipeline for the PDF at pdfPath. Errors are
// *types.Error values identifying the failing stage.
func (p *Pipeline) Run(ctx context.Context, pdfPath string) (*Result, error) {
	full, res, err := p.Prompt(pdfPath)
	if err != nil {
		return nil, err
	}
	log := p.logger().With("run_id", res.RunID)

	reply, err := llm.Invoke(ctx, p.Backend, full, log)
	if err != nil {
		return nil, err
	}
	res.Response = reply

	obj, err := response.Parse(reply)
	if err != nil {
		return nil, err
	}
	res.Object = obj
	log.Info("extract.run.done", "keys", len(obj))
	return res, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
