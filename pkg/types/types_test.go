// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestAIConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      AIConfig
		wantKind Kind
		wantErr  bool
	}{
		{name: "gemini with key", cfg: AIConfig{Provider: ProviderGemini, APIKey: "k"}},
		{name: "openai with key", cfg: AIConfig{Provider: ProviderOpenAI, APIKey: "k"}},
		{name: "vertex with project and region", cfg: AIConfig{Provider: ProviderVertex, Project: "p", Region: "us-central1"}},
		{name: "gemini without key", cfg: AIConfig{Provider: ProviderGemini}, wantKind: KindMissingCredential, wantErr: true},
		{name: "blank key", cfg: AIConfig{Provider: ProviderOpenAI, APIKey: "  "}, wantKind: KindMissingCredential, wantErr: true},
		{name: "vertex without region", cfg: AIConfig{Provider: ProviderVertex, Project: "p"}, wantKind: KindMissingCredential, wantErr: true},
		{name: "unknown provider", cfg: AIConfig{Provider: "claude", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantKind != "" {
				var pe *Error
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tt.wantKind, pe.Kind)
			}
		})
	}
}

func TestMissingCredentialMessageNamesVariable(t *testing.T) {
	err := AIConfig{Provider: ProviderGemini}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestExtractionConfigDefaults(t *testing.T) {
	var cfg ExtractionConfig
	assert.Equal(t, DefaultMaxChars, cfg.Limit())
	assert.Equal(t, DefaultSchemaPath, cfg.Schema())
	assert.Equal(t, "gemini-2.0-flash", AIConfig{Provider: ProviderGemini}.ModelName())

	cfg = ExtractionConfig{MaxChars: 500, SchemaPath: "fields.yaml", AIConfig: AIConfig{Model: "m"}}
	assert.Equal(t, 500, cfg.Limit())
	assert.Equal(t, "fields.yaml", cfg.Schema())
	assert.Equal(t, "m", cfg.ModelName())
}

func TestOutputFormatValid(t *testing.T) {
	for _, f := range []OutputFormat{"", OutputText, OutputJSON, OutputYAML} {
		assert.True(t, f.Valid(), "format %q", f)
	}
	assert.False(t, OutputFormat("xml").Valid())
	assert.False(t, OutputFormat("JSON").Valid())
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("stage: %w", &Error{Kind: KindPDFRead, Path: "a.pdf", Err: errors.New("boom")})

	assert.True(t, errors.Is(err, ErrPDFRead))
	assert.False(t, errors.Is(err, ErrSchemaLoad))
	assert.Contains(t, err.Error(), "reading PDF file a.pdf: boom")
}

func TestJSONParseErrorCarriesResponse(t *testing.T) {
	err := &Error{Kind: KindJSONParse, Text: "not json", Err: errors.New("invalid character")}
	assert.Equal(t, "failed to parse JSON from response: invalid character\nResponse text: not json", err.Error())
}

func TestObjectMarshalJSONKeepsOrder(t *testing.T) {
	obj := Object{
		{Key: "Zeta", Value: "z"},
		{Key: "Alpha", Value: nil},
		{Key: "Amount", Value: json.Number("1000")},
		{Key: "Nested", Value: Object{{Key: "b", Value: true}, {Key: "a", Value: []any{"x", json.Number("2.5")}}}},
	}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":"z","Alpha":null,"Amount":1000,"Nested":{"b":true,"a":["x",2.5]}}`, string(data))
}

func TestObjectMarshalYAMLKeepsOrder(t *testing.T) {
	obj := Object{
		{Key: "Zeta", Value: "z"},
		{Key: "Alpha", Value: nil},
		{Key: "Count", Value: json.Number("3")},
		{Key: "Items", Value: []any{"one", Object{{Key: "k", Value: false}}}},
	}

	data, err := yaml.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "Zeta: z\nAlpha: null\nCount: 3\nItems:\n    - one\n    - k: false\n", string(data))
}

func TestObjectGetSet(t *testing.T) {
	var obj Object
	obj = obj.Set("a", "1")
	obj = obj.Set("b", "2")
	obj = obj.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestSchemaNames(t *testing.T) {
	s := Schema{{Name: "Amount"}, {Name: "Dates", Children: []Field{{Name: "Start"}}}}
	assert.Equal(t, []string{"Amount", "Dates"}, s.Names())
	assert.False(t, s[0].HasChildren())
	assert.True(t, s[1].HasChildren())
}
