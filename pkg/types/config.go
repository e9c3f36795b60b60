// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

const (
	// DefaultSchemaPath is the field-description document read when no
	// schema path is configured.
	DefaultSchemaPath = "funding_details.json"

	// DefaultMaxChars caps how much document text is embedded in the prompt.
	// Text beyond this offset is dropped.
	DefaultMaxChars = 12000
)

// Provider identifies the generative model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderVertex Provider = "vertex"
)

// KeyEnv returns the environment variable that conventionally holds the
// provider's API key, or "" when the provider authenticates another way.
func (p Provider) KeyEnv() string {
	switch p {
	case ProviderGemini:
		return "GOOGLE_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	}
	return ""
}

// SecretName returns the file name under the secrets directory that holds
// the provider's API key.
func (p Provider) SecretName() string {
	return string(p) + "-api-key"
}

// DefaultModel returns the model identifier used when none is configured.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderVertex:
		return "gemini-1.5-pro"
	}
	return "gemini-2.0-flash"
}

// OutputFormat selects how the extraction result is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether f names a known format. Empty means text.
func (f OutputFormat) Valid() bool {
	switch f {
	case "", OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// AIConfig holds the settings of the external model call. It is built once
// at startup and passed to the backend constructor.
type AIConfig struct {
	// Provider selects the backend: gemini, openai, or vertex.
	Provider Provider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates gemini and openai requests.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the endpoint of OpenAI-compatible APIs.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Project and Region address Vertex AI, which uses application
	// default credentials instead of an API key.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`
	Region  string `json:"region,omitempty" yaml:"region,omitempty"`
}

// ModelName returns the configured model or the provider default.
func (c AIConfig) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	return c.Provider.DefaultModel()
}

// Validate checks that the credential needed by the selected provider is
// present. It performs no I/O.
func (c AIConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
		if strings.TrimSpace(c.APIKey) == "" {
			return &Error{
				Kind: KindMissingCredential,
				Err:  fmt.Errorf("please set %s (or PDF_EXTRACTOR_API_KEY) in your environment or .env file", c.Provider.KeyEnv()),
			}
		}
	case ProviderVertex:
		if c.Project == "" || c.Region == "" {
			return &Error{
				Kind: KindMissingCredential,
				Err:  fmt.Errorf("vertex provider needs both project and region"),
			}
		}
	default:
		return fmt.Errorf("unknown provider %q (want gemini, openai, or vertex)", c.Provider)
	}
	return nil
}

// ExtractionConfig holds settings for one extraction run.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	// SchemaPath is the JSON or YAML field-description document.
	SchemaPath string `json:"schema" yaml:"schema"`

	// MaxChars is the number of document characters embedded in the prompt
	// (default 12000).
	MaxChars int `json:"max_chars" yaml:"max_chars"`

	// Output selects the result format: text, json, or yaml.
	Output OutputFormat `json:"output" yaml:"output"`
}

// Limit returns MaxChars, or DefaultMaxChars when it is not positive.
func (c ExtractionConfig) Limit() int {
	if c.MaxChars <= 0 {
		return DefaultMaxChars
	}
	return c.MaxChars
}

// Schema returns SchemaPath, or DefaultSchemaPath when it is empty.
func (c ExtractionConfig) Schema() string {
	if c.SchemaPath == "" {
		return DefaultSchemaPath
	}
	return c.SchemaPath
}
