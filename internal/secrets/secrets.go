// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the model API key. Keys come from the process
// environment, an optional .env file, or a directory of plain-text files
// where the filename is the key name and the trimmed contents the value.
//
// Supported key files: gemini-api-key, openai-api-key.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// OverrideEnv names the variable that supplies the key for any provider.
const OverrideEnv = "PDF_EXTRACTOR_API_KEY"

// LoadDotEnv loads variables from the named .env files into the process
// environment. Variables already set are left alone. Missing files are
// skipped; a file that exists but cannot be parsed is an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
		slog.Debug("secrets.dotenv.loaded", "path", f)
	}
	return nil
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("secrets.read.failed", "name", name, "error", err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Resolve returns the API key for provider. The override variable wins, then
// the provider's own variable, then the provider's file in files. getenv
// is usually os.Getenv. An empty result means no key was found.
func Resolve(provider types.Provider, getenv func(string) string, files map[string]string) string {
	if v := strings.TrimSpace(getenv(OverrideEnv)); v != "" {
		return v
	}
	if name := provider.KeyEnv(); name != "" {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return files[provider.SecretName()]
}
