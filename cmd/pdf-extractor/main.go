// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-extractor CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extractor/internal/secrets"
	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// errReported marks a failure that has already been printed to the user.
var errReported = errors.New("already reported")

// rootCmd is the base command for the pdf-extractor CLI. Run without a
// subcommand it behaves like extract.
var rootCmd = &cobra.Command{
	Use:   "pdf-extractor [pdf]",
	Short: "Extract structured fields from a PDF with a language model",
	Long: `pdf-extractor reads the text of a PDF, asks a generative model to fill in
the fields described by a schema file, and prints the model's JSON answer
as indented text.

The schema is a JSON (or YAML) list of fields, each with a name, a
description, and optional children. The model is chosen with --provider
(gemini, openai, or vertex).`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pdf-extractor.yaml or ~/.config/pdf-extractor/pdf-extractor.yaml)")
	pf.String("schema", types.DefaultSchemaPath, "field schema file (JSON or YAML)")
	pf.String("provider", string(types.ProviderGemini), "model provider: gemini, openai, or vertex")
	pf.String("model", "", "model identifier (default depends on provider)")
	pf.String("base-url", "", "override the provider API endpoint")
	pf.String("project", "", "Google Cloud project (vertex provider)")
	pf.String("region", "", "Google Cloud region (vertex provider)")
	pf.Int("max-chars", types.DefaultMaxChars, "maximum characters of document text sent to the model")
	pf.String("log-level", "warn", "log level: debug, info, warn, or error")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level=debug")
	pf.StringP("output", "o", string(types.OutputText), "output format: text, json, or yaml")
	pf.Bool("fail-on-error", false, "exit with status 1 when extraction fails")

	bindFlags(pf, map[string]string{
		"schema":        "schema",
		"provider":      "provider",
		"model":         "model",
		"base_url":      "base-url",
		"project":       "project",
		"region":        "region",
		"max_chars":     "max-chars",
		"log_level":     "log-level",
		"output":        "output",
		"fail_on_error": "fail-on-error",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-extractor"))
		}
	}

	viper.SetEnvPrefix("PDF_EXTRACTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup installs the logger and loads credentials from .env and .secrets/.
func setup(cmd *cobra.Command, args []string) error {
	level := viper.GetString("log_level")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if err := secrets.LoadDotEnv(); err != nil {
		return err
	}
	s, err := secrets.Load(".secrets/")
	if err != nil {
		return err
	}
	loadedSecrets = s
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		slog.Debug("secrets.loaded", "keys", keys)
	}
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), nil
}

// bindFlags binds viper keys to the flags that set them.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if f := fs.Lookup(flag); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

// extractionConfig assembles the run configuration from viper and the
// resolved credential.
func extractionConfig() types.ExtractionConfig {
	provider := types.Provider(strings.ToLower(viper.GetString("provider")))
	if provider == "" {
		provider = types.ProviderGemini
	}
	return types.ExtractionConfig{
		AIConfig: types.AIConfig{
			Provider: provider,
			Model:    viper.GetString("model"),
			APIKey:   secrets.Resolve(provider, os.Getenv, loadedSecrets),
			BaseURL:  viper.GetString("base_url"),
			Project:  viper.GetString("project"),
			Region:   viper.GetString("region"),
		},
		SchemaPath: viper.GetString("schema"),
		MaxChars:   viper.GetInt("max_chars"),
		Output:     types.OutputFormat(viper.GetString("output")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
