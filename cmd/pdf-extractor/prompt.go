// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-extractor/internal/extract"
	"github.com/pdiddy/pdf-extractor/internal/prompt"
	"github.com/pdiddy/pdf-extractor/internal/schema"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [pdf]",
	Short: "Print the prompt that would be sent to the model",
	Long: `Prompt loads the schema and, when a PDF is given, its text, and prints the
prompt extract would send. The model is not called, so no API key is
needed. Without a PDF only the schema section is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fields, err := schema.Load(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, prompt.BuildSchemaPrompt(fields))
		return nil
	}

	p := &extract.Pipeline{Config: cfg, Logger: slog.Default()}
	full, _, err := p.Prompt(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(out, full)
	return nil
}
