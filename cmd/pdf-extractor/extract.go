// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extractor/internal/extract"
	"github.com/pdiddy/pdf-extractor/internal/render"
	"github.com/pdiddy/pdf-extractor/pkg/types"
)

const pathPrompt = "Enter the path to the PDF file: "

var extractCmd = &cobra.Command{
	Use:   "extract [pdf]",
	Short: "Extract the schema fields from a PDF",
	Long: `Extract reads the PDF, sends its text and the schema to the model, and
prints the fields the model found. Fields the model could not find are
shown as "Not found". When no PDF is given the path is read from stdin.

Failures are printed and the command exits 0 unless --fail-on-error is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

// runner is the part of extract.Pipeline the command drives.
type runner interface {
	Run(ctx context.Context, pdfPath string) (*extract.Result, error)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig()
	if !cfg.Output.Valid() {
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", cfg.Output)
	}

	// The credential is checked here, before the path is read or opened.
	ctx := cmd.Context()
	pipe, err := extract.New(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}
	defer pipe.Close()

	out := cmd.OutOrStdout()
	pdfPath, err := pdfPathFrom(args, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	if err := process(ctx, out, pipe, pdfPath, cfg.Output); err != nil {
		if viper.GetBool("fail_on_error") {
			return errReported
		}
	}
	return nil
}

// pdfPathFrom returns the positional argument, or asks for a path on in.
func pdfPathFrom(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	fmt.Fprint(out, pathPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading PDF path: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// process runs the pipeline on pdfPath and writes the result to out. Every
// failure is printed to out as "Error: ..." and also returned.
func process(ctx context.Context, out io.Writer, p runner, pdfPath string, format types.OutputFormat) error {
	if _, err := os.Stat(pdfPath); err != nil {
		fmt.Fprintf(out, "Error: File '%s' not found.\n", pdfPath)
		return err
	}

	fmt.Fprintf(out, "\nProcessing %s...\n", pdfPath)
	res, err := p.Run(ctx, pdfPath)
	if err == nil {
		err = render.Write(out, res.Object, format)
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}
	return nil
}
