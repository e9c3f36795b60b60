// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-extractor/internal/pdftext"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Show page count and text size of a PDF",
	Long: `Inspect reports how many pages a PDF has, how many characters of text
were extracted from it, and whether --max-chars would cut the text before
it reaches the model.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspection summarizes one PDF.
type inspection struct {
	Path     string
	Pages    int
	Chars    int
	MaxChars int
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig()
	path := args[0]

	pages, err := pdftext.PageCount(path)
	if err != nil {
		return err
	}
	text, err := pdftext.Extract(path)
	if err != nil {
		return err
	}

	printInspection(cmd.OutOrStdout(), inspection{
		Path:     path,
		Pages:    pages,
		Chars:    utf8.RuneCountInString(text),
		MaxChars: cfg.Limit(),
	})
	return nil
}

func printInspection(w io.Writer, in inspection) {
	fmt.Fprintf(w, "File:       %s\n", in.Path)
	fmt.Fprintf(w, "Pages:      %d\n", in.Pages)
	fmt.Fprintf(w, "Characters: %d\n", in.Chars)
	fmt.Fprintf(w, "Max chars:  %d\n", in.MaxChars)
	if dropped := in.Chars - in.MaxChars; dropped > 0 {
		fmt.Fprintf(w, "Truncated:  yes (%d characters not sent)\n", dropped)
		return
	}
	fmt.Fprintln(w, "Truncated:  no")
}
