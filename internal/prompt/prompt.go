// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders a field schema and document text into the single
// instruction sent to the model.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// Preamble opens every schema prompt.
const Preamble = "Please extract the following information from the text and format it as JSON:"

// fence opens the code block the model must wrap its JSON in.
const fence = "```json"

// requestTmpl wraps the schema prompt and document text. The document text
// is the last thing in the prompt so truncation only ever cuts the tail.
var requestTmpl = template.Must(template.New("request").Parse(`{{.Schema}}

Analyze the following text and extract the information according to the schema above.
IMPORTANT: Your response MUST be valid JSON wrapped in triple backticks ({{.Fence}}).
If certain information is not found in the text, use null or empty arrays as appropriate.

Text to analyze:
{{.Text}}
`))

// BuildSchemaPrompt renders the fields as extraction instructions.
//
// A field with children becomes a "name (description):" header followed by
// one "- name: description" bullet per child. A child that has children of
// its own is replaced by bullets for those grandchildren; nothing deeper is
// rendered. A field without children becomes "name: description". Entries
// are separated by a blank line.
func BuildSchemaPrompt(fields []types.Field) string {
	parts := []string{Preamble}
	for _, f := range fields {
		if !f.HasChildren() {
			parts = append(parts, bullet("", f))
			continue
		}
		var lines []string
		for _, child := range f.Children {
			if child.HasChildren() {
				for _, grandchild := range child.Children {
					lines = append(lines, bullet("- ", grandchild))
				}
				continue
			}
			lines = append(lines, bullet("- ", child))
		}
		header := fmt.Sprintf("%s (%s):", f.Name, f.Description)
		parts = append(parts, header+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func bullet(prefix string, f types.Field) string {
	return prefix + f.Name + ": " + f.Description
}

// Compose builds the full model prompt from a rendered schema prompt and the
// document text, keeping only the first limit characters of the text. A
// non-positive limit means types.DefaultMaxChars.
func Compose(schemaPrompt, text string, limit int) (string, error) {
	if limit <= 0 {
		limit = types.DefaultMaxChars
	}
	var buf bytes.Buffer
	err := requestTmpl.Execute(&buf, struct {
		Schema string
		Fence  string
		Text   string
	}{
		Schema: schemaPrompt,
		Fence:  fence,
		Text:   Truncate(text, limit),
	})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}

// Truncate returns the first limit characters (runes) of text.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}

// Truncated reports whether Compose would drop text at this limit. A
// non-positive limit means types.DefaultMaxChars.
func Truncated(text string, limit int) bool {
	if limit <= 0 {
		limit = types.DefaultMaxChars
	}
	return utf8.RuneCountInString(text) > limit
}
