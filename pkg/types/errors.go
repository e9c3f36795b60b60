// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Kind classifies a pipeline failure so callers can tell causes apart
// without matching on message text.
type Kind string

const (
	KindMissingCredential Kind = "missing-credential"
	KindSchemaLoad        Kind = "schema-load"
	KindPDFRead           Kind = "pdf-read"
	KindModelCall         Kind = "model-call"
	KindEmptyResponse     Kind = "empty-response"
	KindJSONParse         Kind = "json-parse"
)

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrMissingCredential = &Error{Kind: KindMissingCredential}
	ErrSchemaLoad        = &Error{Kind: KindSchemaLoad}
	ErrPDFRead           = &Error{Kind: KindPDFRead}
	ErrModelCall         = &Error{Kind: KindModelCall}
	ErrEmptyResponse     = &Error{Kind: KindEmptyResponse}
	ErrJSONParse         = &Error{Kind: KindJSONParse}
)

// Error is a failure of one pipeline stage.
type Error struct {
	Kind Kind

	// Path is the file involved, for schema-load and pdf-read failures.
	Path string

	// Text is the full model response, for json-parse failures.
	Text string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindMissingCredential:
		b.WriteString("missing credential")
	case KindSchemaLoad:
		b.WriteString("loading schema")
	case KindPDFRead:
		b.WriteString("reading PDF file")
	case KindModelCall:
		b.WriteString("calling model")
	case KindEmptyResponse:
		b.WriteString("empty response from model")
	case KindJSONParse:
		b.WriteString("failed to parse JSON from response")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Kind == KindJSONParse {
		fmt.Fprintf(&b, "\nResponse text: %s", e.Text)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
