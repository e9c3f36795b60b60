// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package response locates and decodes the JSON payload in a model reply.
// Replies are free-form text; the payload may be fenced in a code block.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// ExtractPayload returns the part of text that should hold JSON:
//
//   - after the first "```json" marker up to the next "```";
//   - otherwise between the first and second "```";
//   - otherwise the whole text.
//
// A missing closing fence extends the payload to the end of text. The
// result is trimmed.
func ExtractPayload(text string) string {
	if i := strings.Index(text, jsonFence); i >= 0 {
		return between(text, i+len(jsonFence))
	}
	if i := strings.Index(text, fence); i >= 0 {
		return between(text, i+len(fence))
	}
	return strings.TrimSpace(text)
}

func between(text string, start int) string {
	rest := text[start:]
	if end := strings.Index(rest, fence); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// Parse decodes the JSON object in a model reply. Key order and number
// literals are kept. Failures are types.KindJSONParse errors carrying the
// full reply. The object's shape is not checked against any schema.
func Parse(text string) (types.Object, error) {
	obj, err := decodeObject(ExtractPayload(text))
	if err != nil {
		return nil, &types.Error{Kind: types.KindJSONParse, Text: text, Err: err}
	}
	return obj, nil
}

func decodeObject(payload string) (types.Object, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	obj, ok := v.(types.Object)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", kindOf(v))
	}
	return obj, nil
}

// decodeValue reads one JSON value from the token stream.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := types.Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %v, not a string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj = obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			list := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
