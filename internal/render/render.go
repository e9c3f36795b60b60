// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes an extraction result for people to read.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// NotFound replaces null values in text output.
const NotFound = "Not found"

// Banner heads text output.
const Banner = "Extracted Information:\n====================="

// Print writes obj as indented text, two spaces per level, starting at
// indent. Nested objects and lists get a "key:" header line; list elements
// that are objects are printed one level deeper, other elements as bullets.
func Print(w io.Writer, obj types.Object, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, m := range obj {
		switch v := m.Value.(type) {
		case types.Object:
			fmt.Fprintf(w, "%s%s:\n", prefix, m.Key)
			Print(w, v, indent+1)
		case []any:
			fmt.Fprintf(w, "%s%s:\n", prefix, m.Key)
			for _, item := range v {
				if nested, ok := item.(types.Object); ok {
					Print(w, nested, indent+1)
					continue
				}
				fmt.Fprintf(w, "%s  - %s\n", prefix, scalar(item))
			}
		default:
			fmt.Fprintf(w, "%s%s: %s\n", prefix, m.Key, scalar(v))
		}
	}
}

// scalar formats a leaf value. Lists nested directly in lists are shown in
// their JSON form.
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return NotFound
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}

// Write renders obj in the requested format. Text output is preceded by the
// banner; json is indented; yaml keeps key order.
func Write(w io.Writer, obj types.Object, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case types.OutputText, "":
		fmt.Fprintln(w, "\n"+Banner)
		Print(w, obj, 0)
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
}
