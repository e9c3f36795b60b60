// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema loads the field-description document that drives prompt
// construction. The document is a JSON (or YAML) array of
// {name, description, children?} objects.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// Format is the encoding of a schema document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// descriptorJSON describes a well-formed schema document. It checks the
// document's own shape only; model replies are never validated against it.
const descriptorJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {"$ref": "#/$defs/field"},
  "$defs": {
    "field": {
      "type": "object",
      "required": ["name", "description"],
      "properties": {
        "name": {"type": "string"},
        "description": {"type": "string"},
        "children": {
          "type": ["array", "null"],
          "items": {"$ref": "#/$defs/field"}
        }
      }
    }
  }
}`

var descriptor = jsonschema.MustCompileString("field-descriptors.json", descriptorJSON)

// FormatFor picks the document format from the file extension. Anything
// other than .yaml or .yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Load reads and parses the schema document at path.
func Load(path string) (types.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.KindSchemaLoad, Path: path, Err: err}
	}
	s, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, &types.Error{Kind: types.KindSchemaLoad, Path: path, Err: err}
	}
	return s, nil
}

// Parse decodes a schema document and checks its shape.
func Parse(data []byte, format Format) (types.Schema, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if err := descriptor.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid field descriptors: %w", err)
	}

	var s types.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}
	return s, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// validation path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}
	return out, nil
}
