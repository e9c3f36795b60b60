// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

const fundingJSON = `[
  {"name": "Amount", "description": "Funding amount"},
  {"name": "Eligibility", "description": "Who may apply", "children": [
    {"name": "Applicant", "description": "Applicant type"},
    {"name": "Location", "description": "Where applicants are based", "children": [
      {"name": "Country", "description": "Country"},
      {"name": "Region", "description": "Region"}
    ]}
  ]}
]`

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		want    types.Schema
		wantErr string
	}{
		{
			name:   "single field",
			data:   `[{"name":"Amount","description":"Funding amount"}]`,
			format: FormatJSON,
			want:   types.Schema{{Name: "Amount", Description: "Funding amount"}},
		},
		{
			name:   "null children treated as none",
			data:   `[{"name":"Amount","description":"Funding amount","children":null}]`,
			format: FormatJSON,
			want:   types.Schema{{Name: "Amount", Description: "Funding amount"}},
		},
		{
			name:   "yaml document",
			data:   "- name: Deadline\n  description: Closing date\n  children:\n    - name: Date\n      description: The date\n",
			format: FormatYAML,
			want: types.Schema{{
				Name:        "Deadline",
				Description: "Closing date",
				Children:    []types.Field{{Name: "Date", Description: "The date"}},
			}},
		},
		{
			name:   "empty name and description accepted",
			data:   `[{"name":"","description":""}]`,
			format: FormatJSON,
			want:   types.Schema{{Name: "", Description: ""}},
		},
		{
			name:   "empty array",
			data:   `[]`,
			format: FormatJSON,
			want:   types.Schema{},
		},
		{
			name:    "malformed json",
			data:    `[{"name":`,
			format:  FormatJSON,
			wantErr: "decoding JSON",
		},
		{
			name:    "not an array",
			data:    `{"name":"Amount","description":"x"}`,
			format:  FormatJSON,
			wantErr: "invalid field descriptors",
		},
		{
			name:    "missing description",
			data:    `[{"name":"Amount"}]`,
			format:  FormatJSON,
			wantErr: "invalid field descriptors",
		},
		{
			name:    "child missing name",
			data:    `[{"name":"A","description":"a","children":[{"description":"b"}]}]`,
			format:  FormatJSON,
			wantErr: "invalid field descriptors",
		},
		{
			name:    "malformed yaml",
			data:    "- name: [unclosed\n",
			format:  FormatYAML,
			wantErr: "decoding YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funding_details.json")
	require.NoError(t, os.WriteFile(path, []byte(fundingJSON), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, []string{"Amount", "Eligibility"}, s.Names())
	require.Len(t, s[1].Children, 2)
	assert.Equal(t, "Location", s[1].Children[1].Name)
	assert.Len(t, s[1].Children[1].Children, 2)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.json")},
		{name: "invalid content", path: bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrSchemaLoad))

			var pe *types.Error
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.path, pe.Path)
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("fields.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("FIELDS.YML"))
	assert.Equal(t, FormatJSON, FormatFor("funding_details.json"))
	assert.Equal(t, FormatJSON, FormatFor("schema"))
}
