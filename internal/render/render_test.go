// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name   string
		obj    types.Object
		indent int
		want   string
	}{
		{
			name: "null becomes not found",
			obj:  types.Object{{Key: "Amount", Value: nil}},
			want: "Amount: Not found\n",
		},
		{
			name: "scalars",
			obj: types.Object{
				{Key: "Funder", Value: "Arts Council"},
				{Key: "Amount", Value: json.Number("25000")},
				{Key: "Renewable", Value: false},
			},
			want: "Funder: Arts Council\nAmount: 25000\nRenewable: false\n",
		},
		{
			name: "nested object",
			obj: types.Object{
				{Key: "Deadline", Value: types.Object{
					{Key: "Date", Value: "2024-05-01"},
					{Key: "Time", Value: nil},
				}},
			},
			want: "Deadline:\n  Date: 2024-05-01\n  Time: Not found\n",
		},
		{
			name: "list of scalars",
			obj:  types.Object{{Key: "Sectors", Value: []any{"music", json.Number("3"), nil}}},
			want: "Sectors:\n  - music\n  - 3\n  - Not found\n",
		},
		{
			name: "list of objects",
			obj: types.Object{{Key: "Contacts", Value: []any{
				types.Object{{Key: "Name", Value: "Ana"}},
				types.Object{{Key: "Name", Value: "Ben"}, {Key: "Email", Value: nil}},
			}}},
			want: "Contacts:\n  Name: Ana\n  Name: Ben\n  Email: Not found\n",
		},
		{
			name: "empty list prints header only",
			obj:  types.Object{{Key: "Documents", Value: []any{}}},
			want: "Documents:\n",
		},
		{
			name: "list inside list shown as JSON",
			obj:  types.Object{{Key: "Grid", Value: []any{[]any{json.Number("1"), "a"}}}},
			want: "Grid:\n  - [1,\"a\"]\n",
		},
		{
			name:   "starting indent",
			obj:    types.Object{{Key: "Outer", Value: types.Object{{Key: "Tags", Value: []any{"x"}}}}},
			indent: 1,
			want:   "  Outer:\n    Tags:\n      - x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Print(&buf, tt.obj, tt.indent)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWrite(t *testing.T) {
	obj := types.Object{
		{Key: "Amount", Value: nil},
		{Key: "Tags", Value: []any{"a"}},
	}

	tests := []struct {
		format types.OutputFormat
		want   string
	}{
		{format: types.OutputText, want: "\n" + Banner + "\nAmount: Not found\nTags:\n  - a\n"},
		{format: "", want: "\n" + Banner + "\nAmount: Not found\nTags:\n  - a\n"},
		{format: types.OutputJSON, want: "{\n  \"Amount\": null,\n  \"Tags\": [\n    \"a\"\n  ]\n}\n"},
		{format: types.OutputYAML, want: "Amount: null\nTags:\n  - a\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, obj, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, types.Object{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
