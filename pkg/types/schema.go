// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Field describes one value the model is asked to extract. Children nest
// related values under a header; in practice schemas go two levels deep.
type Field struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Children    []Field `json:"children,omitempty" yaml:"children,omitempty"`
}

// HasChildren reports whether the field groups child fields.
func (f Field) HasChildren() bool {
	return len(f.Children) > 0
}

// Schema is the ordered list of top-level fields loaded from the schema file.
type Schema []Field

// Names returns the top-level field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}
