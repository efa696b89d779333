package dates

import (
	"github.com/danielgtaylor/huma/v2"
)

// Schema implements huma.SchemaProvider so Day documents as a nullable
// date string instead of an opaque object.
func (Day) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:       huma.TypeString,
		Format:     "date",
		Extensions: map[string]any{"example": "2024-06-25"},
	}
}
