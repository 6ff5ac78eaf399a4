package itemsource

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes ids as either strings or integers.
func (rawID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
		},
		Description: "Unique identifier, string or integer.",
	}
}

// Schema generates the JSON schema of an item file.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect([]Record{})
	schema.Title = "kanacombo items"
	return schema
}

// SchemaJSON returns Schema indented for printing.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
