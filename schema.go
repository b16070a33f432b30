package llmkit

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaFor reflects a JSON Schema from the given value's type,
// suitable for a function tool's Parameters field. Definitions are
// inlined so the result is a single self-contained object schema.
func SchemaFor(v any) (json.RawMessage, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(v)
	// The $schema keyword is noise inside a tool definition.
	schema.Version = ""

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// MustSchemaFor is SchemaFor that panics on failure. Intended for
// package-level tool definitions built from static types.
func MustSchemaFor(v any) json.RawMessage {
	data, err := SchemaFor(v)
	if err != nil {
		panic(err)
	}
	return data
}
