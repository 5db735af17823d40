package model

import (
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Schema returns the JSON schema representation of the model, for callers
// which introspect a wrapped tool's input. Optional fields are nullable
// with a null default; open models permit additional properties.
func (m *Model) Schema() *jsonschema.Schema {
	if m.Open {
		return &jsonschema.Schema{
			Title:                m.Name,
			Type:                 "object",
			AdditionalProperties: &jsonschema.Schema{},
		}
	}

	properties := make(map[string]*jsonschema.Schema, len(m.Fields))
	required := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		s := field.Type.Schema()
		if field.Required {
			required = append(required, field.Name)
		} else {
			s = nullable(s)
		}
		properties[field.Name] = s
	}

	return &jsonschema.Schema{
		Title:      m.Name,
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Schema returns the JSON schema node for a field type.
func (t Type) Schema() *jsonschema.Schema {
	switch t.Kind {
	case Any:
		return &jsonschema.Schema{}
	case Array:
		s := &jsonschema.Schema{Type: "array"}
		if t.Elem != nil {
			s.Items = t.Elem.Schema()
		}
		return s
	default:
		return &jsonschema.Schema{Type: t.Kind.String()}
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// nullable widens a field schema to also accept null, with a null default.
func nullable(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Type != "" {
		s.Types = []string{s.Type, "null"}
		s.Type = ""
	}
	s.Default = json.RawMessage("null")
	return s
}
