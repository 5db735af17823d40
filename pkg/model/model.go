package model

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	// Packages
	adapters "github.com/mutablelogic/go-utcp-adapters"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Field is one named input of a model. Required fields must be supplied on
// every call; optional fields default to null.
type Field struct {
	Name     string
	Type     Type
	Required bool
}

// Model is the typed input model generated for one tool: a fixed field set
// interpreted over call arguments. An open model accepts arbitrary extra
// arguments instead, so tools with no declared inputs remain callable.
type Model struct {
	Name   string
	Fields []Field
	Open   bool
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ValueField is the single field name of models generated from a
	// primitive (non-object) schema
	ValueField = "value"

	// Suffix appended to the derived model name
	nameSuffix = "Input"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New generates the input model for a tool from its full namespaced name
// and input schema. The schema is a JSON-Schema-like mapping; malformed
// properties or required entries are silently treated as empty, so this
// never fails.
func New(toolName string, schema map[string]any) *Model {
	m := &Model{
		Name: NameFor(toolName),
	}

	properties, _ := schema["properties"].(map[string]any)
	required := requiredSet(schema["required"])

	// A primitive schema with no usable properties becomes a single
	// required "value" field of the mapped type
	if len(properties) == 0 {
		if name, ok := schema["type"]; ok && name != nil && name != "object" {
			m.Fields = []Field{{
				Name:     ValueField,
				Type:     TypeOf(map[string]any{"type": name}),
				Required: true,
			}}
			return m
		}
	}

	// Map each well-formed property, in sorted order so the generated
	// model is deterministic
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		node, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}
		m.Fields = append(m.Fields, Field{
			Name:     name,
			Type:     TypeOf(node),
			Required: required[name],
		})
	}

	// With no usable fields, the model accepts arbitrary arguments
	if len(m.Fields) == 0 {
		m.Open = true
	}
	return m
}

// NameFor derives the model name from a tool's full name, with namespace
// separators replaced by underscores.
func NameFor(toolName string) string {
	return strings.ReplaceAll(toolName, ".", "_") + nameSuffix
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks call arguments against the model and returns the argument
// mapping to forward to the tool source. Required fields must be present,
// values must satisfy their field type, unknown arguments are dropped, and
// absent optional fields are forwarded as explicit nulls. Open models pass
// all arguments through unchanged.
func (m *Model) Validate(args map[string]any) (map[string]any, error) {
	if m.Open {
		out := make(map[string]any, len(args))
		for k, v := range args {
			out[k] = v
		}
		return out, nil
	}

	out := make(map[string]any, len(m.Fields))
	for _, field := range m.Fields {
		value, exists := args[field.Name]
		switch {
		case !exists && field.Required:
			return nil, adapters.ErrBadParameter.Withf("%s: missing required argument %q", m.Name, field.Name)
		case !exists:
			out[field.Name] = nil
		case value == nil && !field.Required:
			out[field.Name] = nil
		default:
			coerced, err := coerce(value, field.Type)
			if err != nil {
				return nil, adapters.ErrBadParameter.Withf("%s: argument %q: %v", m.Name, field.Name, err)
			}
			out[field.Name] = coerced
		}
	}
	return out, nil
}

// Lookup returns the field with the given name, or nil.
func (m *Model) Lookup(name string) *Field {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i]
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// requiredSet reads the required list of an object schema, tolerating a
// malformed (non-sequence) value as empty.
func requiredSet(v any) map[string]bool {
	result := make(map[string]bool)
	switch list := v.(type) {
	case []any:
		for _, item := range list {
			if name, ok := item.(string); ok {
				result[name] = true
			}
		}
	case []string:
		for _, name := range list {
			result[name] = true
		}
	}
	return result
}

// coerce checks a value against a field type, converting representations
// where the value is unambiguous (integral floats, json.Number).
func coerce(value any, t Type) (any, error) {
	switch t.Kind {
	case Any:
		return value, nil
	case Null:
		if value == nil {
			return nil, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected null, got %T", value)
	case String:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected string, got %T", value)
	case Boolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected boolean, got %T", value)
	case Integer:
		return coerceInt(value)
	case Number:
		return coerceNumber(value)
	case Object:
		if m, ok := value.(map[string]any); ok {
			return m, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected object, got %T", value)
	case Array:
		list, ok := value.([]any)
		if !ok {
			return nil, adapters.ErrBadParameter.Withf("expected array, got %T", value)
		}
		elem := Type{Kind: Any}
		if t.Elem != nil {
			elem = *t.Elem
		}
		out := make([]any, len(list))
		for i, item := range list {
			coerced, err := coerce(item, elem)
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil
	}
	return value, nil
}

func coerceInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return coerceInt(uint64(v))
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, adapters.ErrBadParameter.Withf("integer out of range: %v", v)
		}
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int64(v), nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected integer, got %v", v)
	case float32:
		return coerceInt(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected integer, got %v", v)
	}
	return nil, adapters.ErrBadParameter.Withf("expected integer, got %T", value)
}

func coerceNumber(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
		return nil, adapters.ErrBadParameter.Withf("expected number, got %v", v)
	}
	return nil, adapters.ErrBadParameter.Withf("expected number, got %T", value)
}
