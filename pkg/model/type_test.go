package model_test

import (
	"testing"

	// Packages
	model "github.com/mutablelogic/go-utcp-adapters/pkg/model"
	assert "github.com/stretchr/testify/assert"
)

////////////////////////////////////////////////////////////////////////////////
// TESTS

// Test the type-mapping table
func Test_type_001(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(model.String, model.TypeOf(map[string]any{"type": "string"}).Kind)
	assert.Equal(model.Integer, model.TypeOf(map[string]any{"type": "integer"}).Kind)
	assert.Equal(model.Number, model.TypeOf(map[string]any{"type": "number"}).Kind)
	assert.Equal(model.Boolean, model.TypeOf(map[string]any{"type": "boolean"}).Kind)
	assert.Equal(model.Object, model.TypeOf(map[string]any{"type": "object"}).Kind)
	assert.Equal(model.Null, model.TypeOf(map[string]any{"type": "null"}).Kind)
	assert.Equal(model.Array, model.TypeOf(map[string]any{"type": "array"}).Kind)
}

// Test absent, unrecognized and malformed types map to string
func Test_type_002(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(model.String, model.TypeOf(map[string]any{}).Kind)
	assert.Equal(model.String, model.TypeOf(map[string]any{"type": "banana"}).Kind)
	assert.Equal(model.String, model.TypeOf(map[string]any{"type": nil}).Kind)
	assert.Equal(model.String, model.TypeOf(map[string]any{"type": 42}).Kind)
	assert.Equal(model.String, model.TypeOf("not a mapping").Kind)
	assert.Equal(model.String, model.TypeOf(nil).Kind)
}

// Test array element mapping
func Test_type_003(t *testing.T) {
	assert := assert.New(t)

	// Declared items
	typ := model.TypeOf(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	})
	assert.Equal(model.Array, typ.Kind)
	assert.NotNil(typ.Elem)
	assert.Equal(model.Integer, typ.Elem.Kind)

	// Missing items default to string elements
	typ = model.TypeOf(map[string]any{"type": "array"})
	assert.Equal(model.String, typ.Elem.Kind)

	// Malformed items are unconstrained
	typ = model.TypeOf(map[string]any{"type": "array", "items": []any{"x"}})
	assert.Equal(model.Any, typ.Elem.Kind)

	// Nested arrays
	typ = model.TypeOf(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "array", "items": map[string]any{"type": "boolean"}},
	})
	assert.Equal(model.Array, typ.Elem.Kind)
	assert.Equal(model.Boolean, typ.Elem.Elem.Kind)
}

// Test union nodes map to the unconstrained type
func Test_type_004(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(model.Any, model.TypeOf(map[string]any{
		"anyOf": []any{map[string]any{"type": "string"}},
	}).Kind)
	assert.Equal(model.Any, model.TypeOf(map[string]any{
		"oneOf": []any{map[string]any{"type": "integer"}},
	}).Kind)
}
