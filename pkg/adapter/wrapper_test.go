package adapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	adapters "github.com/mutablelogic/go-utcp-adapters"
	adapter "github.com/mutablelogic/go-utcp-adapters/pkg/adapter"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

////////////////////////////////////////////////////////////////////////////////
// MOCK TYPES

type mockSource struct {
	searchFn func(query string, limit int) ([]schema.Tool, error)
	callFn   func(name string, args map[string]any) (any, error)
	searches []string // queries received, in order
	calls    []string // tool names invoked, in order
}

func (s *mockSource) SearchTools(_ context.Context, query string, limit int) ([]schema.Tool, error) {
	s.searches = append(s.searches, query)
	if s.searchFn != nil {
		return s.searchFn(query, limit)
	}
	return nil, nil
}

func (s *mockSource) CallTool(_ context.Context, name string, args map[string]any) (any, error) {
	s.calls = append(s.calls, name)
	if s.callFn != nil {
		return s.callFn(name, args)
	}
	return nil, adapters.ErrNotFound.Withf("tool %q", name)
}

func addPetTool() schema.Tool {
	return schema.Tool{
		Name:        "petstore.addPet",
		Description: "",
		Inputs: json.RawMessage(`{
			"type": "object",
			"properties": {"name": {"type": "string"}},
			"required": ["name"]
		}`),
		CallTemplate: &schema.CallTemplate{Name: "petstore", CallTemplateType: "http"},
	}
}

////////////////////////////////////////////////////////////////////////////////
// TESTS

// Test wrapper identity, description defaulting and metadata
func Test_wrapper_001(t *testing.T) {
	assert := assert.New(t)

	w, err := adapter.New(&mockSource{}, addPetTool())
	assert.NoError(err)
	assert.Equal("petstore.addPet", w.Name())
	assert.NotEmpty(w.Description())
	assert.Contains(w.Description(), "petstore.addPet")
	assert.Equal("petstore", w.Metadata().ManualName)
	assert.Equal("petstore", w.Metadata().CallTemplate)
	assert.Equal("http", w.Metadata().CallTemplateType)
	assert.True(w.Metadata().UTCPTool)
}

// Test metadata of a tool without a namespace separator
func Test_wrapper_002(t *testing.T) {
	assert := assert.New(t)

	w, err := adapter.New(&mockSource{}, schema.Tool{Name: "toolY"})
	assert.NoError(err)
	assert.Equal("toolY", w.Name())
	assert.Equal("unknown", w.Metadata().ManualName)
	assert.Equal("unknown", w.Metadata().CallTemplateType)
}

// Test construction requires a source and a name
func Test_wrapper_003(t *testing.T) {
	assert := assert.New(t)

	_, err := adapter.New(nil, addPetTool())
	assert.ErrorIs(err, adapters.ErrBadParameter)

	_, err = adapter.New(&mockSource{}, schema.Tool{})
	assert.ErrorIs(err, adapters.ErrBadParameter)
}

// Test the generated model requires declared required fields
func Test_wrapper_004(t *testing.T) {
	assert := assert.New(t)

	source := &mockSource{
		callFn: func(string, map[string]any) (any, error) {
			return "ok", nil
		},
	}
	w, err := adapter.New(source, addPetTool())
	assert.NoError(err)

	// Missing required argument fails validation before any remote call
	_, err = w.Call(context.TODO(), nil)
	assert.ErrorIs(err, adapters.ErrToolCall)
	assert.Empty(source.calls)

	// Supplying it succeeds and forwards the full namespaced name
	result, err := w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.NoError(err)
	assert.Equal("ok", result)
	assert.Equal([]string{"petstore.addPet"}, source.calls)
}

// Test invocation failure wraps the tool name and preserves the cause
func Test_wrapper_005(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("connection refused")
	source := &mockSource{
		callFn: func(string, map[string]any) (any, error) {
			return nil, cause
		},
	}
	w, err := adapter.New(source, addPetTool())
	assert.NoError(err)

	_, err = w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.Error(err)
	assert.ErrorIs(err, adapters.ErrToolCall)
	assert.ErrorIs(err, cause)
	assert.Contains(err.Error(), "petstore.addPet")
	assert.Contains(err.Error(), "connection refused")
}

// Test a result mapping with a truthy error key fails the call
func Test_wrapper_006(t *testing.T) {
	assert := assert.New(t)

	source := &mockSource{
		callFn: func(string, map[string]any) (any, error) {
			return map[string]any{"error": "boom"}, nil
		},
	}
	w, err := adapter.New(source, addPetTool())
	assert.NoError(err)

	_, err = w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.ErrorIs(err, adapters.ErrToolCall)
	assert.Contains(err.Error(), "boom")
	assert.Contains(err.Error(), "petstore.addPet")
}

// Test mappings and sequences are serialized as indented JSON
func Test_wrapper_007(t *testing.T) {
	assert := assert.New(t)

	source := &mockSource{
		callFn: func(string, map[string]any) (any, error) {
			return map[string]any{"id": float64(7), "name": "rex"}, nil
		},
	}
	w, err := adapter.New(source, addPetTool())
	assert.NoError(err)

	result, err := w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.NoError(err)

	var decoded map[string]any
	assert.NoError(json.Unmarshal([]byte(result), &decoded))
	assert.Equal("rex", decoded["name"])
	assert.Contains(result, "\n") // indented, not compact

	// A falsy error value is not a failure
	source.callFn = func(string, map[string]any) (any, error) {
		return map[string]any{"error": "", "value": "fine"}, nil
	}
	result, err = w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.NoError(err)
	assert.Contains(result, "fine")
}

// Test plain values are stringified
func Test_wrapper_008(t *testing.T) {
	assert := assert.New(t)

	source := &mockSource{
		callFn: func(string, map[string]any) (any, error) {
			return 42, nil
		},
	}
	w, err := adapter.New(source, addPetTool())
	assert.NoError(err)

	result, err := w.Call(context.TODO(), map[string]any{"name": "rex"})
	assert.NoError(err)
	assert.Equal("42", result)
}

// Test the input schema accessor reflects the generated model
func Test_wrapper_009(t *testing.T) {
	assert := assert.New(t)

	w, err := adapter.New(&mockSource{}, addPetTool())
	assert.NoError(err)

	s := w.InputSchema()
	assert.NotNil(s)
	assert.Equal("object", s.Type)
	assert.Equal([]string{"name"}, s.Required)
	assert.Equal("string", s.Properties["name"].Type)
	assert.Equal("petstore_addPetInput", s.Title)
}

// Test optional arguments are forwarded as explicit nulls
func Test_wrapper_010(t *testing.T) {
	assert := assert.New(t)

	var forwarded map[string]any
	source := &mockSource{
		callFn: func(_ string, args map[string]any) (any, error) {
			forwarded = args
			return "ok", nil
		},
	}

	tool := addPetTool()
	tool.Inputs = json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tag": {"type": "string"}
		},
		"required": ["name"]
	}`)
	w, err := adapter.New(source, tool)
	assert.NoError(err)

	_, err = w.Call(context.TODO(), map[string]any{"name": "rex", "bogus": 1})
	assert.NoError(err)
	assert.Contains(forwarded, "tag")
	assert.Nil(forwarded["tag"])
	assert.NotContains(forwarded, "bogus")
}
