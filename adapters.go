package adapters

import (
	"context"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Source is a handle to a UTCP client or registry which can enumerate
// registered tools and invoke them remotely.
type Source interface {
	// Search registered tools by query, returning up to limit descriptors.
	// An empty query matches all tools. Returns an error on transport or
	// registration failure, never a sentinel value.
	SearchTools(ctx context.Context, query string, limit int) ([]schema.Tool, error)

	// Invoke a tool by its full namespaced name with the given arguments.
	// The result is a plain value, a mapping or sequence, or a mapping
	// carrying an "error" key for business-level failures.
	CallTool(ctx context.Context, name string, args map[string]any) (any, error)
}

// Tool is the uniform invocable object produced for a calling framework:
// one wrapped UTCP tool with descriptive metadata and a schema accessor.
type Tool interface {
	// The full namespaced name of the tool
	Name() string

	// The description of the tool
	Description() string

	// Metadata derived from the descriptor
	Metadata() schema.Metadata

	// The JSON schema for the tool input
	InputSchema() *jsonschema.Schema

	// Invoke the tool with keyword arguments and return the result as text
	Call(ctx context.Context, args map[string]any) (string, error)
}
