package llmtool

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/mutablelogic/go-llm/pkg/tool"
	adapters "github.com/mutablelogic/go-utcp-adapters"
	adapter "github.com/mutablelogic/go-utcp-adapters/pkg/adapter"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool exposes one wrapped UTCP tool through the go-llm tool interface, so
// it can be registered in a go-llm toolkit alongside native tools. Toolkit
// registration requires an identifier name, so Name returns the full
// namespaced name with non-identifier runes replaced by underscores;
// FullName returns the name used to invoke the tool at its source.
type Tool struct {
	*adapter.Wrapper
}

var _ tool.Tool = (*Tool)(nil)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New adapts one tool descriptor into a go-llm tool.
func New(source adapters.Source, t schema.Tool, opts ...adapter.Opt) (*Tool, error) {
	wrapper, err := adapter.New(source, t, opts...)
	if err != nil {
		return nil, err
	}
	return &Tool{wrapper}, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the tool name as an identifier, with runes which are not
// letters, digits or underscores replaced by underscores.
func (t *Tool) Name() string {
	return identifier(t.Wrapper.Name())
}

// FullName returns the full namespaced name of the wrapped tool.
func (t *Tool) FullName() string {
	return t.Wrapper.Name()
}

// Schema returns the JSON schema for the tool input.
func (t *Tool) Schema() (*jsonschema.Schema, error) {
	return t.InputSchema(), nil
}

// Run invokes the tool with the given input as JSON (may be nil) and
// returns the result as text.
func (t *Tool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var args map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return nil, adapters.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return t.Call(ctx, args)
}

////////////////////////////////////////////////////////////////////////////////
// COLLECTION OPERATIONS

// LoadAll enumerates every tool registered with the source and adapts each
// to a go-llm tool. The result is empty on total failure.
func LoadAll(ctx context.Context, source adapters.Source, opts ...adapter.Opt) []tool.Tool {
	return adapter.LoadAll(ctx, source, binder(), opts...)
}

// Search queries the source for matching tools and adapts each to a go-llm
// tool. The result is empty when every search path fails.
func Search(ctx context.Context, source adapters.Source, query string, opts ...adapter.Opt) []tool.Tool {
	return adapter.Search(ctx, source, binder(), query, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func binder() adapter.Binder[tool.Tool] {
	return adapter.BindFunc[tool.Tool](func(w *adapter.Wrapper) (tool.Tool, error) {
		return &Tool{w}, nil
	})
}

// identifier maps a full namespaced name to a valid toolkit identifier.
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
}
