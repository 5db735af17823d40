package manual

import (
	"context"
	"strings"

	// Packages
	adapters "github.com/mutablelogic/go-utcp-adapters"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CallFunc invokes a named tool with validated arguments and returns the
// raw result.
type CallFunc func(ctx context.Context, name string, args map[string]any) (any, error)

// Source is an in-memory tool source over a fixed set of descriptors,
// typically decoded from a manual document. Calls are delegated to a
// caller-supplied function.
type Source struct {
	tools []schema.Tool
	call  CallFunc
}

var _ adapters.Source = (*Source)(nil)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSource returns a source over a fixed set of tool descriptors. The call
// function may be nil, in which case tool calls return ErrNotImplemented.
func NewSource(tools []schema.Tool, call CallFunc) *Source {
	return &Source{
		tools: tools,
		call:  call,
	}
}

// NewSourceFromManual returns a source over the tools of a manual document.
func NewSourceFromManual(manual *Manual, call CallFunc) (*Source, error) {
	if manual == nil {
		return nil, adapters.ErrBadParameter.With("manual")
	}
	return NewSource(manual.Tools, call), nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SearchTools returns descriptors matching the query by case-insensitive
// substring over name, description and tags. An empty query matches all
// tools, and a limit of zero or less means no limit.
func (s *Source) SearchTools(_ context.Context, query string, limit int) ([]schema.Tool, error) {
	result := make([]schema.Tool, 0, len(s.tools))
	query = strings.ToLower(query)
	for _, tool := range s.tools {
		if query == "" || matches(tool, query) {
			result = append(result, tool)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// CallTool invokes a named tool through the call function.
func (s *Source) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	if s.call == nil {
		return nil, adapters.ErrNotImplemented.With(name)
	}
	for _, tool := range s.tools {
		if tool.Name == name {
			return s.call(ctx, name, args)
		}
	}
	return nil, adapters.ErrNotFound.Withf("tool %q", name)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func matches(tool schema.Tool, query string) bool {
	if strings.Contains(strings.ToLower(tool.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(tool.Description), query) {
		return true
	}
	for _, tag := range tool.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
