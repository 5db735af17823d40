package mcptool

import (
	"context"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	adapters "github.com/mutablelogic/go-utcp-adapters"
	adapter "github.com/mutablelogic/go-utcp-adapters/pkg/adapter"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ServerTool exposes one wrapped UTCP tool as an MCP server tool, so a UTCP
// registry can be re-exported through an MCP server.
type ServerTool struct {
	*adapter.Wrapper
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New adapts one tool descriptor into an MCP server tool.
func New(source adapters.Source, t schema.Tool, opts ...adapter.Opt) (*ServerTool, error) {
	wrapper, err := adapter.New(source, t, opts...)
	if err != nil {
		return nil, err
	}
	return &ServerTool{wrapper}, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MCPTool returns the MCP tool descriptor: the full namespaced name, the
// description and the input schema of the wrapped tool.
func (t *ServerTool) MCPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.InputSchema(),
	}
}

// Handler returns the MCP tool handler. Invocation failures are reported
// as tool errors in the result, not as protocol errors.
func (t *ServerTool) Handler() mcp.ToolHandlerFor[map[string]any, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		text, err := t.Call(ctx, args)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// AddTools registers server tools on an MCP server.
func AddTools(server *mcp.Server, tools ...*ServerTool) {
	for _, t := range tools {
		mcp.AddTool(server, t.MCPTool(), t.Handler())
	}
}

////////////////////////////////////////////////////////////////////////////////
// COLLECTION OPERATIONS

// LoadAll enumerates every tool registered with the source and adapts each
// to an MCP server tool. The result is empty on total failure.
func LoadAll(ctx context.Context, source adapters.Source, opts ...adapter.Opt) []*ServerTool {
	return adapter.LoadAll(ctx, source, binder(), opts...)
}

// Search queries the source for matching tools and adapts each to an MCP
// server tool. The result is empty when every search path fails.
func Search(ctx context.Context, source adapters.Source, query string, opts ...adapter.Opt) []*ServerTool {
	return adapter.Search(ctx, source, binder(), query, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func binder() adapter.Binder[*ServerTool] {
	return adapter.BindFunc[*ServerTool](func(w *adapter.Wrapper) (*ServerTool, error) {
		return &ServerTool{w}, nil
	})
}
