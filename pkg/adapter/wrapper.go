package adapter

import (
	"context"
	"fmt"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	uuid "github.com/google/uuid"
	adapters "github.com/mutablelogic/go-utcp-adapters"
	model "github.com/mutablelogic/go-utcp-adapters/pkg/model"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Wrapper adapts one UTCP tool descriptor into an invocable object with a
// uniform call entry point. It is immutable after construction and performs
// no I/O until Call.
type Wrapper struct {
	source adapters.Source
	tool   schema.Tool
	descr  string
	model  *model.Model
	meta   schema.Metadata
	cfg    *Config
}

var _ adapters.Tool = (*Wrapper)(nil)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New wraps a tool descriptor with a handle to its source. The input model
// and metadata are derived at construction; no remote calls are made.
func New(source adapters.Source, tool schema.Tool, opts ...Opt) (*Wrapper, error) {
	cfg, err := apply(opts...)
	if err != nil {
		return nil, err
	}
	return newWrapper(source, tool, cfg)
}

func newWrapper(source adapters.Source, tool schema.Tool, cfg *Config) (*Wrapper, error) {
	if source == nil {
		return nil, adapters.ErrBadParameter.With("source is required")
	}
	if tool.Name == "" {
		return nil, adapters.ErrBadParameter.With("tool name is required")
	}

	descr := tool.Description
	if descr == "" {
		descr = "UTCP tool: " + tool.Name
	}

	return &Wrapper{
		source: source,
		tool:   tool,
		descr:  descr,
		model:  model.New(tool.Name, tool.InputsMap()),
		meta:   schema.NewMetadata(tool),
		cfg:    cfg,
	}, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (w *Wrapper) String() string {
	return w.tool.String()
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the full namespaced name of the tool.
func (w *Wrapper) Name() string {
	return w.tool.Name
}

// Description returns the tool description, or a placeholder naming the
// tool when the descriptor carries none.
func (w *Wrapper) Description() string {
	return w.descr
}

// Metadata returns the metadata derived from the descriptor.
func (w *Wrapper) Metadata() schema.Metadata {
	return w.meta
}

// Descriptor returns the originating tool descriptor.
func (w *Wrapper) Descriptor() schema.Tool {
	return w.tool
}

// Model returns the typed input model generated for the tool.
func (w *Wrapper) Model() *model.Model {
	return w.model
}

// InputSchema returns the JSON schema representation of the input model.
func (w *Wrapper) InputSchema() *jsonschema.Schema {
	return w.model.Schema()
}

// Call validates the arguments against the input model, invokes the tool
// through its source, and converts the result to text. Any failure is
// returned wrapped with the tool's full name; the cause can be recovered
// with errors.Unwrap.
func (w *Wrapper) Call(ctx context.Context, args map[string]any) (result string, err error) {
	callId := uuid.NewString()
	ctx, endSpan := startSpan(w.cfg.tracer, ctx, "CallTool",
		attribute.String("tool", w.tool.Name),
		attribute.String("call_id", callId),
	)
	defer func() { endSpan(err) }()

	// Validate and coerce arguments
	validated, err := w.model.Validate(args)
	if err != nil {
		return "", w.wrapErr(err)
	}

	// Invoke through the source
	raw, err := w.source.CallTool(ctx, w.tool.Name, validated)
	if err != nil {
		w.cfg.logger.Warn().Err(err).Str("tool", w.tool.Name).Str("call_id", callId).Msg("tool call failed")
		return "", w.wrapErr(err)
	}

	// Convert the result
	text, err := convertResult(raw)
	if err != nil {
		w.cfg.logger.Warn().Err(err).Str("tool", w.tool.Name).Str("call_id", callId).Msg("tool returned an error result")
		return "", w.wrapErr(err)
	}

	w.cfg.logger.Debug().Str("tool", w.tool.Name).Str("call_id", callId).Msg("tool call completed")
	return text, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// wrapErr wraps a failure with the tool's full name, preserving both the
// ErrToolCall sentinel and the underlying cause in the error chain.
func (w *Wrapper) wrapErr(err error) error {
	return fmt.Errorf("%w %q: %w", adapters.ErrToolCall, w.tool.Name, err)
}
