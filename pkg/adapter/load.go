package adapter

import (
	"context"
	"strings"

	// Packages
	adapters "github.com/mutablelogic/go-utcp-adapters"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
	log "github.com/rs/zerolog/log"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Binder produces the framework-specific tool shape from a wrapped tool.
// The wrapper carries the descriptor, input model and metadata; a binder
// only supplies the final object.
type Binder[T any] interface {
	Bind(wrapper *Wrapper) (T, error)
}

// BindFunc adapts a function to the Binder interface.
type BindFunc[T any] func(wrapper *Wrapper) (T, error)

func (fn BindFunc[T]) Bind(wrapper *Wrapper) (T, error) {
	return fn(wrapper)
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultSearchLimit is the result cap used when enumerating all tools
// from the source.
const DefaultSearchLimit = 1000

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LoadAll enumerates every tool registered with the source and converts
// each through the binder, in source enumeration order. Enumeration
// failure and per-tool conversion failures are logged, never returned:
// the result is empty on total failure, so callers should treat zero tools
// as a possible failure signal rather than proof that none are registered.
func LoadAll[T any](ctx context.Context, source adapters.Source, binder Binder[T], opts ...Opt) []T {
	cfg, err := apply(opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to load tools: invalid option")
		return []T{}
	}
	return loadAll(ctx, source, binder, cfg)
}

// Search queries the source for matching tools and converts each through
// the binder. When the source's native search fails, it degrades to
// enumerating all tools and substring-matching the query against each
// tool's name, description and tags; when enumeration also fails, it
// filters the tools LoadAll can still produce. Only total exhaustion of
// all three tiers yields an empty result; Search never returns an error.
func Search[T any](ctx context.Context, source adapters.Source, binder Binder[T], query string, opts ...Opt) []T {
	cfg, err := apply(opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to search tools: invalid option")
		return []T{}
	}
	return search(ctx, source, binder, query, cfg)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func loadAll[T any](ctx context.Context, source adapters.Source, binder Binder[T], cfg *Config) []T {
	var err error
	ctx, endSpan := startSpan(cfg.tracer, ctx, "LoadTools",
		attribute.String("namespace", cfg.namespace),
	)
	defer func() { endSpan(err) }()

	// Enumerate all tools through the one retrieval path
	tools, err := source.SearchTools(ctx, "", cfg.limit)
	if err != nil {
		cfg.logger.Error().Err(err).Msg("failed to load tools from source")
		return []T{}
	}

	return bind(source, binder, filterNamespace(tools, cfg.namespace), cfg)
}

func search[T any](ctx context.Context, source adapters.Source, binder Binder[T], query string, cfg *Config) []T {
	var err error
	ctx, endSpan := startSpan(cfg.tracer, ctx, "SearchTools",
		attribute.String("query", query),
		attribute.String("namespace", cfg.namespace),
	)
	defer func() { endSpan(err) }()

	// Primary path: the source's native search
	limit := cfg.limit
	if cfg.maxResults > 0 {
		limit = cfg.maxResults
	}
	results, err := source.SearchTools(ctx, query, limit)
	if err != nil {
		cfg.logger.Warn().Err(err).Str("query", query).Msg("source search failed, attempting fallback")

		// First fallback: enumerate everything and match manually
		var err2 error
		if results, err2 = source.SearchTools(ctx, "", cfg.limit); err2 == nil {
			results = matchTools(results, query)
			cfg.logger.Info().Int("count", len(results)).Msg("fallback enumeration matched tools")
		} else {
			cfg.logger.Warn().Err(err2).Msg("fallback enumeration failed")

			// Final fallback: filter whatever LoadAll can still produce
			matched := matchWrappers(loadAll(ctx, source, Wrappers(), cfg), query)
			matched = truncate(matched, cfg.maxResults)
			if len(matched) == 0 {
				cfg.logger.Error().Str("query", query).Msg("all search fallbacks failed")
			}
			return rebind(binder, matched, cfg)
		}
	}

	// Truncation, then namespace filtering, then conversion
	results = truncate(results, cfg.maxResults)
	return bind(source, binder, filterNamespace(results, cfg.namespace), cfg)
}

// bind converts descriptors through the binder, skipping tools which fail
// conversion so one bad descriptor cannot abort the batch.
func bind[T any](source adapters.Source, binder Binder[T], tools []schema.Tool, cfg *Config) []T {
	result := make([]T, 0, len(tools))
	for _, tool := range tools {
		wrapper, err := newWrapper(source, tool, cfg)
		if err != nil {
			cfg.logger.Warn().Err(err).Str("tool", tool.Name).Msg("failed to convert tool")
			continue
		}
		bound, err := binder.Bind(wrapper)
		if err != nil {
			cfg.logger.Warn().Err(err).Str("tool", tool.Name).Msg("failed to convert tool")
			continue
		}
		result = append(result, bound)
	}
	return result
}

// rebind converts already-wrapped tools through the binder.
func rebind[T any](binder Binder[T], wrappers []*Wrapper, cfg *Config) []T {
	result := make([]T, 0, len(wrappers))
	for _, wrapper := range wrappers {
		bound, err := binder.Bind(wrapper)
		if err != nil {
			cfg.logger.Warn().Err(err).Str("tool", wrapper.Name()).Msg("failed to convert tool")
			continue
		}
		result = append(result, bound)
	}
	return result
}

// Wrappers is the identity binder, producing the wrapped tools themselves.
func Wrappers() Binder[*Wrapper] {
	return BindFunc[*Wrapper](func(w *Wrapper) (*Wrapper, error) {
		return w, nil
	})
}

// filterNamespace retains descriptors whose derived namespace equals the
// filter. Descriptors without a resolvable registration-record name are
// excluded. An empty filter retains everything.
func filterNamespace(tools []schema.Tool, namespace string) []schema.Tool {
	if namespace == "" {
		return tools
	}
	result := make([]schema.Tool, 0, len(tools))
	for _, tool := range tools {
		if tool.CallTemplate == nil || tool.CallTemplate.Name == "" {
			continue
		}
		if tool.Namespace() == namespace {
			result = append(result, tool)
		}
	}
	return result
}

// matchTools performs case-insensitive substring matching of the query
// against each descriptor's name, description and tags.
func matchTools(tools []schema.Tool, query string) []schema.Tool {
	query = strings.ToLower(query)
	result := make([]schema.Tool, 0, len(tools))
	for _, tool := range tools {
		if matches(query, tool.Name, tool.Description, tool.Tags) {
			result = append(result, tool)
		}
	}
	return result
}

// matchWrappers is matchTools over already-wrapped tools.
func matchWrappers(wrappers []*Wrapper, query string) []*Wrapper {
	query = strings.ToLower(query)
	result := make([]*Wrapper, 0, len(wrappers))
	for _, w := range wrappers {
		if matches(query, w.Name(), w.Description(), w.Metadata().Tags) {
			result = append(result, w)
		}
	}
	return result
}

func matches(query, name, description string, tags []string) bool {
	if strings.Contains(strings.ToLower(name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(description), query) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func truncate[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
