package adapter

import (
	// Packages
	adapters "github.com/mutablelogic/go-utcp-adapters"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for conversion, load and search operations
type Opt func(*Config) error

// Config holds applied options
type Config struct {
	logger     zerolog.Logger
	tracer     trace.Tracer
	namespace  string
	maxResults int
	limit      int
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// apply returns the configuration with all options applied
func apply(opts ...Opt) (*Config, error) {
	cfg := &Config{
		logger: zerolog.Nop(),
		limit:  DefaultSearchLimit,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for conversion and invocation events.
// If not set, logging is disabled.
func WithLogger(logger zerolog.Logger) Opt {
	return func(cfg *Config) error {
		cfg.logger = logger
		return nil
	}
}

// WithTracer sets the tracer for load, search and invocation spans.
// If not set, no spans are emitted.
func WithTracer(tracer trace.Tracer) Opt {
	return func(cfg *Config) error {
		if tracer == nil {
			return adapters.ErrBadParameter.With("tracer is required")
		}
		cfg.tracer = tracer
		return nil
	}
}

// WithNamespace retains only tools whose derived namespace (the leading
// segment of the full name) equals the given manual name.
func WithNamespace(namespace string) Opt {
	return func(cfg *Config) error {
		cfg.namespace = namespace
		return nil
	}
}

// WithMaxResults caps the number of tools returned by a search.
func WithMaxResults(n int) Opt {
	return func(cfg *Config) error {
		if n < 1 {
			return adapters.ErrBadParameter.Withf("invalid max results %d", n)
		}
		cfg.maxResults = n
		return nil
	}
}

// WithSearchLimit sets the result cap requested from the tool source when
// enumerating all tools. The default is DefaultSearchLimit.
func WithSearchLimit(n int) Opt {
	return func(cfg *Config) error {
		if n < 1 {
			return adapters.ErrBadParameter.Withf("invalid search limit %d", n)
		}
		cfg.limit = n
		return nil
	}
}
