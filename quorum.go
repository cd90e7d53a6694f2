// Package quorum provides a top-level convenience entry point for creating
// voting engines with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/quorum"
//
//	engine, err := quorum.New(quorum.WithOpenAI("gpt-4o-mini"))
//	engine, err := quorum.New(quorum.WithProvider(myProvider))
//
//	verdict, err := engine.Decide(ctx, quorum.NewTask("2+2=?"), quorum.DefaultPolicy())
//
// This is a thin wrapper around [voting.NewEngine]; both produce identical
// results. Use this package when you prefer the shorter import path.
package quorum

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/quorum/internal/metrics"
	"github.com/BaSui01/quorum/providers"
	"github.com/BaSui01/quorum/types"
	"github.com/BaSui01/quorum/voting"
)

// Re-export the core vocabulary so simple callers only import this package.

// Task is one question put to the vote. See [types.Task].
type Task = types.Task

// Policy controls a single decision. See [types.Policy].
type Policy = types.Policy

// Verdict is the decision result with its ballot audit trail. See [types.Verdict].
type Verdict = types.Verdict

// NewTask creates a task with a generated ID.
var NewTask = types.NewTask

// DefaultPolicy returns the stock first-to-ahead-by-k policy.
var DefaultPolicy = types.DefaultPolicy

type options struct {
	provider         providers.Generator
	openAIModel      string
	apiKey           string
	logger           *zap.Logger
	metricsNamespace string
	tracer           trace.Tracer
}

// Option configures the engine created by [New].
type Option func(*options)

// WithProvider sets a pre-built generation provider.
func WithProvider(p providers.Generator) Option {
	return func(o *options) { o.provider = p }
}

// WithOpenAI creates an OpenAI-compatible provider. API key from OPENAI_API_KEY env.
func WithOpenAI(model string) Option {
	return func(o *options) { o.openAIModel = model }
}

// WithAPIKey overrides the API key for provider shortcuts.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables prometheus metrics under the given namespace.
func WithMetrics(namespace string) Option {
	return func(o *options) { o.metricsNamespace = namespace }
}

// WithTracer overrides the default otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// New creates a [voting.Engine] with minimal configuration.
// At minimum, a provider must be specified via [WithOpenAI] or [WithProvider].
func New(opts ...Option) (*voting.Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	provider := o.provider
	if provider == nil {
		if o.openAIModel == "" {
			return nil, types.NewError(types.ErrProviderUnavailable,
				"no provider configured: use WithOpenAI or WithProvider")
		}
		provider = providers.NewOpenAI(providers.OpenAIConfig{
			Model:  o.openAIModel,
			APIKey: o.apiKey,
		}, logger)
	}

	var engineOpts []voting.Option
	if o.metricsNamespace != "" {
		engineOpts = append(engineOpts, voting.WithMetrics(metrics.NewCollector(o.metricsNamespace, logger)))
	}
	if o.tracer != nil {
		engineOpts = append(engineOpts, voting.WithTracer(o.tracer))
	}
	return voting.NewEngine(provider, logger, engineOpts...), nil
}
