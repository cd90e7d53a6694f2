package voting

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/quorum/internal/metrics"
	"github.com/BaSui01/quorum/providers"
	"github.com/BaSui01/quorum/redflag"
	"github.com/BaSui01/quorum/tally"
	"github.com/BaSui01/quorum/types"
)

const tracerName = "github.com/BaSui01/quorum/voting"

// Engine is the composition root: it wires filter, tally, and scheduler into
// a single Decide operation. Stateless across calls; safe for concurrent use.
type Engine struct {
	provider  providers.Generator
	logger    *zap.Logger
	collector *metrics.Collector
	tracer    trace.Tracer
	counter   redflag.TokenCounter
}

// Option configures the engine.
type Option func(*Engine)

// WithMetrics attaches a prometheus collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.collector = c }
}

// WithTracer overrides the default otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithTokenCounter overrides the tiktoken-backed token counter used for the
// MaxTokens red-flag bound.
func WithTokenCounter(c redflag.TokenCounter) Option {
	return func(e *Engine) { e.counter = c }
}

// NewEngine creates a voting engine over the given generation provider.
func NewEngine(provider providers.Generator, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		provider: provider,
		logger:   logger.With(zap.String("component", "voting")),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Decide runs one consensus decision: repeatedly samples the provider under
// the policy's budget and returns a verdict with the full ballot audit trail.
//
// The only error return is an invalid policy; timeouts and exhausted budgets
// surface as ABORTED and INCONCLUSIVE verdicts, never as errors.
func (e *Engine) Decide(ctx context.Context, task *types.Task, policy types.Policy) (*types.Verdict, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	ctx, span := e.tracer.Start(ctx, "quorum.decide",
		trace.WithAttributes(
			attribute.String("quorum.task_id", task.ID),
			attribute.String("quorum.model", task.Model),
			attribute.Int("quorum.k", policy.K),
			attribute.Int("quorum.max_attempts", policy.MaxAttempts),
		))
	defer span.End()

	// 边界派生发生在采样循环之前，循环过程中保持不变。
	bounds := redflag.DeriveBounds(policy.RedFlagBounds, task)
	var counter redflag.TokenCounter
	if bounds.MaxTokens > 0 {
		counter = e.counter
		if counter == nil {
			counter = redflag.NewTokenCounter(task.Model)
		}
	}

	s := &scheduler{
		task:      task,
		policy:    policy,
		provider:  e.provider,
		filter:    redflag.NewFilter(task, bounds, counter, e.logger),
		tally:     tally.New(),
		logger:    e.logger,
		collector: e.collector,
	}

	verdict := s.run(ctx)

	span.SetAttributes(
		attribute.String("quorum.outcome", string(verdict.Outcome)),
		attribute.Int("quorum.total_attempts", verdict.TotalAttempts),
		attribute.Int("quorum.total_red_flags", verdict.TotalRedFlags),
	)
	if e.collector != nil {
		e.collector.RecordDecision(e.provider.Name(), string(verdict.Outcome), verdict.TotalAttempts, verdict.Elapsed)
	}
	e.logger.Info("decision completed",
		zap.String("task_id", task.ID),
		zap.String("outcome", string(verdict.Outcome)),
		zap.Int("attempts", verdict.TotalAttempts),
		zap.Int("red_flags", verdict.TotalRedFlags),
		zap.Duration("elapsed", verdict.Elapsed),
	)
	return verdict, nil
}
