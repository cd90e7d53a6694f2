package redflag

import (
	"errors"

	"go.uber.org/zap"

	"github.com/BaSui01/quorum/canonical"
	"github.com/BaSui01/quorum/types"
)

// Result is the outcome of evaluating one raw candidate.
type Result struct {
	Accepted  bool
	Canonical string
	Reason    types.RedFlagReason
}

// Filter rejects malformed candidates before they can count as a vote.
// Bounds and schema are fixed at construction; Evaluate is pure and safe for
// concurrent use.
type Filter struct {
	bounds  types.RedFlagBounds
	schema  *types.AnswerSchema
	counter TokenCounter
	logger  *zap.Logger
}

// NewFilter creates a filter for one task with already-derived bounds.
// counter may be nil when the token bound is disabled.
func NewFilter(task *types.Task, bounds types.RedFlagBounds, counter TokenCounter, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	schema := task.Schema
	if schema == nil && bounds.RequireSchema {
		// 策略要求结构化输出但任务未声明字段约束：仍要求合法 JSON 对象。
		schema = &types.AnswerSchema{}
	}
	if counter == nil && bounds.MaxTokens > 0 {
		counter = NewTokenCounter(task.Model)
	}
	return &Filter{
		bounds:  bounds,
		schema:  schema,
		counter: counter,
		logger:  logger.With(zap.String("component", "redflag")),
	}
}

// Evaluate checks one raw candidate and either accepts it with its canonical
// form or rejects it with a reason code.
func (f *Filter) Evaluate(raw string) Result {
	n := len([]rune(raw))
	if f.bounds.MinLen > 0 && n < f.bounds.MinLen {
		return f.reject(types.ReasonTooShort, n)
	}
	if f.bounds.MaxLen > 0 && n > f.bounds.MaxLen {
		return f.reject(types.ReasonTooLong, n)
	}
	if f.bounds.MaxTokens > 0 && f.counter != nil {
		if tokens := f.counter.CountTokens(raw); tokens > f.bounds.MaxTokens {
			return f.reject(types.ReasonTooManyTokens, tokens)
		}
	}

	canon, err := canonical.Canonicalize(raw, f.schema)
	if err != nil {
		var fieldErr *canonical.FieldError
		if errors.As(err, &fieldErr) {
			return f.reject(types.ReasonMissingField, n)
		}
		return f.reject(types.ReasonNotCanonicalizable, n)
	}
	return Result{Accepted: true, Canonical: canon}
}

func (f *Filter) reject(reason types.RedFlagReason, size int) Result {
	f.logger.Debug("candidate red-flagged",
		zap.String("reason", string(reason)),
		zap.Int("size", size),
	)
	return Result{Reason: reason}
}
