package types

import (
	"time"

	"github.com/google/uuid"
)

// TrustLevel 标识任务来源的信任档位，用于派生红旗边界。
// 低信任来源（例如外部抓取的文档）会收紧最大长度边界。
type TrustLevel string

const (
	TrustHigh    TrustLevel = "high"
	TrustDefault TrustLevel = "default"
	TrustLow     TrustLevel = "low"
)

// AnswerSchema declares the structural contract of an answer.
// When a task carries a schema, candidates must parse as JSON objects
// containing every required field; otherwise they are red-flagged.
type AnswerSchema struct {
	RequiredFields []string `json:"required_fields,omitempty"`
}

// Task is the input of one consensus decision. Immutable once submitted.
type Task struct {
	ID           string         `json:"id"`
	Prompt       string         `json:"prompt"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Model        string         `json:"model,omitempty"`
	Schema       *AnswerSchema  `json:"schema,omitempty"`
	Trust        TrustLevel     `json:"trust,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// NewTask creates a task with a generated ID and default trust.
func NewTask(prompt string) *Task {
	return &Task{
		ID:     uuid.NewString(),
		Prompt: prompt,
		Trust:  TrustDefault,
	}
}

// RedFlagBounds 红旗过滤边界。零值字段表示不启用对应检查
// （MaxLen/MaxTokens 可由 redflag.DeriveBounds 按任务派生）。
type RedFlagBounds struct {
	MinLen        int  `json:"min_len" yaml:"min_len"`
	MaxLen        int  `json:"max_len" yaml:"max_len"`
	MaxTokens     int  `json:"max_tokens" yaml:"max_tokens"`
	RequireSchema bool `json:"require_schema" yaml:"require_schema"`
}

// Policy controls one consensus decision. Caller-supplied, validated once
// before any sampling begins.
type Policy struct {
	// K 领先票差：最高票比次高票多出 K 票即判胜。
	K int `json:"k" yaml:"k"`
	// MaxAttempts 采样总预算（含红旗票）。
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
	// ConcurrencyLimit 同时在途的采样调用上限。
	ConcurrencyLimit int `json:"concurrency_limit" yaml:"concurrency_limit"`
	// Timeout 整个决策的墙钟预算。
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// LaunchRate 采样发起速率（次/秒），0 表示不限速。
	LaunchRate float64 `json:"launch_rate" yaml:"launch_rate"`
	// RedFlagBounds 红旗边界。
	RedFlagBounds RedFlagBounds `json:"red_flag_bounds" yaml:"red_flag_bounds"`
}

// DefaultPolicy returns the policy used when the caller supplies nothing.
func DefaultPolicy() Policy {
	return Policy{
		K:                3,
		MaxAttempts:      40,
		ConcurrencyLimit: 4,
		Timeout:          5 * time.Minute,
	}
}

// Validate checks the policy invariants. It returns an INVALID_POLICY error
// on the first violation; a valid policy is never mutated.
func (p Policy) Validate() error {
	if p.K < 1 {
		return NewError(ErrInvalidPolicy, "k must be >= 1")
	}
	if p.MaxAttempts < p.K {
		return NewError(ErrInvalidPolicy, "max_attempts must be >= k")
	}
	if p.ConcurrencyLimit < 1 {
		return NewError(ErrInvalidPolicy, "concurrency_limit must be >= 1")
	}
	if p.Timeout < 0 {
		return NewError(ErrInvalidPolicy, "timeout must not be negative")
	}
	if p.LaunchRate < 0 {
		return NewError(ErrInvalidPolicy, "launch_rate must not be negative")
	}
	b := p.RedFlagBounds
	if b.MinLen < 0 || b.MaxLen < 0 || b.MaxTokens < 0 {
		return NewError(ErrInvalidPolicy, "red flag bounds must not be negative")
	}
	if b.MaxLen > 0 && b.MinLen > b.MaxLen {
		return NewError(ErrInvalidPolicy, "red flag min_len must be <= max_len")
	}
	return nil
}
