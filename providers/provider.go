package providers

import (
	"context"
	"time"
)

// Request is one sampling request passed to a Generator.
type Request struct {
	Prompt       string  `json:"prompt"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Model        string  `json:"model,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
}

// Generation is the outcome of one successful sampling call.
type Generation struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// Generator 是引擎唯一的出站边界。实现必须尊重 ctx 取消：
// 胜出条件达成后在途调用会被协作式取消。
type Generator interface {
	// Generate produces one candidate answer for the request.
	Generate(ctx context.Context, req *Request) (*Generation, error)
	// Name returns the provider's identifier for logs and metrics.
	Name() string
}

// HealthStatus reports the result of a provider health probe.
type HealthStatus struct {
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency"`
}

// HealthChecker is an optional interface for providers that support a
// lightweight liveness probe.
type HealthChecker interface {
	HealthCheck(ctx context.Context) (*HealthStatus, error)
}
