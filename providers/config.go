package providers

import (
	"os"
	"time"
)

// OpenAIConfig configures the OpenAI-compatible provider.
type OpenAIConfig struct {
	// BaseURL 端点基址，默认官方 API。Ollama/vLLM 等兼容端点可直接替换。
	BaseURL string `json:"base_url" yaml:"base_url"`
	// APIKey 为空时回退到 OPENAI_API_KEY 环境变量。
	APIKey string `json:"api_key" yaml:"api_key"`
	// Model 默认模型，可被单次请求覆盖。
	Model string `json:"model" yaml:"model"`
	// Temperature 采样温度。共识投票依赖样本间的独立噪声，不要设 0。
	Temperature float64 `json:"temperature" yaml:"temperature"`
	// MaxTokens 单次生成的 token 上限。
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
	// Timeout 单次调用超时。
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// withDefaults fills unset fields.
func (c OpenAIConfig) withDefaults() OpenAIConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com"
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.1
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1024
	}
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	return c
}
