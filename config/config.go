package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/quorum/providers"
	"github.com/BaSui01/quorum/types"
)

// Config 是 Quorum 的完整配置结构
type Config struct {
	// Provider 生成协作者配置
	Provider providers.OpenAIConfig `yaml:"provider"`
	// Policy 默认投票策略（单次 Decide 可覆盖）
	Policy types.Policy `yaml:"policy"`
	// Log 日志配置
	Log LogConfig `yaml:"log"`
	// Metrics 指标配置
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig 日志配置
type LogConfig struct {
	// 日志级别: debug, info, warn, error
	Level string `yaml:"level"`
	// 输出格式: json, console
	Format string `yaml:"format"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 是否启用
	Enabled bool `yaml:"enabled"`
	// 指标命名空间
	Namespace string `yaml:"namespace"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Policy: types.DefaultPolicy(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "quorum",
		},
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := zapcore.ParseLevel(levelOrDefault(c.Log.Level)); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Build 按配置构建 zap Logger
func (c LogConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(levelOrDefault(c.Level))
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if c.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
