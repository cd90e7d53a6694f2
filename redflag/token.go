package redflag

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts tokens for the MaxTokens bound.
type TokenCounter interface {
	CountTokens(text string) int
}

// tiktokenCounter 基于 tiktoken 的计数实现，首次使用时惰性初始化。
// 编码加载失败时退化为字符数/4 的估算，保证过滤器永不阻塞采样。
type tiktokenCounter struct {
	model   string
	once    sync.Once
	enc     *tiktoken.Tiktoken
	initErr error
}

// NewTokenCounter returns a tiktoken-backed counter for the given model.
// An empty model falls back to the cl100k_base encoding.
func NewTokenCounter(model string) TokenCounter {
	return &tiktokenCounter{model: model}
}

func (c *tiktokenCounter) CountTokens(text string) int {
	c.once.Do(func() {
		if c.model != "" {
			c.enc, c.initErr = tiktoken.EncodingForModel(c.model)
			if c.initErr == nil {
				return
			}
		}
		c.enc, c.initErr = tiktoken.GetEncoding("cl100k_base")
	})
	if c.initErr != nil || c.enc == nil {
		return len(text) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}
