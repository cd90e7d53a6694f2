package providers

import (
	"context"
	"sync/atomic"
)

// Deterministic test doubles. These live in the main package (not _test.go)
// so engine and caller tests can share them.

// Static always returns the same text.
type Static struct {
	Text string
}

func (s *Static) Name() string { return "static" }

func (s *Static) Generate(ctx context.Context, req *Request) (*Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Generation{Text: s.Text}, nil
}

// Script replays a fixed sequence of outcomes, cycling when exhausted.
// 调用顺序与采样发起顺序一致，但完成顺序由调度决定。
type Script struct {
	Steps []ScriptStep
	next  atomic.Int64
}

// ScriptStep is one scripted outcome: either Text or Err.
type ScriptStep struct {
	Text string
	Err  error
}

func (s *Script) Name() string { return "script" }

func (s *Script) Generate(ctx context.Context, req *Request) (*Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := int(s.next.Add(1)-1) % len(s.Steps)
	step := s.Steps[i]
	if step.Err != nil {
		return nil, step.Err
	}
	return &Generation{Text: step.Text}, nil
}

// Func adapts a plain function to the Generator interface.
type Func func(ctx context.Context, req *Request) (*Generation, error)

func (f Func) Name() string { return "func" }

func (f Func) Generate(ctx context.Context, req *Request) (*Generation, error) {
	return f(ctx, req)
}
