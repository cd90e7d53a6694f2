package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	valid := DefaultPolicy()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Policy)
	}{
		{"k below one", func(p *Policy) { p.K = 0 }},
		{"negative k", func(p *Policy) { p.K = -2 }},
		{"budget below k", func(p *Policy) { p.K = 5; p.MaxAttempts = 4 }},
		{"zero concurrency", func(p *Policy) { p.ConcurrencyLimit = 0 }},
		{"negative timeout", func(p *Policy) { p.Timeout = -time.Second }},
		{"negative launch rate", func(p *Policy) { p.LaunchRate = -1 }},
		{"negative min len", func(p *Policy) { p.RedFlagBounds.MinLen = -1 }},
		{"min above max", func(p *Policy) { p.RedFlagBounds.MinLen = 10; p.RedFlagBounds.MaxLen = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, ErrInvalidPolicy))
		})
	}
}

func TestPolicy_ValidateAcceptsOptionalBounds(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	p.RedFlagBounds = RedFlagBounds{MinLen: 1, MaxLen: 0, MaxTokens: 0}
	assert.NoError(t, p.Validate(), "zero max bounds mean the check is disabled")
}

func TestNewTask_Defaults(t *testing.T) {
	t.Parallel()

	task := NewTask("what is 6*7?")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "what is 6*7?", task.Prompt)
	assert.Equal(t, TrustDefault, task.Trust)
	assert.Nil(t, task.Schema)
}

func TestBallot_Counted(t *testing.T) {
	t.Parallel()

	assert.True(t, Ballot{Canonical: "42"}.Counted())
	assert.False(t, Ballot{RedFlagged: true, Reason: ReasonTooLong}.Counted())
}
