package redflag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/quorum/types"
)

type stubCounter struct{ perChar int }

func (s stubCounter) CountTokens(text string) int { return len(text) * s.perChar }

func TestFilter_LengthBounds(t *testing.T) {
	t.Parallel()

	task := types.NewTask("q")
	f := NewFilter(task, types.RedFlagBounds{MinLen: 2, MaxLen: 10}, nil, nil)

	tests := []struct {
		name   string
		raw    string
		accept bool
		reason types.RedFlagReason
	}{
		{"within bounds", "hello", true, ""},
		{"too short", "x", false, types.ReasonTooShort},
		{"too long", strings.Repeat("a", 11), false, types.ReasonTooLong},
		{"exactly max", strings.Repeat("a", 10), true, ""},
		{"runes not bytes", "héllo wörld", false, types.ReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Evaluate(tt.raw)
			assert.Equal(t, tt.accept, res.Accepted)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestFilter_TokenBound(t *testing.T) {
	t.Parallel()

	task := types.NewTask("q")
	f := NewFilter(task, types.RedFlagBounds{MaxTokens: 5}, stubCounter{perChar: 1}, nil)

	assert.True(t, f.Evaluate("abcde").Accepted)

	res := f.Evaluate("abcdef")
	require.False(t, res.Accepted)
	assert.Equal(t, types.ReasonTooManyTokens, res.Reason)
}

func TestFilter_SchemaEscalation(t *testing.T) {
	t.Parallel()

	task := types.NewTask("q")
	task.Schema = &types.AnswerSchema{RequiredFields: []string{"result"}}
	f := NewFilter(task, types.RedFlagBounds{}, nil, nil)

	t.Run("valid object accepted with canonical form", func(t *testing.T) {
		res := f.Evaluate(`{ "result" : "ok" }`)
		require.True(t, res.Accepted)
		assert.Equal(t, `{"result":"ok"}`, res.Canonical)
	})

	t.Run("unparseable output red-flagged", func(t *testing.T) {
		res := f.Evaluate("no json here")
		require.False(t, res.Accepted)
		assert.Equal(t, types.ReasonNotCanonicalizable, res.Reason)
	})

	t.Run("missing field red-flagged distinctly", func(t *testing.T) {
		res := f.Evaluate(`{"other": true}`)
		require.False(t, res.Accepted)
		assert.Equal(t, types.ReasonMissingField, res.Reason)
	})
}

func TestFilter_RequireSchemaWithoutTaskSchema(t *testing.T) {
	t.Parallel()

	task := types.NewTask("q")
	f := NewFilter(task, types.RedFlagBounds{RequireSchema: true}, nil, nil)

	assert.True(t, f.Evaluate(`{"anything": 1}`).Accepted)
	res := f.Evaluate("plain text")
	require.False(t, res.Accepted)
	assert.Equal(t, types.ReasonNotCanonicalizable, res.Reason)
}
