package canonical

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/BaSui01/quorum/types"
)

// TestProperty_Canonicalize_FormattingInvariance tests 规范化往返不变量:
// 同一结构化答案的任意两种表面格式（键序、空白、数字写法）必须归一到
// 同一规范形式。
func TestProperty_Canonicalize_FormattingInvariance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numFields := rapid.IntRange(1, 6).Draw(rt, "numFields")
		keys := make([]string, numFields)
		obj := make(map[string]any, numFields)
		for i := 0; i < numFields; i++ {
			key := fmt.Sprintf("field_%d", i)
			keys[i] = key
			switch rapid.IntRange(0, 2).Draw(rt, fmt.Sprintf("kind_%d", i)) {
			case 0:
				obj[key] = rapid.StringMatching(`[a-zA-Z0-9 ]{0,20}`).Draw(rt, fmt.Sprintf("str_%d", i))
			case 1:
				obj[key] = float64(rapid.IntRange(-1000, 1000).Draw(rt, fmt.Sprintf("int_%d", i)))
			default:
				obj[key] = rapid.Bool().Draw(rt, fmt.Sprintf("bool_%d", i))
			}
		}

		schema := &types.AnswerSchema{RequiredFields: keys[:1]}

		// Variant A: standard marshal order.
		a, err := json.Marshal(obj)
		require.NoError(rt, err)

		// Variant B: reversed key order with noisy whitespace and a trailer.
		var sb strings.Builder
		sb.WriteString("{ ")
		for i := numFields - 1; i >= 0; i-- {
			if i < numFields-1 {
				sb.WriteString(" ,\n\t")
			}
			part, err := json.Marshal(map[string]any{keys[i]: obj[keys[i]]})
			require.NoError(rt, err)
			sb.WriteString(strings.TrimSuffix(strings.TrimPrefix(string(part), "{"), "}"))
		}
		sb.WriteString(" }")
		b := "Sure, here you go:\n" + sb.String()

		canonA, err := Canonicalize(string(a), schema)
		require.NoError(rt, err)
		canonB, err := Canonicalize(b, schema)
		require.NoError(rt, err)
		require.Equal(rt, canonA, canonB)
	})
}

// TestProperty_Canonicalize_FreeTextWhitespace tests 自由文本模式下
// 任何空白噪声不改变规范形式。
func TestProperty_Canonicalize_FreeTextWhitespace(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9]{1,8}`), 1, 8).Draw(rt, "words")
		pads := []string{" ", "  ", "\t", "\n", " \n "}

		var noisy strings.Builder
		noisy.WriteString(pads[rapid.IntRange(0, len(pads)-1).Draw(rt, "lead")])
		for i, w := range words {
			if i > 0 {
				noisy.WriteString(pads[rapid.IntRange(0, len(pads)-1).Draw(rt, fmt.Sprintf("pad_%d", i))])
			}
			noisy.WriteString(w)
		}
		noisy.WriteString(pads[rapid.IntRange(0, len(pads)-1).Draw(rt, "trail")])

		got, err := Canonicalize(noisy.String(), nil)
		require.NoError(rt, err)
		require.Equal(rt, strings.Join(words, " "), got)
	})
}
