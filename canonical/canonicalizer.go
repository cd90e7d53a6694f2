package canonical

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BaSui01/quorum/types"
)

// FieldError reports a required field missing from an otherwise valid answer.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("required field %q missing", e.Field)
}

// Canonicalize converts a raw candidate answer into its canonical form.
//
// Without a schema the raw text is whitespace-normalized. With a schema the
// last complete JSON object is extracted from the text, validated against the
// schema's required fields, and re-serialized with sorted keys so that
// formatting variants of the same answer compare equal.
func Canonicalize(raw string, schema *types.AnswerSchema) (string, error) {
	if schema == nil {
		return strings.Join(strings.Fields(raw), " "), nil
	}

	obj, err := extractObject(raw)
	if err != nil {
		return "", err
	}
	for _, field := range schema.RequiredFields {
		if _, ok := obj[field]; !ok {
			return "", &FieldError{Field: field}
		}
	}

	// encoding/json marshals map keys in sorted order and numbers in their
	// shortest decimal form, which is exactly the normal form we need.
	out, err := json.Marshal(obj)
	if err != nil {
		return "", types.NewError(types.ErrNotCanonicalizable, "reserialize failed").WithCause(err)
	}
	return string(out), nil
}

// extractObject 从原始文本末尾反向扫描，取最后一个括号配平的 JSON 对象。
// 模型经常在对象后面追加说明文字，从末尾扫描可以跳过这些尾巴。
func extractObject(raw string) (map[string]any, error) {
	braces := 0
	end := -1
	for i := len(raw) - 1; i >= 0; i-- {
		switch raw[i] {
		case '}':
			if braces == 0 {
				end = i + 1
			}
			braces++
		case '{':
			braces--
			if braces == 0 && end != -1 {
				var obj map[string]any
				if err := json.Unmarshal([]byte(raw[i:end]), &obj); err != nil {
					return nil, types.NewError(types.ErrNotCanonicalizable, "invalid JSON object").WithCause(err)
				}
				return obj, nil
			}
		}
	}
	return nil, types.NewError(types.ErrNotCanonicalizable, "no complete JSON object found")
}
