package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	err := NewError(ErrProviderFailure, "provider failed").
		WithCause(root).
		WithRetryable(true).
		WithProvider("openai")

	if GetErrorCode(err) != ErrProviderFailure {
		t.Fatalf("expected code %s, got %s", ErrProviderFailure, GetErrorCode(err))
	}
	if !IsRetryable(err) {
		t.Fatalf("expected retryable")
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is unwrap to root")
	}
	if got := err.Error(); got == "" {
		t.Fatalf("expected non-empty error string")
	}
}

func TestError_IsErrorCodeThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", NewError(ErrNotCanonicalizable, "no JSON object"))
	if !IsErrorCode(err, ErrNotCanonicalizable) {
		t.Fatalf("expected NOT_CANONICALIZABLE through wrapping")
	}
	if IsErrorCode(errors.New("plain"), ErrNotCanonicalizable) {
		t.Fatalf("plain error must not match any code")
	}
}
