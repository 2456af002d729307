package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "NoCause",
			err:  New(ErrCodeInvalidForm, "compact count %d too small", 3),
			want: "INVALID_FORM: compact count 3 too small",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInternal, stderrors.New("boom"), "encode failed"),
			want: "INTERNAL_ERROR: encode failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	base := New(ErrCodeGraphNotFound, "graph %q", "abc")
	wrapped := fmt.Errorf("lookup: %w", base)

	if !Is(wrapped, ErrCodeGraphNotFound) {
		t.Error("Is() = false for wrapped error, want true")
	}
	if Is(wrapped, ErrCodeInvalidForm) {
		t.Error("Is() = true for wrong code, want false")
	}
	if got := GetCode(wrapped); got != ErrCodeGraphNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeGraphNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidWalk, "walk is empty")); got != "walk is empty" {
		t.Errorf("UserMessage() = %q, want %q", got, "walk is empty")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := Wrap(ErrCodeInternal, cause, "context")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}
}
