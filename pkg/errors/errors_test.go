package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeMalformedTree, "unexpected %q", '}'),
			want: `MALFORMED_TREE: unexpected '}'`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeFileNotFound, stderrors.New("no such file"), "open %s", "plan.txt"),
			want: "FILE_NOT_FOUND: open plan.txt: no such file",
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

func TestIs(t *testing.T) {
	err := New(ErrCodeMalformedTree, "unterminated structure")

	if !Is(err, ErrCodeMalformedTree) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeRenderFailed) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeMalformedTree) {
		t.Error("Is() should not match a non-structured error")
	}
}

func TestIsWrappedChain(t *testing.T) {
	inner := New(ErrCodeMalformedTree, "unbalanced close")
	outer := fmt.Errorf("convert plan.txt: %w", inner)

	if !Is(outer, ErrCodeMalformedTree) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
	if GetCode(outer) != ErrCodeMalformedTree {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeMalformedTree)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeRenderFailed, cause, "render png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidColorMap, "invalid mapping at line 3")
	if got := UserMessage(err); strings.Contains(got, string(ErrCodeInvalidColorMap)) {
		t.Errorf("UserMessage() = %q, should not contain the code", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
