package render

import (
	"slices"
	"testing"

	"github.com/japinli/pg-node2graph/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"png", true},
		{"svg", true},
		{"jpg", true},
		{"dot", true},
		{"gif", false},
		{"PNG", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.valid && err != nil {
				t.Errorf("ValidateFormat(%q) = %v, want nil", tt.format, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("ValidateFormat(%q) = nil, want error", tt.format)
				}
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
			}
		})
	}
}

func TestFormatsSorted(t *testing.T) {
	got := Formats()
	if !slices.IsSorted(got) {
		t.Errorf("Formats() = %v, want sorted", got)
	}
	for _, want := range []string{"png", "svg", "jpg", "dot"} {
		if !slices.Contains(got, want) {
			t.Errorf("Formats() = %v, missing %q", got, want)
		}
	}
}
