package cli

import (
	"path/filepath"
	"testing"
)

func TestDotFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dir   string
		want  string
	}{
		{"NoDir", "plan.txt", "", "plan.txt.dot"},
		{"NoDirWithPath", "dumps/plan.txt", "", "dumps/plan.txt.dot"},
		{"WithDir", "dumps/plan.txt", "out", filepath.Join("out", "plan.txt.dot")},
		{"DirStripsPath", "/var/log/pg/query.dump", "dots", filepath.Join("dots", "query.dump.dot")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dotFilename(tt.input, tt.dir); got != tt.want {
				t.Errorf("dotFilename(%q, %q) = %q, want %q", tt.input, tt.dir, got, tt.want)
			}
		})
	}
}

func TestImgFilename(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		dir    string
		format string
		want   string
	}{
		{"PNG", "plan.txt", "", "png", "plan.txt.png"},
		{"SVG", "plan.txt", "", "svg", "plan.txt.svg"},
		{"WithDir", "dumps/plan.txt", "img", "png", filepath.Join("img", "plan.txt.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imgFilename(tt.input, tt.dir, tt.format); got != tt.want {
				t.Errorf("imgFilename(%q, %q, %q) = %q, want %q", tt.input, tt.dir, tt.format, got, tt.want)
			}
		})
	}
}
