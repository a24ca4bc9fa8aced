package cmd

import "testing"

func TestBlankIfEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "-"},
		{"   ", "-"},
		{"T4", "T4"},
	}
	for _, tt := range tests {
		if got := blankIfEmpty(tt.input); got != tt.want {
			t.Errorf("blankIfEmpty(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
