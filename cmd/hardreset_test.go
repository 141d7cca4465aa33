package cmd

import (
	"io"
	"strings"
	"testing"
)

func TestConfirmHardReset(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"y", true}, // EOF without trailing newline still counts
		{"yes\n", false},
		{"n\n", false},
		{"N\n", false},
		{"\n", false},
		{"", false},
		{"anything else\n", false},
	}

	for _, tc := range tests {
		got := confirmHardReset(strings.NewReader(tc.input), io.Discard, "main", "origin")
		if got != tc.want {
			t.Errorf("input %q: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConfirmHardResetPromptNamesBranch(t *testing.T) {
	var out strings.Builder
	confirmHardReset(strings.NewReader("n\n"), &out, "feature/login", "origin")

	prompt := out.String()
	if !strings.Contains(prompt, "feature/login") {
		t.Errorf("prompt does not name the current branch: %q", prompt)
	}
	if !strings.Contains(prompt, "origin/feature/login") {
		t.Errorf("prompt does not name the reset target: %q", prompt)
	}
}
