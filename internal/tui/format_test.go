package tui

import (
	"strings"
	"testing"

	"github.com/jmorrow/chatvault/internal/testutil"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.bytes); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcd" {
		t.Errorf("padRight truncates = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"newlines replaced", "a\nb\tc", 10, "a b c"},
		{"tiny width", "hello", 2, "he"},
		{"cjk width", "世界世界", 5, "世..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunes(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("wrapped line %q exceeds width", line)
		}
	}
	joined := strings.Join(lines, " ")
	testutil.AssertContainsAll(t, joined, []string{"quick", "lazy dog"})

	// Existing newlines are preserved as line breaks.
	lines = wrapText("one\ntwo", 80)
	testutil.AssertStrings(t, lines, "one", "two")
}

func TestWrapTextZeroWidthDefaults(t *testing.T) {
	lines := wrapText("hello", 0)
	testutil.AssertStrings(t, lines, "hello")
}
