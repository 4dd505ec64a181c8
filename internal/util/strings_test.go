package util

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "tiny budget collapses to ellipsis",
			input:    "hello",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "multibyte runes counted as one",
			input:    "héllo wörld",
			maxLen:   8,
			expected: "héllo...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Render("styled region content")

	got := TruncateANSI(styled, 10)
	if lipgloss.Width(got) > 10 {
		t.Errorf("truncated width = %d, want <= 10", lipgloss.Width(got))
	}
	if !strings.Contains(got, "...") {
		t.Error("truncated output should carry the ellipsis tail")
	}

	// Short styled strings pass through untouched.
	if TruncateANSI(styled, 80) != styled {
		t.Error("strings within the budget should be returned unchanged")
	}

	if TruncateANSI("anything", 2) != "..." {
		t.Error("tiny budgets collapse to the ellipsis")
	}
}
