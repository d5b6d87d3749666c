package match

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case",
			input:    "TF1",
			expected: "tf1",
		},
		{
			name:     "spaces deleted not replaced",
			input:    "BFM TV",
			expected: "bfmtv",
		},
		{
			name:     "punctuation deleted",
			input:    "France2.fr",
			expected: "france2fr",
		},
		{
			name:     "symbols and annotations",
			input:    "Canal+ (1080p) [FR]",
			expected: "canal1080pfr",
		},
		{
			name:     "digits preserved",
			input:    "France 24",
			expected: "france24",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only symbols",
			input:    "+-*/!?",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"TF1", "France 2 HD", "Canal+ (1080p)", "", "bfmtv", "L'Équipe 21"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
