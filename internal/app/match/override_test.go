package match

import (
	"testing"

	"epgsync/internal/app/playlist"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing quality tag",
			input:    "TF1 HD (1080p)",
			expected: "TF1 HD",
		},
		{
			name:     "bracketed geo tag",
			input:    "France 2 [FR]",
			expected: "France 2",
		},
		{
			name:     "both annotation kinds",
			input:    "Canal+ (720p) [VIP]",
			expected: "Canal+",
		},
		{
			name:     "no annotations",
			input:    "BFM TV",
			expected: "BFM TV",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanName(tt.input)
			if result != tt.expected {
				t.Errorf("CleanName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolverLookups(t *testing.T) {
	resolver := NewResolver(map[string]string{
		"TF1 HD":      "TF1.fr",
		"M6 (backup)": "M6.fr",
		"France 2":    "France2.fr",
	})

	tests := []struct {
		name       string
		channel    string
		expectedID string
		expectedOK bool
	}{
		{
			name:       "cleaned name hit",
			channel:    "TF1 HD (1080p)",
			expectedID: "TF1.fr",
			expectedOK: true,
		},
		{
			name:       "fallback to the original name",
			channel:    "M6 (backup)",
			expectedID: "M6.fr",
			expectedOK: true,
		},
		{
			name:       "exact hit without annotations",
			channel:    "France 2",
			expectedID: "France2.fr",
			expectedOK: true,
		},
		{
			name:       "lookups are case sensitive",
			channel:    "tf1 hd",
			expectedID: "",
			expectedOK: false,
		},
		{
			name:       "unknown channel",
			channel:    "Some Obscure Channel",
			expectedID: "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := resolver.Resolve(playlist.Channel{Name: tt.channel})
			if id != tt.expectedID || ok != tt.expectedOK {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
					tt.channel, id, ok, tt.expectedID, tt.expectedOK)
			}
		})
	}
}

func TestResolveAllCoversInput(t *testing.T) {
	resolver := NewResolver(map[string]string{"TF1": "TF1.fr"})
	channels := []playlist.Channel{
		{Name: "TF1", URL: "u1"},
		{Name: "Some Obscure Channel", URL: "u2"},
	}

	mapped := resolver.ResolveAll(channels)
	if len(mapped) != len(channels) {
		t.Fatalf("got %d mapped channels, want %d", len(mapped), len(channels))
	}
	if !mapped[0].HasID || mapped[0].ID != "TF1.fr" {
		t.Errorf("got %+v, want TF1 resolved to TF1.fr", mapped[0])
	}
	if mapped[1].HasID || mapped[1].ID != "" {
		t.Errorf("got %+v, want an unresolved channel with an empty id", mapped[1])
	}
}

// The embedded table registers raw and annotation-stripped variants.
func TestDefaultOverrides(t *testing.T) {
	table := DefaultOverrides()
	resolver := NewResolver(table)

	for _, name := range []string{"TF1", "TF1 HD", "TF1 HD (1080p)", "BFM TV", "BFMTV"} {
		if _, ok := resolver.Resolve(playlist.Channel{Name: name}); !ok {
			t.Errorf("Resolve(%q) missed, want a hit from the embedded table", name)
		}
	}

	if id, _ := resolver.Resolve(playlist.Channel{Name: "TF1 HD (1080p)"}); id != "TF1.fr" {
		t.Errorf("got id %q for TF1 HD (1080p), want TF1.fr", id)
	}
}
