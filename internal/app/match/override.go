package match

import (
	"regexp"
	"strings"

	"epgsync/internal/app/playlist"
)

// annotationRegex matches parenthesized and bracketed annotations such
// as quality or geo tags, e.g. "(1080p)" or "[FR]".
var annotationRegex = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

// CleanName strips annotation runs from a display name and trims the
// surrounding whitespace. "TF1 HD (1080p)" becomes "TF1 HD".
func CleanName(name string) string {
	return strings.TrimSpace(annotationRegex.ReplaceAllString(name, ""))
}

// Mapped is a playlist channel after the override pass. HasID records
// whether a table entry resolved it.
type Mapped struct {
	Channel playlist.Channel
	ID      string
	HasID   bool
}

// Resolver applies a curated name-to-identifier table. Lookups are
// exact and case-sensitive: no fuzziness, so a hit is always correct.
type Resolver struct {
	table map[string]string
}

func NewResolver(table map[string]string) *Resolver {
	return &Resolver{table: table}
}

// Resolve looks up the cleaned display name, then falls back to the
// name as authored.
func (r *Resolver) Resolve(ch playlist.Channel) (string, bool) {
	if id, ok := r.table[CleanName(ch.Name)]; ok {
		return id, true
	}
	if id, ok := r.table[ch.Name]; ok {
		return id, true
	}
	return "", false
}

// ResolveAll runs the override pass over the whole playlist. Every
// input channel appears in the output exactly once.
func (r *Resolver) ResolveAll(channels []playlist.Channel) []Mapped {
	mapped := make([]Mapped, 0, len(channels))
	for _, ch := range channels {
		id, ok := r.Resolve(ch)
		mapped = append(mapped, Mapped{
			Channel: ch,
			ID:      id,
			HasID:   ok,
		})
	}
	return mapped
}
