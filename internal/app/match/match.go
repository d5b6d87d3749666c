// Package match pairs playlist channel names with EPG display names.
package match

import (
	"math"

	"epgsync/internal/app/epg"
	"epgsync/internal/app/playlist"
)

// Threshold is the acceptance bound for fuzzy matches. A candidate is
// eligible only when its score is strictly greater than this value.
const Threshold = 0.6

// Result pairs a playlist channel with its best-scoring EPG candidate.
type Result struct {
	Channel playlist.Channel
	EpgID   string
	EpgName string
	Score   float64
}

// Match scores every playlist channel against every EPG channel and
// partitions the input into matched and unmatched sets. The best
// candidate is tracked with strict greater-than comparison, so on a tie
// the EPG channel encountered first wins; this keeps runs reproducible.
// Inputs are not mutated.
func Match(channels []playlist.Channel, catalog []epg.Channel) ([]Result, []playlist.Channel) {
	matches := make([]Result, 0, len(channels))
	unmatched := make([]playlist.Channel, 0)

	for _, ch := range channels {
		bestIdx := -1
		bestScore := math.Inf(-1)
		for i := range catalog {
			if s := Score(ch.Name, catalog[i].DisplayName()); s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}

		if bestIdx < 0 || bestScore <= Threshold {
			unmatched = append(unmatched, ch)
			continue
		}

		matches = append(matches, Result{
			Channel: ch,
			EpgID:   catalog[bestIdx].ID,
			EpgName: catalog[bestIdx].DisplayName(),
			Score:   bestScore,
		})
	}
	return matches, unmatched
}
