package match

import (
	"strings"
)

// containScore is returned whenever one normalized name contains the
// other. It is a fixed constant, not a ratio of the two lengths.
const containScore = 0.8

// Score computes the similarity between two channel display names.
// Rules are evaluated in order, first applicable rule wins:
//  1. equal normalized forms -> 1.0
//  2. non-empty containment in either direction -> 0.8
//  3. Levenshtein fallback -> (len(longer) - distance) / len(longer)
//
// The fallback is not clamped: very dissimilar names of unequal length
// can score below 0. Callers filter with a threshold.
func Score(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 1.0
	}

	if na != "" && nb != "" &&
		(strings.Contains(na, nb) || strings.Contains(nb, na)) {
		return containScore
	}

	longer, shorter := na, nb
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	// Both empty is caught by the equality rule; keep a defensive fallback.
	if len(longer) == 0 {
		return 1.0
	}

	dist := levenshtein(longer, shorter)
	return float64(len(longer)-dist) / float64(len(longer))
}

// levenshtein computes the character-level edit distance between a and b
// (unit cost insertions, deletions and substitutions) with the full
// dynamic-programming matrix.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	lenA, lenB := len(ra), len(rb)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
		dp[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min3(
				dp[i-1][j]+1,      // deletion
				dp[i][j-1]+1,      // insertion
				dp[i-1][j-1]+cost, // substitution
			)
		}
	}
	return dp[lenA][lenB]
}

func min3(x, y, z int) int {
	if y < x {
		x = y
	}
	if z < x {
		x = z
	}
	return x
}
