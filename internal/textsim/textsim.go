// Package textsim provides the string similarity kernels used by the field
// comparators. All functions are pure and symmetric in their arguments.
package textsim

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Levenshtein returns the classic edit distance between a and b.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// NormalizedLevenshtein returns 1 - distance/maxLen, clamped to [0,1].
// Identical strings score 1.0; two empty strings score 1.0 by convention.
func NormalizedLevenshtein(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	score := 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// JaroWinkler returns the Jaro-Winkler similarity between a and b in [0,1].
// Returns 1.0 for identical strings and 0.0 if either string is empty.
func JaroWinkler(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0.0
		}
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ra, rb := []rune(a), []rune(b)
	window := max(len(ra), len(rb))/2 - 1
	if window < 1 {
		// Too short for a matching window: only exact equality counts,
		// and that was handled above.
		return 0.0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i, c := range ra {
		lo := max(0, i-window)
		hi := min(len(rb), i+window+1)
		for j := lo; j < hi; j++ {
			if !matchedB[j] && rb[j] == c {
				matchedA[i] = true
				matchedB[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Count transpositions among matched characters.
	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	jaro := (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions))/m) / 3.0

	// Winkler prefix boost: up to 4 shared leading characters.
	prefix := 0
	for i := 0; i < min(4, min(len(ra), len(rb))); i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}

	score := jaro + float64(prefix)*0.1*(1.0-jaro)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// SequenceRatio returns a difflib-style ratio: 2*matches/(len(a)+len(b)),
// where matches is the total length of the longest common subsequence of
// the two rune sequences. Two empty strings score 1.0.
func SequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	// LCS length via a rolling row.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return 2.0 * float64(prev[len(rb)]) / float64(total)
}

// FoldCase lowercases and trims a string for case-insensitive comparison.
func FoldCase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
