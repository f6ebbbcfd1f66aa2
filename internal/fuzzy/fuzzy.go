// Package fuzzy provides edit-distance matching for flag name suggestions.
// Used by argv error construction to attach "did you mean" hints to
// unknown-flag errors.
package fuzzy

import "strings"

// FindBestFlag returns the candidate closest to input within maxDistance
// edits, or "" when no candidate is close enough. Very short inputs never
// produce a suggestion; a one-letter typo of a one-letter flag is noise.
func FindBestFlag(input string, candidates []string, maxDistance int) string {
	const minLength = 2
	if len(input) < minLength {
		return ""
	}

	input = strings.ToLower(input)
	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := levenshtein(input, lower); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings using a
// single rolling row.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur := min(row[j]+1, min(row[j-1]+1, prev+cost))
			prev = row[j]
			row[j] = cur
		}
	}
	return row[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
