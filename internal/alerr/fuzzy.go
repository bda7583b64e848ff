package alerr

import "fmt"

// maxSuggestDistance bounds how many edits a typo may be from a suggestion.
const maxSuggestDistance = 3

// editDistance returns the Levenshtein distance between a and b, byte-wise.
// Flag names and input keywords are ASCII.
func editDistance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	// row[j] holds the distance between the current prefix of a and b[:j].
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			above := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j-1]+1, above+1, diag+cost)
			diag = above
		}
	}
	return row[len(b)]
}

// FindClosestMatch returns the option nearest to input, if any is within
// three edits. An option whose distance equals its own length shares nothing
// with the input and is never returned. Ties go to the earlier option.
func FindClosestMatch(input string, options []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, opt := range options {
		d := editDistance(input, opt)
		if d >= len(opt) || d >= bestDist {
			continue
		}
		best, bestDist = opt, d
	}
	return best, best != ""
}

// SuggestSimilar returns "did you mean 'X'?" for the closest option, or "".
func SuggestSimilar(input string, options []string) string {
	if match, ok := FindClosestMatch(input, options); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}

// SuggestFlag is SuggestSimilar for long flag names given without dashes.
// The suggestion is rendered with its "--" prefix.
func SuggestFlag(name string, flags []string) string {
	if match, ok := FindClosestMatch(name, flags); ok {
		return fmt.Sprintf("did you mean '--%s'?", match)
	}
	return ""
}
