package estimator

import "strings"

// obviousSequenceStarts are the characters that begin the handful of
// sequences everyone tries first; runs that start elsewhere are credited
// with the full size of their character space instead.
const obviousSequenceStarts = "aAzZ019"

// sequenceGuesses estimates guesses for an arithmetic run: a small base
// determined by how obvious the starting character and direction are,
// multiplied by the run's length (§4.2, §9).
func sequenceGuesses(token string, space int, ascending bool) float64 {
	runes := []rune(token)
	if len(runes) == 0 {
		return 0
	}

	base := float64(space)
	if strings.ContainsRune(obviousSequenceStarts, runes[0]) {
		base = 4
	}
	if !ascending {
		base *= 2
	}
	return base * float64(len(runes))
}
