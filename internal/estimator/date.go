package estimator

// dateGuesses estimates guesses for a date match: the year's distance
// from the reference year (in days), times 4 if a separator was present (one
// guess per common separator choice: '/', '-', '.', or none) (§4.2, §9).
func dateGuesses(year int, hasSeparator bool) float64 {
	space := year - referenceYear
	if space < 0 {
		space = -space
	}
	if space < minYearSpace {
		space = minYearSpace
	}
	guesses := float64(space) * 365
	if hasSeparator {
		guesses *= 4
	}
	return guesses
}
