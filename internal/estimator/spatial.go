package estimator

// spatialGuesses estimates guesses for a keyboard-adjacency walk: the
// number of possible walks of the same length with at most as many
// turns, starting from any of the graph's starting keys and branching
// at each turn into any of its average-degree neighbors, further
// multiplied by the number of ways the shifted keys in the run could
// have been chosen (§4.2, §9).
func spatialGuesses(length, turns, shiftedCount int, startingKeys int, averageDegree float64) float64 {
	if length < 2 {
		return 0
	}
	guesses := 0.0
	for i := 2; i <= length; i++ {
		possibleTurns := turns
		if i-1 < possibleTurns {
			possibleTurns = i - 1
		}
		for j := 1; j <= possibleTurns; j++ {
			guesses += nCk(i-1, j-1) * float64(startingKeys) * pow(averageDegree, j)
		}
	}

	if shiftedCount > 0 {
		unshifted := length - shiftedCount
		if shiftedCount == 0 || unshifted == 0 {
			guesses *= 2
		} else {
			limit := shiftedCount
			if unshifted < limit {
				limit = unshifted
			}
			variations := 0.0
			for i := 1; i <= limit; i++ {
				variations += nCk(shiftedCount+unshifted, i)
			}
			guesses *= variations
		}
	}
	return guesses
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
