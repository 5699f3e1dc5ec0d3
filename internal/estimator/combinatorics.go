// Package estimator turns a matcher.Match into an estimated number of
// guesses an attacker would need to reach it, and turns a total guess
// count into a 0-4 score (§4, §5 of the spec).
//
// Each pattern class has its own guess formula; they are combined by
// package search, which picks the cheapest non-overlapping tiling of
// matches covering the whole password.
package estimator

// nCk returns the binomial coefficient "n choose k" — the number of
// ways to choose k items from a set of n, used throughout the guess
// formulas to count case/substitution/turn-direction variations.
func nCk(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}
