// Package search picks the cheapest way to tile a password end-to-end
// out of the candidate matches package matcher found, using a forward
// dynamic program (§4.3, §9).
//
// The total cost of a tiling is the product of its matches' guesses,
// scaled by a factorial length penalty (an attacker guessing whole
// sequences of patterns must also guess how many patterns and in what
// order) — but the penalty only applies once the accumulated guesses
// are large enough to make the distinction meaningful; see
// MinGuessesBeforeGrowingSequence.
package search

import (
	"github.com/strengthlab/zxcvbn-go/internal/estimator"
	"github.com/strengthlab/zxcvbn-go/internal/matcher"
)

// BruteforceCardinality is the alphabet size assumed for any stretch of
// the password no matcher recognized.
const BruteforceCardinality = 10

// MinGuessesBeforeGrowingSequence is the accumulated-guesses floor a
// tiling must cross before its length (the number of matches it's built
// from) is charged a factorial penalty. Below the floor, adding another
// trivial match wouldn't meaningfully change an attacker's real cost,
// so the raw product is used as-is.
const MinGuessesBeforeGrowingSequence = 10000

// Result is the chosen tiling of a password: the matches that cover it
// end to end (gaps filled with synthetic bruteforce matches) and the
// total estimated guesses for the whole password.
type Result struct {
	Matches []matcher.Match
	Guesses float64
}

// Optimal finds the cheapest tiling of password by the candidate
// matches. Candidates need not cover the password contiguously; gaps
// are filled with bruteforce matches as part of the search.
func Optimal(password []rune, candidates []matcher.Match) Result {
	n := len(password)
	if n == 0 {
		return Result{Guesses: 1}
	}

	table := buildTable(password, candidates)

	bestK, bestState, ok := selectBest(table[n-1])
	if !ok {
		// Nothing covers position n-1 at all (shouldn't happen: bruteforce
		// candidates always exist), fall back to one whole-password match.
		m := bruteforceMatch(password, 0, n-1)
		return Result{Matches: []matcher.Match{m}, Guesses: estimator.EstimateMatch(m)}
	}

	matches := unwind(table, n-1, bestK, bestState)
	return Result{Matches: matches, Guesses: factorialLengthPenalty(bestState.pi, bestK)}
}
