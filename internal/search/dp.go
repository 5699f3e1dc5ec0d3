package search

import (
	"github.com/strengthlab/zxcvbn-go/internal/estimator"
	"github.com/strengthlab/zxcvbn-go/internal/matcher"
)

// cell holds the best (minimal-product) tiling of length k ending at a
// given position: the running product of guesses, and enough of a
// backpointer to reconstruct the full match sequence.
type cell struct {
	pi     float64
	match  matcher.Match
	prevJ  int // end index of the previous match, -1 if this is the first
	prevK  int // sequence length before this match
}

// row is the set of best cells at one end position, keyed by sequence
// length k (how many matches the tiling uses).
type row map[int]cell

// buildTable runs the forward DP: table[j][k] is the cheapest way to
// tile password[0..j] using exactly k matches, considering every
// candidate match plus a synthetic bruteforce match for every possible
// gap ending at j.
func buildTable(password []rune, candidates []matcher.Match) []row {
	n := len(password)
	table := make([]row, n)

	byEnd := make(map[int][]matcher.Match, n)
	for _, m := range candidates {
		byEnd[m.J] = append(byEnd[m.J], m)
	}

	for j := 0; j < n; j++ {
		table[j] = row{}

		var atJ []matcher.Match
		atJ = append(atJ, byEnd[j]...)
		for i := 0; i <= j; i++ {
			atJ = append(atJ, bruteforceMatch(password, i, j))
		}

		for _, m := range atJ {
			guesses := estimator.EstimateMatch(m)
			m.Guesses = guesses
			if m.I == 0 {
				considerUpdate(table[j], 1, guesses, -1, 0, m)
				continue
			}
			prevRow := table[m.I-1]
			for k, prev := range prevRow {
				considerUpdate(table[j], k+1, prev.pi*guesses, m.I-1, k, m)
			}
		}
	}
	return table
}

// considerUpdate records (k, pi, m) at dst[k] if it beats whatever is
// already there (or nothing is there yet).
func considerUpdate(dst row, k int, pi float64, prevJ, prevK int, m matcher.Match) {
	existing, ok := dst[k]
	if ok && existing.pi <= pi {
		return
	}
	dst[k] = cell{pi: pi, match: m, prevJ: prevJ, prevK: prevK}
}

// selectBest picks the cheapest sequence length in a row, scoring each
// by factorialLengthPenalty.
func selectBest(r row) (k int, c cell, ok bool) {
	bestG := -1.0
	for candK, candC := range r {
		g := factorialLengthPenalty(candC.pi, candK)
		if bestG < 0 || g < bestG {
			bestG = g
			k, c, ok = candK, candC, true
		}
	}
	return k, c, ok
}

// factorialLengthPenalty scales a tiling's raw guess product by k!,
// the number of ways an attacker must also guess how many patterns make
// up the password and in what order — but only once the product has
// already crossed MinGuessesBeforeGrowingSequence; below that floor a
// longer tiling made of trivial matches isn't meaningfully different
// from a shorter one, so the raw product is used unscaled.
func factorialLengthPenalty(pi float64, k int) float64 {
	if pi < MinGuessesBeforeGrowingSequence {
		return pi
	}
	return pi * factorial(k)
}

func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// unwind walks the backpointers from (j, k) to reconstruct the match
// sequence in left-to-right order.
func unwind(table []row, j, k int, c cell) []matcher.Match {
	var out []matcher.Match
	for {
		out = append([]matcher.Match{c.match}, out...)
		if c.prevJ < 0 {
			break
		}
		c = table[c.prevJ][c.prevK]
	}
	return out
}
