package search

import "github.com/strengthlab/zxcvbn-go/internal/matcher"

// bruteforceMatch builds a synthetic match for the literal span
// password[i..j], for use when no recognized pattern covers it.
func bruteforceMatch(password []rune, i, j int) matcher.Match {
	return matcher.Match{
		I:       i,
		J:       j,
		Token:   string(password[i : j+1]),
		Pattern: matcher.PatternBruteforce,
	}
}
