package estimator

import (
	"strings"
	"unicode"
)

// dictionaryGuesses estimates guesses for a dictionary match: the word's
// rank in its dictionary, multiplied by the number of ways its case
// could have been varied, the number of ways its l33t substitution could
// have been chosen, and ×2 again if it was found by reversing the
// password first (§4.2, §9).
func dictionaryGuesses(rank int, token string, l33t bool, sub map[byte]byte, reversed bool) float64 {
	guesses := float64(rank)
	guesses *= uppercaseVariations(token)
	if l33t {
		guesses *= l33tVariations(token, sub)
	}
	if reversed {
		guesses *= 2
	}
	return guesses
}

// uppercaseVariations counts the distinct ways a word's letters could
// have been capitalized to produce token, given that the attacker
// already knows the word itself. All-lowercase, all-uppercase, and the
// common "Capitalized"/"camelCase-final" shapes are cheap (1 or 2
// guesses); anything more irregular costs one guess per way of choosing
// which subset of letters is uppercase.
func uppercaseVariations(token string) float64 {
	if token == strings.ToLower(token) {
		return 1
	}
	if isStartUpperRestLower(token) || isEndUpperRestLower(token) || token == strings.ToUpper(token) {
		return 2
	}

	var upper, lower int
	for _, r := range token {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	limit := upper
	if lower < limit {
		limit = lower
	}
	variations := 0.0
	for i := 1; i <= limit; i++ {
		variations += nCk(upper+lower, i)
	}
	if variations < 1 {
		return 1
	}
	return variations
}

func isStartUpperRestLower(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isEndUpperRestLower(token string) bool {
	runes := []rune(token)
	n := len(runes)
	if n < 2 || !unicode.IsUpper(runes[n-1]) {
		return false
	}
	for _, r := range runes[:n-1] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// l33tVariations counts the ways the l33t substitution in sub could have
// been applied across token, given that the base word and substitution
// scheme are already known to the attacker. For each substituted
// character, if every occurrence of its target letter in token was
// actually substituted (or none were), the attacker guesses an on/off
// switch (×2); otherwise they must guess which of the mixed occurrences
// were substituted (a binomial sum).
func l33tVariations(token string, sub map[byte]byte) float64 {
	if len(sub) == 0 {
		return 1
	}
	lower := strings.ToLower(token)
	variations := 1.0
	for subbed, letter := range sub {
		s := strings.Count(lower, string(rune(subbed)))
		u := strings.Count(lower, string(rune(letter)))
		if s == 0 || u == 0 {
			variations *= 2
			continue
		}
		limit := u
		if s < limit {
			limit = s
		}
		possibilities := 0.0
		for i := 1; i <= limit; i++ {
			possibilities += nCk(u+s, i)
		}
		if possibilities < 1 {
			possibilities = 1
		}
		variations *= possibilities
	}
	return variations
}
