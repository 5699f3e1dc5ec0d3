package matcher

import (
	"strings"

	"github.com/strengthlab/zxcvbn-go/internal/dictionary"
)

// MatchDictionary runs the plain dictionary matcher: for every substring
// password[i..j], lowercase it and look it up in every dictionary. On a
// hit, emit {pattern: dictionary, dictionary_name, matched_word, rank}.
//
// A naive O(n²) substring scan (§9) is acceptable for the password
// lengths this evaluator handles (truncated to MaxLength, §6).
func MatchDictionary(password []rune, dicts map[string]*dictionary.Dictionary) []Match {
	lower := strings.ToLower(string(password))
	lowerRunes := []rune(lower)

	var out []Match
	n := len(lowerRunes)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			token := string(lowerRunes[i : j+1])
			for _, name := range orderedDictionaryNames(dicts) {
				d := dicts[name]
				rank, ok := d.Lookup(token)
				if !ok {
					continue
				}
				out = append(out, Match{
					I: i, J: j,
					Token:          string(password[i : j+1]),
					Pattern:        PatternDictionary,
					DictionaryName: name,
					MatchedWord:    token,
					Rank:           rank,
				})
			}
		}
	}
	return out
}

// MatchReverseDictionary applies the dictionary matcher to the reversed
// password; every hit at reversed indices (i', j') is re-emitted at
// original indices (len-1-j', len-1-i') with Reversed set, and
// MatchedWord equal to the dictionary word found in the reversed
// password (the token reversed and lowercased), not the original run.
func MatchReverseDictionary(password []rune, dicts map[string]*dictionary.Dictionary) []Match {
	n := len(password)
	reversed := make([]rune, n)
	for i, r := range password {
		reversed[n-1-i] = r
	}

	hits := MatchDictionary(reversed, dicts)
	out := make([]Match, 0, len(hits))
	for _, m := range hits {
		i, j := n-1-m.J, n-1-m.I
		out = append(out, Match{
			I: i, J: j,
			Token:          string(password[i : j+1]),
			Pattern:        PatternDictionary,
			DictionaryName: m.DictionaryName,
			MatchedWord:    m.MatchedWord,
			Rank:           m.Rank,
			Reversed:       true,
		})
	}
	return out
}

// orderedDictionaryNames returns dictionary names in a fixed order so
// that, when a token appears in more than one dictionary, matches are
// produced deterministically (lowest rank dictionaries first).
func orderedDictionaryNames(dicts map[string]*dictionary.Dictionary) []string {
	preferred := []string{
		dictionary.NamePasswords,
		dictionary.NameEnglish,
		dictionary.NameSurnames,
		dictionary.NameMaleNames,
		dictionary.NameFemaleNames,
		dictionary.NameUserInputs,
	}
	var out []string
	seen := make(map[string]bool)
	for _, name := range preferred {
		if _, ok := dicts[name]; ok {
			out = append(out, name)
			seen[name] = true
		}
	}
	for name := range dicts {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}
