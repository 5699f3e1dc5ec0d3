package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/strengthlab/zxcvbn-go/internal/dictionary"
)

// MatchL33t finds dictionary words hidden behind leetspeak substitutions
// (p@ssw0rd, adm1n). It enumerates every non-empty subset of the
// substitute characters actually present in the password — and, for
// ambiguous substitutes like '1' (which can stand for 'i' or 'l'), every
// candidate-letter assignment within that subset — de-leets the password
// under each substitution map, and re-runs the plain dictionary matcher
// against the result.
//
// A hit only counts as an L33t match if the substitution was actually
// exercised within the matched range; otherwise it is a plain word the
// dictionary matcher already finds on its own, so MatchL33t does not
// report it.
func MatchL33t(password []rune, dicts map[string]*dictionary.Dictionary) []Match {
	lower := []rune(strings.ToLower(string(password)))
	subs := dictionary.Subs(string(lower))
	if len(subs) == 0 {
		return nil
	}

	var out []Match
	seen := make(map[[2]int]bool) // keep only the first hit per (i,j) span across all maps

	for _, sub := range substitutionMaps(subs) {
		deleeted := deleet(lower, sub)
		for _, m := range MatchDictionary(deleeted, dicts) {
			if !subUsedInRange(lower, sub, m.I, m.J) {
				continue
			}
			key := [2]int{m.I, m.J}
			if seen[key] {
				continue
			}
			seen[key] = true

			restricted := restrictSub(sub, lower[m.I:m.J+1])
			out = append(out, Match{
				I: m.I, J: m.J,
				Token:          string(password[m.I : m.J+1]),
				Pattern:        PatternDictionary,
				DictionaryName: m.DictionaryName,
				MatchedWord:    m.MatchedWord,
				Rank:           m.Rank,
				L33t:           true,
				Sub:            restricted,
				SubDisplay:     subDisplay(restricted),
			})
		}
	}
	return out
}

// substitutionMaps returns every non-empty subset of subs, with every
// candidate-letter assignment for ambiguous substitutes, as a
// substitute-char -> letter map.
func substitutionMaps(subs []byte) []map[byte]byte {
	n := len(subs)
	var result []map[byte]byte
	for mask := 1; mask < (1 << n); mask++ {
		combos := []map[byte]byte{{}}
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			c := subs[i]
			candidates := dictionary.L33tTable[c]
			var next []map[byte]byte
			for _, combo := range combos {
				for _, letter := range candidates {
					nc := make(map[byte]byte, len(combo)+1)
					for k, v := range combo {
						nc[k] = v
					}
					nc[c] = letter
					next = append(next, nc)
				}
			}
			combos = next
		}
		result = append(result, combos...)
	}
	return result
}

// deleet replaces every occurrence of a substituted character with its
// mapped letter, producing the password the dictionary matcher actually
// scans.
func deleet(lower []rune, sub map[byte]byte) []rune {
	out := make([]rune, len(lower))
	for i, r := range lower {
		if r < 128 {
			if letter, ok := sub[byte(r)]; ok {
				out[i] = rune(letter)
				continue
			}
		}
		out[i] = r
	}
	return out
}

// subUsedInRange reports whether at least one key of sub appears in
// lower[i..j].
func subUsedInRange(lower []rune, sub map[byte]byte, i, j int) bool {
	for k := i; k <= j; k++ {
		r := lower[k]
		if r >= 128 {
			continue
		}
		if _, ok := sub[byte(r)]; ok {
			return true
		}
	}
	return false
}

// restrictSub returns the subset of sub whose keys actually occur in
// token, in the order they first appear.
func restrictSub(sub map[byte]byte, token []rune) map[byte]byte {
	out := make(map[byte]byte)
	for _, r := range token {
		if r >= 128 {
			continue
		}
		if letter, ok := sub[byte(r)]; ok {
			out[byte(r)] = letter
		}
	}
	return out
}

// subDisplay renders a substitution map as a deterministic, comma-joined
// "x -> y" listing.
func subDisplay(sub map[byte]byte) string {
	keys := make([]byte, 0, len(sub))
	for k := range sub {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%c -> %c", k, sub[k]))
	}
	return strings.Join(parts, ", ")
}
