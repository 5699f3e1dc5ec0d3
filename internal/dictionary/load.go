// Package dictionary provides the frozen reference dictionaries and the
// L33t substitution table used by the dictionary matcher (§4.1, §4.2 of
// the spec).
//
// Dictionaries are compiled into the binary as literal []string tables
// rather than loaded from disk at runtime — the spec treats dictionary
// file loading as an opaque, out-of-scope concern, so this package ships
// the frozen data directly and builds the lookup structures once, at
// init time, for the life of the process.
package dictionary

import "strings"

// Names of the built-in, statically loaded dictionaries. "user_inputs" is
// deliberately absent — it is built per evaluation by [NewUserInputs],
// never loaded from static data.
const (
	NamePasswords   = "passwords"
	NameEnglish     = "english_wikipedia"
	NameSurnames    = "surnames"
	NameMaleNames   = "male_names"
	NameFemaleNames = "female_names"
	NameUserInputs  = "user_inputs"
)

// Dictionary is a named mapping from lowercase token to rank (1 = most
// common), plus a reversed-token view used by the reverse matcher so it
// does not need to re-lowercase-and-reverse the whole password on every
// lookup.
type Dictionary struct {
	Name     string
	Rank     map[string]int
	Reversed map[string]int
}

// Lookup returns the rank of token (already lowercased) and whether it
// was found.
func (d *Dictionary) Lookup(token string) (rank int, ok bool) {
	rank, ok = d.Rank[token]
	return
}

// LookupReversed returns the rank of a reversed token as it would appear
// in the original (un-reversed) dictionary.
func (d *Dictionary) LookupReversed(token string) (rank int, ok bool) {
	rank, ok = d.Reversed[token]
	return
}

func newDictionary(name string, tokens []string) *Dictionary {
	d := &Dictionary{
		Name:     name,
		Rank:     make(map[string]int, len(tokens)),
		Reversed: make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if _, exists := d.Rank[lower]; exists {
			continue // first (lowest-rank) occurrence wins
		}
		rank := i + 1
		d.Rank[lower] = rank
		d.Reversed[reverseToken(lower)] = rank
	}
	return d
}

func reverseToken(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

var builtin map[string]*Dictionary

func init() {
	builtin = map[string]*Dictionary{
		NamePasswords:   newDictionary(NamePasswords, passwordsList),
		NameEnglish:     newDictionary(NameEnglish, wordsList),
		NameSurnames:    newDictionary(NameSurnames, surnamesList),
		NameMaleNames:   newDictionary(NameMaleNames, maleNamesList),
		NameFemaleNames: newDictionary(NameFemaleNames, femaleNamesList),
	}
}

// Load returns every built-in named dictionary. The map and the
// Dictionary values it points to are never mutated after init, so
// concurrent callers may share the returned map freely — this is the
// `load_dictionaries()` contract surface from §6.
func Load() map[string]*Dictionary {
	return builtin
}
