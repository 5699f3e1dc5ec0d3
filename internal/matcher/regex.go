package matcher

import (
	"regexp"
	"unicode/utf8"
)

// recentYear matches any 4-digit year from 1900 through 2050 (§4.2) —
// the one regex-driven pattern class the spec names.
var recentYear = regexp.MustCompile(`19\d\d|20[0-4]\d|2050`)

// MatchRegex finds substrings matching a named regular expression. Only
// recent_year is defined; the pattern is kept as a map so further named
// regexes can be added to it without touching the matcher loop.
func MatchRegex(password []rune) []Match {
	s := string(password)
	var out []Match
	for name, re := range regexPatterns {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			i, j := byteRangeToRuneRange(s, loc[0], loc[1])
			out = append(out, Match{
				I: i, J: j,
				Token:     string(password[i : j+1]),
				Pattern:   PatternRegex,
				RegexName: name,
			})
		}
	}
	return out
}

var regexPatterns = map[string]*regexp.Regexp{
	"recent_year": recentYear,
}

// byteRangeToRuneRange converts a [start,end) byte offset pair from
// regexp (which operates on UTF-8 bytes) into an inclusive [i,j] rune
// index pair matching the rest of the matcher package.
func byteRangeToRuneRange(s string, start, end int) (i, j int) {
	i = utf8.RuneCountInString(s[:start])
	j = i + utf8.RuneCountInString(s[start:end]) - 1
	return i, j
}
