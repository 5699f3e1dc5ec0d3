package matcher

import (
	"fmt"
	"sort"

	"github.com/strengthlab/zxcvbn-go/internal/adjacency"
	"github.com/strengthlab/zxcvbn-go/internal/dictionary"
)

// Options controls which matchers All runs.
type Options struct {
	Dictionaries map[string]*dictionary.Dictionary
	Graphs       map[string]*adjacency.Graph
	Estimate     GuessEstimator
	DisableL33t  bool
}

// All runs every matcher against password, concatenates their results,
// and returns them sorted by (I, J) — the order the optimal-tiling
// search (package search) expects (§4.2: "Matchers run independently;
// results are concatenated and then deduplicated/sorted by (i, j)").
func All(password []rune, opts Options) []Match {
	var out []Match
	out = append(out, MatchDictionary(password, opts.Dictionaries)...)
	out = append(out, MatchReverseDictionary(password, opts.Dictionaries)...)
	if !opts.DisableL33t {
		out = append(out, MatchL33t(password, opts.Dictionaries)...)
	}
	out = append(out, MatchSpatial(password, opts.Graphs)...)
	out = append(out, MatchRepeat(password, opts.Estimate)...)
	out = append(out, MatchSequence(password)...)
	out = append(out, MatchRegex(password)...)
	out = append(out, MatchDate(password)...)

	out = dedupe(out)
	out = pruneContainedDates(out)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].I != out[j].I {
			return out[i].I < out[j].I
		}
		return out[i].J < out[j].J
	})
	return out
}

// pruneContainedDates drops a date match that is strictly contained
// within another date match covering more characters (§4.2) — e.g. a
// bare-digit reading of "1991" inside a wider separated reading of
// "11/20/1991" shouldn't also survive as its own candidate.
func pruneContainedDates(matches []Match) []Match {
	dominated := make([]bool, len(matches))
	for i, inner := range matches {
		if inner.Pattern != PatternDate {
			continue
		}
		for j, outer := range matches {
			if i == j || outer.Pattern != PatternDate {
				continue
			}
			if strictlySpans(outer, inner) {
				dominated[i] = true
				break
			}
		}
	}

	out := matches[:0:0]
	for i, m := range matches {
		if !dominated[i] {
			out = append(out, m)
		}
	}
	return out
}

// strictlySpans reports whether outer's span strictly contains inner's —
// same bounds on both ends doesn't count as containment.
func strictlySpans(outer, inner Match) bool {
	return outer.I <= inner.I && outer.J >= inner.J && (outer.I != inner.I || outer.J != inner.J)
}

// dedupe drops exact duplicates — same span, pattern, and the
// distinguishing field for that pattern — that can arise when more than
// one matcher (or more than one l33t substitution map) independently
// finds the identical match.
func dedupe(matches []Match) []Match {
	seen := make(map[string]bool, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		key := dedupeKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

func dedupeKey(m Match) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s|%s|%s", m.I, m.J, m.Pattern,
		m.DictionaryName, m.MatchedWord, m.Graph, m.SubDisplay)
}
