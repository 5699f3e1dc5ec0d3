package estimator

import (
	"math"

	"github.com/strengthlab/zxcvbn-go/internal/matcher"
)

// Score thresholds, in total guesses. A DELTA of 5 absorbs floating
// point drift at the boundary: a guess count that lands exactly on (or
// up to 5 above) 10^3/10^6/10^8/10^10 still scores in the weaker bucket (§5).
const scoreDelta = 5

var scoreThresholds = [...]float64{1e3, 1e6, 1e8, 1e10}

// EstimateMatch returns the estimated guesses for a single match,
// dispatching on its pattern, then applies the minimum-guesses floor
// that every match class shares (§9).
func EstimateMatch(m matcher.Match) float64 {
	var guesses float64
	switch m.Pattern {
	case matcher.PatternDictionary:
		guesses = dictionaryGuesses(m.Rank, m.Token, m.L33t, m.Sub, m.Reversed)
	case matcher.PatternSpatial:
		graph := adjacencyGraphs[m.Graph]
		guesses = spatialGuesses(len([]rune(m.Token)), m.Turns, m.ShiftedCount, graph.startingKeys, graph.averageDegree)
	case matcher.PatternRepeat:
		guesses = m.BaseGuesses * float64(m.RepeatCount)
	case matcher.PatternSequence:
		guesses = sequenceGuesses(m.Token, m.SequenceSpace, m.Ascending)
	case matcher.PatternRegex:
		guesses = regexGuesses(m.RegexName, m.Token)
	case matcher.PatternDate:
		guesses = dateGuesses(m.Year, m.Separator != "")
	default:
		guesses = bruteforceGuesses(m.Token)
	}
	return applyFloor(guesses, len([]rune(m.Token)))
}

// Bruteforce is the guess estimate for a password (or a gap between
// matches) with no recognized structure at all.
func Bruteforce(token string) float64 {
	return bruteforceGuesses(token)
}

// Score maps a total guess count to the 0-4 scale the spec defines:
// 0 (too guessable) through 4 (very unguessable) (§5).
func Score(guesses float64) int {
	for i, threshold := range scoreThresholds {
		if guesses < threshold+scoreDelta {
			return i
		}
	}
	return len(scoreThresholds)
}

// GuessesLog10 is the base-10 logarithm of the total guess count, the
// form the result and feedback layers prefer to carry around since raw
// guess counts for long passwords overflow float64 precision far less
// gracefully in log space.
func GuessesLog10(guesses float64) float64 {
	if guesses <= 0 {
		return 0
	}
	return math.Log10(guesses)
}

// spatialGraphStats is the subset of adjacency.Graph the spatial guess
// formula needs; kept here (rather than importing package adjacency
// directly into every call site) so callers can register graphs once at
// startup via RegisterGraph.
type spatialGraphStats struct {
	startingKeys  int
	averageDegree float64
}

var adjacencyGraphs = map[string]spatialGraphStats{}

// RegisterGraph records a keyboard adjacency graph's starting-key count
// and average degree, so MatchSpatial's results (which only carry the
// graph's name) can be scored. The top-level Estimate pipeline calls
// this once per graph during setup.
func RegisterGraph(name string, startingKeys int, averageDegree float64) {
	adjacencyGraphs[name] = spatialGraphStats{startingKeys: startingKeys, averageDegree: averageDegree}
}
