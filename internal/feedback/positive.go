package feedback

import "github.com/strengthlab/zxcvbn-go/internal/matcher"

// minPassphraseWords and minPassphraseWordLength define what counts as
// a deliberate multi-word passphrase rather than a password that merely
// happens to contain a few short dictionary hits.
const (
	minPassphraseWords      = 4
	minPassphraseWordLength = 4
)

// positiveNote returns an encouraging message when the password clears
// score 3 on the strength of several independent dictionary words
// rather than symbol-stuffing — rewarding the "four random words"
// strategy instead of only ever warning about weaknesses. It never
// fires below score 3, so a long passphrase that's still guessable
// (e.g. it was also flagged by other weak patterns, keeping score low)
// gets no false encouragement.
func positiveNote(sequence []matcher.Match, score int, translate Translator) string {
	if score < 3 {
		return ""
	}
	if countQualifyingWords(sequence) < minPassphraseWords {
		return ""
	}
	return translate(MsgPositiveMultiWord)
}

// countQualifyingWords counts non-overlapping dictionary matches of at
// least minPassphraseWordLength characters, scanning left to right and
// skipping any candidate that overlaps one already counted so the same
// stretch of password isn't credited twice.
func countQualifyingWords(sequence []matcher.Match) int {
	count := 0
	lastEnd := -1
	for _, m := range sequence {
		if m.Pattern != matcher.PatternDictionary {
			continue
		}
		if len([]rune(m.Token)) < minPassphraseWordLength {
			continue
		}
		if m.I <= lastEnd {
			continue
		}
		count++
		lastEnd = m.J
	}
	return count
}
