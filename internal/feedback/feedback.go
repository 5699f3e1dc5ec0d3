// Package feedback turns the matches chosen by the optimal-tiling
// search into a short warning and a handful of actionable suggestions
// (§4.5 of the spec).
//
// Every user-facing string is a lookup into a message catalog keyed by
// an opaque message ID; a host can supply its own Translator to
// localize or reword every message without touching the selection
// logic that decides which messages apply.
package feedback

import (
	"github.com/strengthlab/zxcvbn-go/internal/matcher"
)

// Feedback is the advice shown alongside a password's score: an
// optional one-line warning about the biggest weakness found, plus a
// short list of suggestions for improving the password.
type Feedback struct {
	Warning     string
	Suggestions []string
}

// Translator maps a message ID to display text. The zero Translator (or
// one passed as nil to Generate) falls back to DefaultTranslator, which
// looks the ID up in the built-in English catalog.
type Translator func(msgID string) string

// DefaultTranslator returns the built-in English message for msgID, or
// the ID itself if it isn't in the catalog (so a typo'd ID fails
// visibly instead of silently rendering as an empty string).
func DefaultTranslator(msgID string) string {
	if text, ok := catalog[msgID]; ok {
		return text
	}
	return msgID
}

// Generate produces feedback for a password scored at score, built from
// sequence — the match tiling package search chose. translate resolves
// message IDs to display text; pass nil to use DefaultTranslator.
func Generate(sequence []matcher.Match, score int, translate Translator) Feedback {
	if translate == nil {
		translate = DefaultTranslator
	}

	fb := generate(sequence, score, translate)
	if note := positiveNote(sequence, score, translate); note != "" {
		fb.Suggestions = append(fb.Suggestions, note)
	}
	return fb
}

func generate(sequence []matcher.Match, score int, translate Translator) Feedback {
	if score > 2 {
		return Feedback{}
	}
	real := withoutBruteforce(sequence)
	if len(real) == 0 {
		return defaultFeedback(score, translate)
	}

	longest := real[0]
	for _, m := range real[1:] {
		if len([]rune(m.Token)) > len([]rune(longest.Token)) {
			longest = m
		}
	}

	fb := matchFeedback(longest, len(real) == 1, translate)
	extra := translate(MsgSuggestAddWords)
	fb.Suggestions = append([]string{extra}, fb.Suggestions...)
	return fb
}

func withoutBruteforce(sequence []matcher.Match) []matcher.Match {
	var out []matcher.Match
	for _, m := range sequence {
		if m.Pattern != matcher.PatternBruteforce {
			out = append(out, m)
		}
	}
	return out
}

// defaultFeedback is shown when the password has no recognizable
// pattern at all — its score came purely from length and bruteforce
// cardinality.
func defaultFeedback(score int, translate Translator) Feedback {
	if score > 2 {
		return Feedback{}
	}
	return Feedback{
		Suggestions: []string{
			translate(MsgSuggestAddWords),
			translate(MsgSuggestLonger),
		},
	}
}
