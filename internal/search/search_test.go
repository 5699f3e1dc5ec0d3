package search

import (
	"testing"

	"github.com/strengthlab/zxcvbn-go/internal/matcher"
)

func TestOptimal_EmptyPassword(t *testing.T) {
	result := Optimal(nil, nil)
	if result.Guesses != 1 {
		t.Errorf("Guesses = %v, want 1 for empty password", result.Guesses)
	}
	if len(result.Matches) != 0 {
		t.Errorf("Matches = %+v, want none", result.Matches)
	}
}

func TestOptimal_NoCandidatesFallsBackToBruteforce(t *testing.T) {
	password := []rune("xyz123")
	result := Optimal(password, nil)
	if len(result.Matches) != 1 {
		t.Fatalf("expected a single whole-password bruteforce match, got %+v", result.Matches)
	}
	m := result.Matches[0]
	if m.Pattern != matcher.PatternBruteforce || m.I != 0 || m.J != len(password)-1 {
		t.Errorf("match = %+v, want a bruteforce match covering the whole password", m)
	}
}

func TestOptimal_PrefersCheapCandidateOverBruteforce(t *testing.T) {
	password := []rune("password")
	cheap := matcher.Match{I: 0, J: 7, Token: "password", Pattern: matcher.PatternDictionary, DictionaryName: "passwords", Rank: 1}
	result := Optimal(password, []matcher.Match{cheap})
	if len(result.Matches) != 1 {
		t.Fatalf("expected the single cheap match to win, got %+v", result.Matches)
	}
	if result.Matches[0].Pattern != matcher.PatternDictionary {
		t.Errorf("chosen match = %+v, want the dictionary match", result.Matches[0])
	}
}

func TestOptimal_CoversEntirePasswordContiguously(t *testing.T) {
	password := []rune("abcpassword")
	candidate := matcher.Match{I: 3, J: 10, Token: "password", Pattern: matcher.PatternDictionary, DictionaryName: "passwords", Rank: 1}
	result := Optimal(password, []matcher.Match{candidate})

	var covered int
	for _, m := range result.Matches {
		covered += m.J - m.I + 1
	}
	if covered != len(password) {
		t.Errorf("matches cover %d runes, want %d: %+v", covered, len(password), result.Matches)
	}
	// Matches must be contiguous and in order.
	next := 0
	for _, m := range result.Matches {
		if m.I != next {
			t.Fatalf("gap/overlap in tiling: expected next match to start at %d, got %+v", next, m)
		}
		next = m.J + 1
	}
}

func TestOptimal_GuessesMatchChosenTilingProduct(t *testing.T) {
	password := []rune("ab")
	result := Optimal(password, nil)
	if result.Guesses <= 0 {
		t.Errorf("Guesses = %v, want > 0", result.Guesses)
	}
	prod := 1.0
	for _, m := range result.Matches {
		prod *= m.Guesses
	}
	if want := factorialLengthPenalty(prod, len(result.Matches)); result.Guesses != want {
		t.Errorf("Guesses = %v, want %v from the chosen tiling's product", result.Guesses, want)
	}
}

func TestFactorialLengthPenalty_BelowFloorUnscaled(t *testing.T) {
	got := factorialLengthPenalty(100, 5)
	if got != 100 {
		t.Errorf("factorialLengthPenalty(100, 5) = %v, want 100 (below MinGuessesBeforeGrowingSequence)", got)
	}
}

func TestFactorialLengthPenalty_AboveFloorScalesByFactorial(t *testing.T) {
	pi := MinGuessesBeforeGrowingSequence + 1.0
	got := factorialLengthPenalty(pi, 3)
	want := pi * 6
	if got != want {
		t.Errorf("factorialLengthPenalty(%v, 3) = %v, want %v", pi, got, want)
	}
}

func TestFactorial(t *testing.T) {
	cases := map[int]float64{0: 1, 1: 1, 2: 2, 3: 6, 4: 24, 5: 120}
	for k, want := range cases {
		if got := factorial(k); got != want {
			t.Errorf("factorial(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestBruteforceMatch_CapturesSpan(t *testing.T) {
	password := []rune("hello world")
	m := bruteforceMatch(password, 2, 5)
	if m.Token != "llo " {
		t.Errorf("Token = %q, want %q", m.Token, "llo ")
	}
	if m.Pattern != matcher.PatternBruteforce {
		t.Errorf("Pattern = %q, want bruteforce", m.Pattern)
	}
}
