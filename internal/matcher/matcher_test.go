package matcher

import (
	"testing"

	"github.com/strengthlab/zxcvbn-go/internal/adjacency"
	"github.com/strengthlab/zxcvbn-go/internal/dictionary"
)

func testDicts() map[string]*dictionary.Dictionary {
	return dictionary.Load()
}

func findMatch(matches []Match, pattern string, i, j int) (Match, bool) {
	for _, m := range matches {
		if m.Pattern == pattern && m.I == i && m.J == j {
			return m, true
		}
	}
	return Match{}, false
}

// ---------------------------------------------------------------------------
// Dictionary
// ---------------------------------------------------------------------------

func TestMatchDictionary_FindsWord(t *testing.T) {
	password := []rune("password")
	matches := MatchDictionary(password, testDicts())
	m, ok := findMatch(matches, PatternDictionary, 0, 7)
	if !ok {
		t.Fatalf("expected a dictionary match for the whole token, got %+v", matches)
	}
	if m.DictionaryName != dictionary.NamePasswords {
		t.Errorf("DictionaryName = %q, want %q", m.DictionaryName, dictionary.NamePasswords)
	}
}

func TestMatchDictionary_CaseInsensitive(t *testing.T) {
	password := []rune("PASSWORD")
	matches := MatchDictionary(password, testDicts())
	if _, ok := findMatch(matches, PatternDictionary, 0, 7); !ok {
		t.Error("expected case-insensitive match")
	}
}

func TestMatchDictionary_SubstringWithinLongerPassword(t *testing.T) {
	password := []rune("xxpasswordyy")
	matches := MatchDictionary(password, testDicts())
	if _, ok := findMatch(matches, PatternDictionary, 2, 9); !ok {
		t.Errorf("expected embedded match at [2,9], got %+v", matches)
	}
}

func TestMatchReverseDictionary_FindsReversedWord(t *testing.T) {
	password := []rune("drowssap")
	matches := MatchReverseDictionary(password, testDicts())
	m, ok := findMatch(matches, PatternDictionary, 0, 7)
	if !ok {
		t.Fatalf("expected reversed dictionary match, got %+v", matches)
	}
	if !m.Reversed {
		t.Error("expected Reversed = true")
	}
}

// ---------------------------------------------------------------------------
// L33t
// ---------------------------------------------------------------------------

func TestMatchL33t_FindsSubstitutedWord(t *testing.T) {
	password := []rune("p@ssw0rd")
	matches := MatchL33t(password, testDicts())
	m, ok := findMatch(matches, PatternDictionary, 0, 7)
	if !ok {
		t.Fatalf("expected an l33t match, got %+v", matches)
	}
	if !m.L33t {
		t.Error("expected L33t = true")
	}
	if m.DictionaryName != dictionary.NamePasswords {
		t.Errorf("DictionaryName = %q, want %q", m.DictionaryName, dictionary.NamePasswords)
	}
}

func TestMatchL33t_NoSubstitutesNoMatches(t *testing.T) {
	password := []rune("password")
	if matches := MatchL33t(password, testDicts()); len(matches) != 0 {
		t.Errorf("expected no l33t matches without substitute chars, got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// Spatial
// ---------------------------------------------------------------------------

func TestMatchSpatial_FindsKeyboardRow(t *testing.T) {
	password := []rune("qwerty")
	matches := MatchSpatial(password, adjacency.All())
	m, ok := findMatch(matches, PatternSpatial, 0, 5)
	if !ok {
		t.Fatalf("expected a spatial match for qwerty, got %+v", matches)
	}
	if m.Graph != "qwerty" {
		t.Errorf("Graph = %q, want qwerty", m.Graph)
	}
	if m.Turns != 0 {
		t.Errorf("Turns = %d, want 0 for a straight row", m.Turns)
	}
}

func TestMatchSpatial_TooShortIgnored(t *testing.T) {
	password := []rune("q")
	matches := MatchSpatial(password, adjacency.All())
	if len(matches) != 0 {
		t.Errorf("expected no spatial matches below MinSpatialRun, got %+v", matches)
	}
}

func TestMatchSpatial_ZigZagCountsTurns(t *testing.T) {
	password := []rune("qazwsx")
	matches := MatchSpatial(password, adjacency.All())
	if len(matches) == 0 {
		t.Fatal("expected a spatial match for a zig-zag run")
	}
	found := false
	for _, m := range matches {
		if m.Graph == "qwerty" && m.Turns > 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at least one qwerty match with turns > 0, got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// Sequence
// ---------------------------------------------------------------------------

func TestMatchSequence_Ascending(t *testing.T) {
	password := []rune("abcdefgh")
	matches := MatchSequence(password)
	m, ok := findMatch(matches, PatternSequence, 0, 7)
	if !ok {
		t.Fatalf("expected a sequence match, got %+v", matches)
	}
	if !m.Ascending {
		t.Error("expected Ascending = true")
	}
}

func TestMatchSequence_Descending(t *testing.T) {
	password := []rune("987654")
	matches := MatchSequence(password)
	m, ok := findMatch(matches, PatternSequence, 0, 5)
	if !ok {
		t.Fatalf("expected a sequence match, got %+v", matches)
	}
	if m.Ascending {
		t.Error("expected Ascending = false for a descending run")
	}
}

func TestMatchSequence_TooShortIgnored(t *testing.T) {
	password := []rune("ab")
	if matches := MatchSequence(password); len(matches) != 0 {
		t.Errorf("expected no matches below minSequenceLength, got %+v", matches)
	}
}

func TestMatchSequence_LargeDeltaRejected(t *testing.T) {
	password := []rune("az9")
	if matches := MatchSequence(password); len(matches) != 0 {
		t.Errorf("expected no sequence match for a jump this large, got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// Repeat
// ---------------------------------------------------------------------------

func constEstimate(v float64) GuessEstimator {
	return func(string) float64 { return v }
}

func TestMatchRepeat_SingleChar(t *testing.T) {
	password := []rune("aaaaaaa")
	matches := MatchRepeat(password, constEstimate(1))
	m, ok := findMatch(matches, PatternRepeat, 0, 6)
	if !ok {
		t.Fatalf("expected a repeat match, got %+v", matches)
	}
	if m.BaseToken != "a" {
		t.Errorf("BaseToken = %q, want \"a\"", m.BaseToken)
	}
	if m.RepeatCount != 7 {
		t.Errorf("RepeatCount = %d, want 7", m.RepeatCount)
	}
}

func TestMatchRepeat_MultiCharBase(t *testing.T) {
	password := []rune("abcabcabc")
	matches := MatchRepeat(password, constEstimate(1))
	m, ok := findMatch(matches, PatternRepeat, 0, 8)
	if !ok {
		t.Fatalf("expected a repeat match, got %+v", matches)
	}
	if m.BaseToken != "abc" {
		t.Errorf("BaseToken = %q, want \"abc\"", m.BaseToken)
	}
	if m.RepeatCount != 3 {
		t.Errorf("RepeatCount = %d, want 3", m.RepeatCount)
	}
}

func TestMatchRepeat_NoRepeatNoMatch(t *testing.T) {
	password := []rune("abcdefg")
	if matches := MatchRepeat(password, constEstimate(1)); len(matches) != 0 {
		t.Errorf("expected no repeat matches, got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// Date
// ---------------------------------------------------------------------------

func TestMatchDate_SeparatedDate(t *testing.T) {
	password := []rune("11/20/1991")
	matches := MatchDate(password)
	m, ok := findMatch(matches, PatternDate, 0, 9)
	if !ok {
		t.Fatalf("expected a date match, got %+v", matches)
	}
	if m.Year != 1991 || m.Month != 11 || m.Day != 20 {
		t.Errorf("date = %d-%d-%d, want 1991-11-20", m.Year, m.Month, m.Day)
	}
	if m.Separator != "/" {
		t.Errorf("Separator = %q, want \"/\"", m.Separator)
	}
}

func TestMatchDate_BareDigits(t *testing.T) {
	password := []rune("19911120")
	matches := MatchDate(password)
	if len(matches) == 0 {
		t.Fatal("expected a bare-digit date match")
	}
	found := false
	for _, m := range matches {
		if m.Year == 1991 && m.Month == 11 && m.Day == 20 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 1991-11-20 match among %+v", matches)
	}
}

func TestMatchDate_MismatchedSeparatorsRejected(t *testing.T) {
	password := []rune("11/20-1991")
	matches := MatchDate(password)
	for _, m := range matches {
		if m.I == 0 && m.J == 9 {
			t.Errorf("should not match when separators differ: %+v", m)
		}
	}
}

func TestMatchDate_InvalidCalendarDateRejected(t *testing.T) {
	password := []rune("13/40/1991")
	matches := MatchDate(password)
	for _, m := range matches {
		if m.I == 0 && m.J == 9 {
			t.Errorf("should not match an invalid calendar date: %+v", m)
		}
	}
}

// ---------------------------------------------------------------------------
// Regex
// ---------------------------------------------------------------------------

func TestMatchRegex_RecentYear(t *testing.T) {
	password := []rune("class2024")
	matches := MatchRegex(password)
	m, ok := findMatch(matches, PatternRegex, 5, 8)
	if !ok {
		t.Fatalf("expected a recent-year match, got %+v", matches)
	}
	if m.RegexName != "recent_year" {
		t.Errorf("RegexName = %q, want recent_year", m.RegexName)
	}
}

func TestMatchRegex_OldYearNotMatched(t *testing.T) {
	password := []rune("class1850")
	matches := MatchRegex(password)
	if len(matches) != 0 {
		t.Errorf("expected no recent-year match for 1850, got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// All / dedupe / ordering
// ---------------------------------------------------------------------------

func TestAll_SortedByPosition(t *testing.T) {
	password := []rune("password123abcdef")
	matches := All(password, Options{
		Dictionaries: testDicts(),
		Graphs:       adjacency.All(),
		Estimate:     constEstimate(1),
	})
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.I > cur.I || (prev.I == cur.I && prev.J > cur.J) {
			t.Fatalf("matches not sorted by (I,J): %+v before %+v", prev, cur)
		}
	}
}

func TestAll_DisableL33t(t *testing.T) {
	password := []rune("p@ssw0rd")
	matches := All(password, Options{
		Dictionaries: testDicts(),
		Graphs:       adjacency.All(),
		Estimate:     constEstimate(1),
		DisableL33t:  true,
	})
	for _, m := range matches {
		if m.L33t {
			t.Errorf("expected no l33t matches with DisableL33t, got %+v", m)
		}
	}
}

func TestDedupe_RemovesExactDuplicates(t *testing.T) {
	m := Match{I: 0, J: 3, Pattern: PatternDictionary, DictionaryName: "passwords"}
	out := dedupe([]Match{m, m, m})
	if len(out) != 1 {
		t.Errorf("expected 1 match after dedupe, got %d", len(out))
	}
}
