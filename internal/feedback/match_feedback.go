package feedback

import "github.com/strengthlab/zxcvbn-go/internal/matcher"

// matchFeedback produces the warning and pattern-specific suggestions
// for the single weakest (longest) match in a password. isSoleMatch
// distinguishes "this whole password is one pattern" from "this pattern
// is embedded in a longer password" — dictionary matches only get a
// top-10/top-100 callout in the former case, since in the latter the
// pattern is already just one ingredient among several.
func matchFeedback(m matcher.Match, isSoleMatch bool, translate Translator) Feedback {
	switch m.Pattern {
	case matcher.PatternDictionary:
		return dictionaryFeedback(m, isSoleMatch, translate)
	case matcher.PatternSpatial:
		return spatialFeedback(m, translate)
	case matcher.PatternRepeat:
		return repeatFeedback(m, translate)
	case matcher.PatternSequence:
		return Feedback{
			Warning:     translate(MsgWarnSequence),
			Suggestions: []string{translate(MsgSuggestAvoidSequences)},
		}
	case matcher.PatternRegex:
		return Feedback{
			Warning:     translate(MsgWarnRecentYear),
			Suggestions: []string{translate(MsgSuggestAvoidYears)},
		}
	case matcher.PatternDate:
		return Feedback{
			Warning:     translate(MsgWarnDate),
			Suggestions: []string{translate(MsgSuggestAvoidDates)},
		}
	default:
		return Feedback{}
	}
}

func dictionaryFeedback(m matcher.Match, isSoleMatch bool, translate Translator) Feedback {
	var warning string
	switch {
	case m.DictionaryName == "passwords" && isSoleMatch && m.Rank <= 10:
		warning = translate(MsgWarnTop10)
	case m.DictionaryName == "passwords" && isSoleMatch && m.Rank <= 100:
		warning = translate(MsgWarnTop100)
	case m.DictionaryName == "passwords":
		warning = translate(MsgWarnCommonPassword)
	case isSurnameOrGivenName(m.DictionaryName) && isSoleMatch:
		warning = translate(MsgWarnNamesByThemselves)
	case isSurnameOrGivenName(m.DictionaryName):
		warning = translate(MsgWarnCommonName)
	default:
		warning = translate(MsgWarnCommonWord)
	}

	var suggestions []string
	if hasUppercase(m.Token) {
		if m.Token == upper(m.Token) {
			suggestions = append(suggestions, translate(MsgSuggestAllCapsWeak))
		} else {
			suggestions = append(suggestions, translate(MsgSuggestCapsDontHelp))
		}
	}
	if m.Reversed && len([]rune(m.Token)) >= 4 {
		suggestions = append(suggestions, translate(MsgSuggestReversedWeak))
	}
	if m.L33t {
		suggestions = append(suggestions, translate(MsgSuggestL33tWeak))
	}
	return Feedback{Warning: warning, Suggestions: suggestions}
}

func isSurnameOrGivenName(dictionaryName string) bool {
	switch dictionaryName {
	case "surnames", "male_names", "female_names":
		return true
	default:
		return false
	}
}

func spatialFeedback(m matcher.Match, translate Translator) Feedback {
	warning := translate(MsgWarnKeyboardLong)
	if len([]rune(m.Token)) < 5 {
		warning = translate(MsgWarnKeyboardShort)
	}
	suggestions := []string{translate(MsgSuggestMoreTurns)}
	return Feedback{Warning: warning, Suggestions: suggestions}
}

func repeatFeedback(m matcher.Match, translate Translator) Feedback {
	warning := translate(MsgWarnRepeatMulti)
	if len([]rune(m.BaseToken)) == 1 {
		warning = translate(MsgWarnRepeatSingle)
	}
	return Feedback{
		Warning:     warning,
		Suggestions: []string{translate(MsgSuggestAvoidRepeats)},
	}
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func upper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - ('a' - 'A')
		}
	}
	return string(out)
}
