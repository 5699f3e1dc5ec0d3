package feedback

// Message IDs. Pattern-specific IDs are grouped by the matcher that
// produces them; see matchFeedback for which ID applies to which match
// properties.
const (
	MsgWarnTop10           = "warn.dictionary.top10"
	MsgWarnTop100          = "warn.dictionary.top100"
	MsgWarnCommonPassword  = "warn.dictionary.common_password"
	MsgWarnCommonName      = "warn.dictionary.common_name"
	MsgWarnCommonWord      = "warn.dictionary.common_word"
	MsgWarnNamesByThemselves = "warn.dictionary.name_alone"

	MsgWarnKeyboardShort = "warn.spatial.short"
	MsgWarnKeyboardLong  = "warn.spatial.long"

	MsgWarnRepeatSingle = "warn.repeat.single_char"
	MsgWarnRepeatMulti  = "warn.repeat.multi_char"

	MsgWarnSequence = "warn.sequence"

	MsgWarnRecentYear = "warn.regex.recent_year"

	MsgWarnDate = "warn.date"

	MsgSuggestAddWords       = "suggest.add_words"
	MsgSuggestLonger         = "suggest.longer"
	MsgSuggestNoNeedSymbols  = "suggest.no_need_symbols"
	MsgSuggestCapsDontHelp   = "suggest.capitalization_weak"
	MsgSuggestAllCapsWeak    = "suggest.all_caps_weak"
	MsgSuggestReversedWeak   = "suggest.reversed_weak"
	MsgSuggestL33tWeak       = "suggest.l33t_weak"
	MsgSuggestAvoidRepeats   = "suggest.avoid_repeats"
	MsgSuggestAvoidSequences = "suggest.avoid_sequences"
	MsgSuggestAvoidYears     = "suggest.avoid_years"
	MsgSuggestAvoidDates     = "suggest.avoid_dates"
	MsgSuggestMoreTurns      = "suggest.keyboard_more_turns"

	MsgPositiveMultiWord = "positive.multi_word"

	MsgWarnBreached = "warn.breach"
)

// catalog is the built-in English message set behind DefaultTranslator.
var catalog = map[string]string{
	MsgWarnTop10:             "This is one of the most common passwords in use.",
	MsgWarnTop100:            "This is similar to a commonly used password.",
	MsgWarnCommonPassword:    "This is a very common password.",
	MsgWarnCommonName:        "Common names and surnames are easy to guess.",
	MsgWarnCommonWord:        "This is a commonly used word.",
	MsgWarnNamesByThemselves: "Names by themselves are easy to guess.",

	MsgWarnKeyboardShort: "Short keyboard patterns are easy to guess.",
	MsgWarnKeyboardLong:  "Straight rows of keys are easy to guess.",

	MsgWarnRepeatSingle: "Repeated characters like \"aaa\" are easy to guess.",
	MsgWarnRepeatMulti:  "Repeated patterns like \"abcabcabc\" are only slightly harder to guess than \"abc\".",

	MsgWarnSequence: "Sequences like \"abc\" or \"6543\" are easy to guess.",

	MsgWarnRecentYear: "Recent years are easy to guess.",

	MsgWarnDate: "Dates are often easy to guess.",

	MsgSuggestAddWords:       "Add another word or two. Uncommon words are better.",
	MsgSuggestLonger:         "Use a few more characters.",
	MsgSuggestNoNeedSymbols:  "You don't need symbols, digits, or uppercase letters to make a strong password.",
	MsgSuggestCapsDontHelp:   "Capitalization doesn't help very much.",
	MsgSuggestAllCapsWeak:    "All-uppercase is almost as easy to guess as all-lowercase.",
	MsgSuggestReversedWeak:   "Reversing a word doesn't make it much harder to guess.",
	MsgSuggestL33tWeak:       "Predictable letter substitutions like '@' for 'a' don't help very much.",
	MsgSuggestAvoidRepeats:   "Avoid repeated words and characters.",
	MsgSuggestAvoidSequences: "Avoid sequences.",
	MsgSuggestAvoidYears:     "Avoid recent years and years associated with you.",
	MsgSuggestAvoidDates:     "Avoid dates and years associated with you.",
	MsgSuggestMoreTurns:      "Use a longer keyboard pattern with more turns.",

	MsgPositiveMultiWord: "Nice — stringing together several unrelated words like this is one of the strongest, most memorable password strategies there is.",

	MsgWarnBreached: "This password has appeared in a known data breach.",
}
