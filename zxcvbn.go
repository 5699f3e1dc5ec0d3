// Package zxcvbn estimates how hard a password would be for an attacker to
// guess, using pattern matching (dictionaries, keyboard walks, repeats,
// sequences, dates, recent years) instead of a naive character-class
// entropy count.
//
// # Usage
//
//	res := zxcvbn.Estimate("correcthorsebatterystaple")
//	fmt.Println(res.Score)               // 4
//	fmt.Println(res.CrackTimesDisplay.OfflineSlowHash)
//	for _, s := range res.Feedback.Suggestions { fmt.Println(s) }
//
// # Custom Configuration
//
//	cfg := zxcvbn.DefaultConfig()
//	cfg.UserInputs = []string{"jane.doe@example.com", "Acme Corp"}
//	result, err := zxcvbn.EstimateWithConfig("mypassword", cfg)
//
// # Breach database (optional)
//
// Set [Config.BreachChecker] to a client from the [hibp] package to flag
// passwords that have appeared in a known breach (k-anonymity; only a
// 5-char hash prefix is sent). The check runs only after the pure
// guess/score pipeline has already produced a Result; a breach hit forces
// the score to 0 and replaces the feedback warning, while Guesses is left
// as computed. On API errors the check is skipped.
//
// # Security Considerations
//
// Passwords are Go strings, which are immutable and garbage-collected. The
// library cannot zero them from memory after use. For applications that
// handle passwords as []byte (e.g. reading from an HTTP request body),
// [EstimateBytes] accepts a byte slice and zeros it immediately after
// analysis, reducing the window during which plaintext resides in memory.
//
// The library never logs, prints, or persists passwords. A Result carries
// only the matched token spans and aggregate scores, never the password
// itself.
//
// A maximum input length ([Config.MaxLength], 72 runes by default) is
// enforced to bound the O(n^2) matcher and search phases against
// adversarially long input. By default the excess is silently truncated;
// set [Config.RejectOverlong] to get a [LengthExceeded] error instead.
package zxcvbn

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/strengthlab/zxcvbn-go/internal/adjacency"
	"github.com/strengthlab/zxcvbn-go/internal/cracktime"
	"github.com/strengthlab/zxcvbn-go/internal/dictionary"
	"github.com/strengthlab/zxcvbn-go/internal/estimator"
	"github.com/strengthlab/zxcvbn-go/internal/feedback"
	"github.com/strengthlab/zxcvbn-go/internal/matcher"
	"github.com/strengthlab/zxcvbn-go/internal/policy"
	"github.com/strengthlab/zxcvbn-go/internal/safemem"
	"github.com/strengthlab/zxcvbn-go/internal/search"
)

// InvalidInput is returned when password contains invalid UTF-8.
var InvalidInput = errors.New("zxcvbn: password is not valid UTF-8")

// LengthExceeded is returned when password is longer than cfg.MaxLength
// and cfg.RejectOverlong is set.
var LengthExceeded = policy.ErrLengthExceeded

// ReferenceDataUnavailable is returned when the built-in dictionaries or
// adjacency graphs failed to initialize. It should never occur in
// practice — the reference data is compiled into the binary — but is part
// of the error taxonomy so a caller that loads reference data dynamically
// in the future has a slot for the failure.
var ReferenceDataUnavailable = errors.New("zxcvbn: reference data unavailable")

var builtinGraphs = adjacency.All()

// Registering every graph's stats with the estimator at init time means
// EstimateMatch can score a spatial match (which only carries the graph's
// name) without the estimator package importing adjacency directly.
func init() {
	for name, g := range builtinGraphs {
		estimator.RegisterGraph(name, g.StartingKeys, g.AverageDegree)
	}
}

// Match describes one weakness found in the password: a dictionary word,
// a keyboard walk, a repeat, a sequence, a regex pattern, or a date. Only
// the fields relevant to Pattern are populated.
type Match struct {
	// I and J are the rune-index span [I, J] (inclusive) the match covers.
	I, J  int
	Token string

	// Pattern names the kind of weakness: "dictionary", "spatial",
	// "repeat", "sequence", "regex", "date", or "bruteforce".
	Pattern string

	DictionaryName string
	Rank           int
	Reversed       bool
	L33t           bool

	Graph        string
	Turns        int
	ShiftedCount int

	BaseToken   string
	RepeatCount int

	SequenceName string
	Ascending    bool

	RegexName string

	Year, Month, Day int
	Separator        string

	// Guesses is this match's own contribution to the total guess count.
	Guesses float64
}

// Feedback is the advice shown alongside a password's score: an optional
// one-line warning about the biggest weakness found, plus a short list of
// suggestions for improving the password.
type Feedback struct {
	Warning     string
	Suggestions []string
}

// Result is the outcome of estimating a password's strength.
type Result struct {
	// Score is the overall strength score, 0 (too guessable) through 4
	// (very unguessable).
	Score int `json:"score"`

	// Guesses is the estimated total number of guesses an attacker needs.
	Guesses float64 `json:"guesses"`

	// GuessesLog10 is log10(Guesses) — more stable to carry around than
	// Guesses for very strong passwords.
	GuessesLog10 float64 `json:"guesses_log10"`

	// Sequence is the chosen tiling of the password: the matches covering
	// it end to end, with gaps filled by synthetic bruteforce matches.
	Sequence []Match `json:"sequence"`

	// CrackTimes holds estimated cracking time, in seconds, under each
	// attacker model.
	CrackTimes cracktime.Estimates `json:"crack_times_seconds"`

	// CrackTimesDisplay is CrackTimes rendered as human-readable strings.
	CrackTimesDisplay cracktime.Display `json:"crack_times_display"`

	// Feedback is advice for improving the password.
	Feedback Feedback `json:"feedback"`

	// CalcTime is how long the estimation itself took.
	CalcTime time.Duration `json:"calc_time"`
}

// Estimate evaluates the strength of a password using the default
// configuration. userInputs are folded in as host-supplied context
// (username, email, company name, ...).
//
// This is a convenience wrapper around [EstimateWithConfig] using
// [DefaultConfig]; it never returns an error. The default configuration
// is always valid, so the only failure is a password that is not valid
// UTF-8, for which Estimate returns the zero Result.
func Estimate(password string, userInputs ...string) Result {
	cfg := DefaultConfig()
	cfg.UserInputs = userInputs
	result, err := EstimateWithConfig(password, cfg)
	if err != nil {
		// Only reachable for invalid UTF-8: DefaultConfig is valid and
		// does not set RejectOverlong.
		return Result{}
	}
	return result
}

// EstimateWithConfig evaluates the strength of a password using a custom
// configuration. It returns an error if the configuration is invalid, the
// password is not valid UTF-8, or the password exceeds cfg.MaxLength and
// cfg.RejectOverlong is set.
func EstimateWithConfig(password string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if !utf8.ValidString(password) {
		return Result{}, InvalidInput
	}
	start := time.Now()

	runes, err := policy.Enforce([]rune(password), cfg.MaxLength, !cfg.RejectOverlong)
	if err != nil {
		return Result{}, err
	}

	dicts := builtinDictionaries(cfg.UserInputs)
	res := evaluate(runes, dicts, cfg.DisableL33t)

	score := estimator.Score(res.Guesses)
	fb := feedback.Generate(res.Matches, score, feedback.Translator(cfg.Translator))
	fb = capSuggestions(fb, cfg.MaxFeedbackSuggestions)

	if cfg.BreachChecker != nil {
		var breached bool
		fb, breached = applyBreachFeedback(password, cfg.BreachChecker, fb, feedback.Translator(cfg.Translator))
		if breached {
			// A password seen in a real breach is guessable regardless of
			// what the structural estimate says — credential-stuffing lists
			// attack it directly, not via the matcher/search pipeline.
			score = 0
		}
	}

	times := cracktime.Estimate(res.Guesses)
	return Result{
		Score:             score,
		Guesses:           res.Guesses,
		GuessesLog10:      estimator.GuessesLog10(res.Guesses),
		Sequence:          toPublicMatches(res.Matches),
		CrackTimes:        times,
		CrackTimesDisplay: cracktime.Humanize(times),
		Feedback:          Feedback{Warning: fb.Warning, Suggestions: fb.Suggestions},
		CalcTime:          time.Since(start),
	}, nil
}

// EstimateBytes evaluates password strength from a mutable byte slice
// using the default configuration.
//
// After converting the input to a string for analysis, the original byte
// slice is immediately zeroed to minimize the time plaintext resides in
// process memory. The caller should not reuse the slice after this call.
func EstimateBytes(password []byte, userInputs ...string) Result {
	s := string(password)
	safemem.Zero(password)
	return Estimate(s, userInputs...)
}

// evaluate runs the full matcher -> search pipeline against password. It
// is recursive: the repeat matcher needs to know the guesses for its own
// base token (a shorter password in its own right), so evaluate builds a
// matcher.GuessEstimator closure over itself and hands it down through
// matcher.Options — this is the only place the pipeline's recursion is
// expressed; matcher and estimator never import each other.
func evaluate(password []rune, dicts map[string]*dictionary.Dictionary, disableL33t bool) search.Result {
	var estimate matcher.GuessEstimator
	estimate = func(pw string) float64 {
		return evaluate([]rune(pw), dicts, disableL33t).Guesses
	}

	candidates := matcher.All(password, matcher.Options{
		Dictionaries: dicts,
		Graphs:       builtinGraphs,
		Estimate:     estimate,
		DisableL33t:  disableL33t,
	})
	return search.Optimal(password, candidates)
}

// builtinDictionaries returns the compiled-in dictionaries plus a
// "user_inputs" dictionary built from userInputs, if any were given.
func builtinDictionaries(userInputs []string) map[string]*dictionary.Dictionary {
	base := dictionary.Load()
	if len(userInputs) == 0 {
		return base
	}
	out := make(map[string]*dictionary.Dictionary, len(base)+1)
	for name, d := range base {
		out[name] = d
	}
	out[dictionary.NameUserInputs] = dictionary.NewUserInputs(userInputs)
	return out
}

func toPublicMatches(matches []matcher.Match) []Match {
	if len(matches) == 0 {
		return nil
	}
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{
			I: m.I, J: m.J, Token: m.Token, Pattern: m.Pattern,
			DictionaryName: m.DictionaryName, Rank: m.Rank, Reversed: m.Reversed, L33t: m.L33t,
			Graph: m.Graph, Turns: m.Turns, ShiftedCount: m.ShiftedCount,
			BaseToken: m.BaseToken, RepeatCount: m.RepeatCount,
			SequenceName: m.SequenceName, Ascending: m.Ascending,
			RegexName: m.RegexName,
			Year: m.Year, Month: m.Month, Day: m.Day, Separator: m.Separator,
			Guesses: m.Guesses,
		}
	}
	return out
}

func capSuggestions(fb feedback.Feedback, max int) feedback.Feedback {
	if max <= 0 || len(fb.Suggestions) <= max {
		return fb
	}
	fb.Suggestions = fb.Suggestions[:max]
	return fb
}

// applyBreachFeedback consults checker and, if password has been seen in
// a breach, replaces fb's warning with a breach warning (the breach is a
// stronger signal than any structural weakness also found) and reports
// breached = true so the caller can downgrade the score. Errors from
// checker are swallowed — a breach database outage should never fail the
// whole estimation.
func applyBreachFeedback(password string, checker BreachChecker, fb feedback.Feedback, translate feedback.Translator) (feedback.Feedback, bool) {
	breached, count, err := checker.Check(password)
	if err != nil || !breached {
		return fb, false
	}
	if translate == nil {
		translate = feedback.DefaultTranslator
	}
	warning := translate(feedback.MsgWarnBreached)
	if count > 0 {
		warning = fmt.Sprintf("%s (seen %d times)", warning, count)
	}
	fb.Warning = warning
	return fb, true
}
