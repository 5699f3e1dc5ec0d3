package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	zxcvbn "github.com/strengthlab/zxcvbn-go"
)

// Exit codes returned by [run].
const (
	exitOK         = 0 // success
	exitError      = 1 // runtime or check error
	exitUsageError = 2 // invalid arguments
	exitWeak       = 3 // password scored below --min-score
)

// options holds the parsed CLI flags and arguments.
type options struct {
	password   string
	json       bool
	verbose    bool
	noColor    bool
	help       bool
	showVer    bool
	maxLength  int // 0 = use default
	minScore   int // -1 = no gating
	userInputs []string
}

// parseArgs parses command-line arguments into options.
//
// Flags (--flag or -f) can appear anywhere; the first non-flag
// argument is treated as the password. Use "--" to stop flag
// parsing (useful for passwords starting with a dash).
func parseArgs(args []string) (options, error) {
	opts := options{minScore: -1}
	flagsDone := false

	for _, arg := range args {
		// "--" separator: everything after is a positional argument.
		if arg == "--" && !flagsDone {
			flagsDone = true
			continue
		}

		// Parse flags (unless we've seen "--").
		if !flagsDone && strings.HasPrefix(arg, "-") {
			switch {
			case arg == "--json":
				opts.json = true
			case arg == "--verbose" || arg == "-v":
				opts.verbose = true
			case arg == "--no-color":
				opts.noColor = true
			case arg == "--help" || arg == "-h":
				opts.help = true
			case arg == "--version":
				opts.showVer = true
			case strings.HasPrefix(arg, "--max-length="):
				val := strings.TrimPrefix(arg, "--max-length=")
				n, err := strconv.Atoi(val)
				if err != nil || n < 1 {
					return opts, fmt.Errorf("invalid --max-length value: %q (must be a positive integer)", val)
				}
				opts.maxLength = n
			case strings.HasPrefix(arg, "--min-score="):
				val := strings.TrimPrefix(arg, "--min-score=")
				n, err := strconv.Atoi(val)
				if err != nil || n < 0 || n > 4 {
					return opts, fmt.Errorf("invalid --min-score value: %q (must be 0-4)", val)
				}
				opts.minScore = n
			case strings.HasPrefix(arg, "--user-input="):
				val := strings.TrimPrefix(arg, "--user-input=")
				opts.userInputs = append(opts.userInputs, val)
			default:
				return opts, fmt.Errorf("unknown flag: %s\nRun 'zxcvbn --help' for usage", arg)
			}
			continue
		}

		// Positional argument (password).
		if opts.password != "" {
			return opts, fmt.Errorf("unexpected argument: %s (password already provided)", arg)
		}
		opts.password = arg
	}

	return opts, nil
}

// run executes the CLI logic and returns the exit code.
//
// stdout and stderr are the output writers; envNoColor reflects
// whether the NO_COLOR environment variable is set.
func run(stdout, stderr io.Writer, args []string, envNoColor bool) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsageError
	}

	if opts.help {
		printHelp(stdout)
		return exitOK
	}

	if opts.showVer {
		fmt.Fprintf(stdout, "zxcvbn %s\n", version)
		return exitOK
	}

	if opts.password == "" {
		fmt.Fprintln(stderr, "Error: password argument required")
		fmt.Fprintln(stderr, "Run 'zxcvbn --help' for usage")
		return exitError
	}

	// Build config from defaults + CLI overrides.
	cfg := zxcvbn.DefaultConfig()
	if opts.maxLength > 0 {
		cfg.MaxLength = opts.maxLength
	}
	cfg.UserInputs = opts.userInputs

	result, err := zxcvbn.EstimateWithConfig(opts.password, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if opts.json {
		if code := printJSON(stdout, stderr, result); code != exitOK {
			return code
		}
	} else {
		useColor := !opts.noColor && !envNoColor
		printResult(stdout, result, opts, useColor)
	}

	if opts.minScore >= 0 && result.Score < opts.minScore {
		return exitWeak
	}
	return exitOK
}

// printResult writes the formatted human-readable result.
func printResult(w io.Writer, r zxcvbn.Result, opts options, useColor bool) {
	fmt.Fprintf(w, "Score:   %s\n", scoreMeter(r.Score, useColor))

	verdict := verdictLabel(r.Score)
	if useColor {
		verdict = colorize(verdict, scoreColor(r.Score))
	}
	fmt.Fprintf(w, "Verdict: %s\n", verdict)

	if opts.verbose {
		fmt.Fprintf(w, "Guesses: %.3g (log10 = %.2f)\n", r.Guesses, r.GuessesLog10)
	}

	fmt.Fprintln(w, "\nEstimated crack time:")
	fmt.Fprintf(w, "  online, throttled:   %s\n", r.CrackTimesDisplay.OnlineThrottled)
	fmt.Fprintf(w, "  online, unthrottled: %s\n", r.CrackTimesDisplay.OnlineUnthrottled)
	fmt.Fprintf(w, "  offline, slow hash:  %s\n", r.CrackTimesDisplay.OfflineSlowHash)
	fmt.Fprintf(w, "  offline, fast hash:  %s\n", r.CrackTimesDisplay.OfflineFastHash)

	if r.Feedback.Warning != "" {
		marker := "  "
		if useColor {
			marker = "  " + colorize("!", ansiRed) + " "
		} else {
			marker = "  ! "
		}
		fmt.Fprintf(w, "\nWarning:\n%s%s\n", marker, r.Feedback.Warning)
	}

	if len(r.Feedback.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range r.Feedback.Suggestions {
			marker := "  - "
			if useColor {
				marker = "  " + colorize("-", ansiGreen) + " "
			}
			fmt.Fprintf(w, "%s%s\n", marker, s)
		}
	}

	if opts.verbose && len(r.Sequence) > 0 {
		fmt.Fprintln(w, "\nMatched patterns:")
		for _, m := range r.Sequence {
			fmt.Fprintf(w, "  [%d-%d] %-10s %q\n", m.I, m.J, m.Pattern, m.Token)
		}
	}
}

// printJSON encodes the result as indented JSON.
func printJSON(stdout, stderr io.Writer, r zxcvbn.Result) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return exitError
	}
	return exitOK
}

// printHelp writes the CLI usage information.
func printHelp(w io.Writer) {
	fmt.Fprintf(w, `zxcvbn %s - Password strength estimator

Usage:
  zxcvbn <password> [flags]

Flags:
  --json              Output result as JSON
  --verbose, -v        Show guesses and matched patterns
  --no-color           Disable colored output
  --max-length=N       Truncate analysis to N runes (default: 72)
  --min-score=N        Exit with a non-zero status if the score is below N (0-4)
  --user-input=VALUE   Fold VALUE into the guessability dictionary (repeatable)
  --version            Show version
  --help, -h           Show this help message

Environment:
  NO_COLOR            Set to any value to disable colored output

Examples:
  zxcvbn "MyP@ssw0rd123!"
  zxcvbn "qwerty" --json
  zxcvbn "correcthorsebatterystaple" --verbose
  zxcvbn "jane2024" --user-input=jane --user-input=jane@example.com
  zxcvbn -- "-dashpassword"
`, version)
}

// verdictLabel maps a 0-4 score to a human-readable strength label.
func verdictLabel(score int) string {
	switch score {
	case 0:
		return "Very Weak"
	case 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Strong"
	default:
		return "Very Strong"
	}
}
