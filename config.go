package zxcvbn

import (
	"fmt"

	"github.com/strengthlab/zxcvbn-go/internal/policy"
)

// BreachChecker looks a password up against a breach database (e.g. the
// hibp package's k-anonymity client). Check is consulted only after the
// pure guess/score pipeline has already produced a Result — a breach is
// an additional, independently-sourced warning, never an input to the
// guess math itself.
type BreachChecker interface {
	Check(password string) (breached bool, count int, err error)
}

// Config holds configuration options for password strength estimation.
//
// Use [DefaultConfig] to obtain a Config with recommended defaults, then
// override individual fields:
//
//	cfg := zxcvbn.DefaultConfig()
//	cfg.UserInputs = []string{"jane.doe@example.com", "Acme Corp"}
//	result, err := zxcvbn.EstimateWithConfig("mypassword", cfg)
type Config struct {
	// MaxLength is the maximum number of runes analyzed; longer input is
	// truncated (or rejected, if RejectOverlong is set) before
	// evaluation (default: 72).
	MaxLength int

	// RejectOverlong turns a too-long password into a LengthExceeded
	// error instead of silently truncating it (default: false).
	RejectOverlong bool

	// UserInputs are host-supplied context strings (username, email,
	// company name, ...) folded into a dictionary of their own, since a
	// password built from this information is far easier for an
	// attacker who already knows it to guess (default: none).
	UserInputs []string

	// Translator maps a feedback message ID to display text; nil uses
	// the built-in English catalog (default: nil).
	Translator func(msgID string) string

	// DisableL33t skips leetspeak-substitution dictionary matching
	// (default: false).
	DisableL33t bool

	// MaxFeedbackSuggestions caps the number of suggestions returned.
	// Zero means no limit (default: 0).
	MaxFeedbackSuggestions int

	// BreachChecker, if set, is consulted after scoring to flag
	// passwords that have appeared in a known breach (default: nil).
	BreachChecker BreachChecker
}

// DefaultConfig returns the recommended configuration for general-purpose
// password strength estimation.
func DefaultConfig() Config {
	return Config{
		MaxLength: policy.DefaultMaxLength,
	}
}

// Validate checks the configuration for invalid values and returns an
// error describing the first problem found.
//
// Rules:
//   - MaxLength must be >= 0
//   - MaxFeedbackSuggestions must be >= 0
func (c Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("zxcvbn: MaxLength must be >= 0, got %d", c.MaxLength)
	}
	if c.MaxFeedbackSuggestions < 0 {
		return fmt.Errorf("zxcvbn: MaxFeedbackSuggestions must be >= 0, got %d", c.MaxFeedbackSuggestions)
	}
	return nil
}
