package zxcvbn

import "github.com/strengthlab/zxcvbn-go/internal/policy"

// NISTConfig returns a configuration paired with the NIST SP 800-63B
// acceptance threshold.
//
// NIST SP 800-63B moved away from composition rules (required character
// classes) toward length and breach checking as the real signal of
// strength — which is exactly what a guess-based score already measures,
// so the preset here is the same Config as [DefaultConfig] gated at a
// lower minimum score: NIST's guidance tolerates more user-chosen
// passwords than a high-security enterprise policy would.
//
// Key characteristics:
//   - No composition rules — the underlying estimator already penalizes
//     guessable structure (dictionary words, dates, keyboard walks)
//     directly, rather than via character-class counting
//   - Accepts score >= 2 ("somewhat guessable" or better)
//
// Suitable for:
//   - General-purpose applications
//   - Consumer-facing services
//
// Reference: NIST SP 800-63B Section 5.1.1
// https://pages.nist.gov/800-63-3/sp800-63b.html
//
// Example:
//
//	cfg := zxcvbn.NISTConfig()
//	result, _ := zxcvbn.EstimateWithConfig("MySecret2024", cfg)
//	if !zxcvbn.NISTPolicy.Accepts(result.Score) { ... }
func NISTConfig() Config {
	return DefaultConfig()
}

// NISTPolicy is the acceptance policy paired with [NISTConfig].
var NISTPolicy = policy.NIST

// OWASPConfig returns a configuration paired with the OWASP Authentication
// Cheat Sheet's recommended acceptance threshold.
//
// Key characteristics:
//   - Same estimation as [DefaultConfig]
//   - Accepts score >= 3 ("safely unguessable" or better)
//
// Suitable for:
//   - Web applications
//   - SaaS platforms and API services
//
// Reference: OWASP Authentication Cheat Sheet
// https://cheatsheetseries.owasp.org/cheatsheets/Authentication_Cheat_Sheet.html
func OWASPConfig() Config {
	return DefaultConfig()
}

// OWASPPolicy is the acceptance policy paired with [OWASPConfig].
var OWASPPolicy = policy.OWASP

// EnterpriseConfig returns a strict configuration for high-security
// environments, built on top of [DefaultConfig] with feedback capped
// tighter (fewer, higher-signal suggestions for a security-conscious
// audience that's expected to act on the first one).
//
// Key characteristics:
//   - Accepts score >= 3, same threshold as OWASP
//   - MaxFeedbackSuggestions limited to 3
//
// Suitable for:
//   - Government and healthcare systems
//   - Financial services
//
// Recommendation: set Config.UserInputs to the account's username, email,
// and company name so passwords built from that context are penalized.
//
// Example:
//
//	cfg := zxcvbn.EnterpriseConfig()
//	cfg.UserInputs = []string{"jsmith", "jsmith@acme.com", "Acme Corp"}
//	result, _ := zxcvbn.EstimateWithConfig("MyC0mplex!P@ssw0rd2024", cfg)
func EnterpriseConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxFeedbackSuggestions = 3
	return cfg
}

// EnterprisePolicy is the acceptance policy paired with [EnterpriseConfig].
var EnterprisePolicy = policy.Enterprise

// ConsumerConfig returns a configuration tuned for consumer-facing
// applications where user experience is a priority: the same estimation
// pipeline as [DefaultConfig], gated at a lower acceptance threshold so
// fewer genuinely-chosen passwords get rejected.
//
// Key characteristics:
//   - Accepts score >= 2, same threshold as NIST
//
// Suitable for:
//   - Consumer applications, social platforms, low-risk internal tools
//
// Note: consider [OWASPConfig] or [EnterpriseConfig] for production
// applications handling sensitive data.
func ConsumerConfig() Config {
	return DefaultConfig()
}

// ConsumerPolicy is the acceptance policy paired with [ConsumerConfig].
var ConsumerPolicy = policy.Consumer
