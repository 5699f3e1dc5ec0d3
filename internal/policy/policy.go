// Package policy gates a zxcvbn score against a named minimum-strength
// threshold (§10 of the spec). The score itself is fixed — a policy can
// only accept or reject it, never reweight how it was computed — which
// is what distinguishes a "preset" here from the teacher's rule-based
// Options, where stricter presets changed the checks themselves.
package policy

import "fmt"

// Policy is a minimum-acceptable-score gate.
type Policy struct {
	Name     string
	MinScore int
}

// Named policies backing the root package's preset Configs.
var (
	NIST       = Policy{Name: "NIST", MinScore: 2}
	OWASP      = Policy{Name: "OWASP", MinScore: 3}
	Enterprise = Policy{Name: "Enterprise", MinScore: 3}
	Consumer   = Policy{Name: "Consumer", MinScore: 2}
)

// Accepts reports whether score clears the policy's threshold.
func (p Policy) Accepts(score int) bool {
	return score >= p.MinScore
}

// Reason describes why score failed the policy, or "" if it passed.
func (p Policy) Reason(score int) string {
	if p.Accepts(score) {
		return ""
	}
	return fmt.Sprintf("%s requires a minimum strength score of %d (got %d)", p.Name, p.MinScore, score)
}
