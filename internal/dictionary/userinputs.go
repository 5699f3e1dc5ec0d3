package dictionary

import "strings"

// NewUserInputs builds the ad-hoc "user_inputs" dictionary (§3) from
// host-supplied context strings (names, emails, company, etc). Rank is
// insertion order — the first input is rank 1, the most guessable.
//
// Email addresses are decomposed into local-part, domain, and TLD tokens
// before insertion (e.g. "jane.doe@acme.com" contributes "jane.doe",
// "jane", "doe", "acme.com", "acme", "com"), following the same
// splitting heuristic the teacher's context-word detector applies to
// user-supplied terms: a single email is rarely typed verbatim into a
// password, but its pieces often are.
func NewUserInputs(inputs []string) *Dictionary {
	var tokens []string
	for _, in := range inputs {
		tokens = append(tokens, expandInput(in)...)
	}
	return newDictionary(NameUserInputs, tokens)
}

// expandInput returns in itself plus, for emails and separator-delimited
// terms, its component pieces — in the order they should be ranked
// (whole term first, most-specific pieces after).
func expandInput(in string) []string {
	in = strings.TrimSpace(in)
	if in == "" {
		return nil
	}
	out := []string{in}
	if strings.Contains(in, "@") {
		out = append(out, emailParts(in)...)
		return out
	}
	out = append(out, splitOn(in, ".", "-", "_", " ")...)
	return out
}

// emailParts extracts the local part, domain, and TLD pieces of an email
// address, splitting each further on '.', '-', and '_'.
func emailParts(email string) []string {
	at := strings.SplitN(email, "@", 2)
	if len(at) != 2 {
		return nil
	}
	local, domain := at[0], at[1]

	var out []string
	out = append(out, local)
	out = append(out, splitOn(local, ".", "-", "_")...)

	out = append(out, domain)
	domainParts := strings.Split(domain, ".")
	out = append(out, domainParts...)
	for _, p := range domainParts {
		out = append(out, splitOn(p, "-", "_")...)
	}
	return out
}

// splitOn splits s on every separator in seps and returns the non-empty,
// distinct pieces (excluding s itself).
func splitOn(s string, seps ...string) []string {
	parts := []string{s}
	for _, sep := range seps {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	seen := map[string]bool{s: true}
	var out []string
	for _, p := range parts {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
