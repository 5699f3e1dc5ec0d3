package policy

import "testing"

func TestPolicy_AcceptsAtOrAboveThreshold(t *testing.T) {
	p := Policy{Name: "Test", MinScore: 3}
	if !p.Accepts(3) {
		t.Error("Accepts(3) should be true at the threshold")
	}
	if !p.Accepts(4) {
		t.Error("Accepts(4) should be true above the threshold")
	}
	if p.Accepts(2) {
		t.Error("Accepts(2) should be false below the threshold")
	}
}

func TestPolicy_ReasonEmptyWhenAccepted(t *testing.T) {
	p := Policy{Name: "Test", MinScore: 2}
	if got := p.Reason(3); got != "" {
		t.Errorf("Reason(3) = %q, want empty", got)
	}
}

func TestPolicy_ReasonDescribesFailure(t *testing.T) {
	p := Policy{Name: "OWASP", MinScore: 3}
	got := p.Reason(1)
	want := "OWASP requires a minimum strength score of 3 (got 1)"
	if got != want {
		t.Errorf("Reason(1) = %q, want %q", got, want)
	}
}

func TestNamedPolicies_HaveNameAndValidThreshold(t *testing.T) {
	for _, p := range []Policy{NIST, OWASP, Enterprise, Consumer} {
		if p.Name == "" {
			t.Error("named policy missing a Name")
		}
		if p.MinScore < 0 || p.MinScore > 4 {
			t.Errorf("%s: MinScore = %d, out of the 0-4 range", p.Name, p.MinScore)
		}
	}
}

func TestTruncate_NoLimitMeansUnlimited(t *testing.T) {
	password := []rune("a very long password indeed")
	got, truncated := Truncate(password, 0)
	if truncated {
		t.Error("Truncate with maxLength<=0 should never truncate")
	}
	if len(got) != len(password) {
		t.Errorf("got %d runes, want %d", len(got), len(password))
	}
}

func TestTruncate_ShorterThanMaxUnaffected(t *testing.T) {
	password := []rune("short")
	got, truncated := Truncate(password, 72)
	if truncated || len(got) != len(password) {
		t.Errorf("Truncate(%q, 72) = (%q, %v), want unchanged", string(password), string(got), truncated)
	}
}

func TestTruncate_LongerThanMaxCutsDown(t *testing.T) {
	password := make([]rune, 100)
	for i := range password {
		password[i] = 'a'
	}
	got, truncated := Truncate(password, 72)
	if !truncated {
		t.Error("expected truncation for a 100-rune password with maxLength 72")
	}
	if len(got) != 72 {
		t.Errorf("len(got) = %d, want 72", len(got))
	}
}

func TestEnforce_AllowTruncateSucceeds(t *testing.T) {
	password := make([]rune, 100)
	got, err := Enforce(password, 72, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 72 {
		t.Errorf("len(got) = %d, want 72", len(got))
	}
}

func TestEnforce_DisallowTruncateRejects(t *testing.T) {
	password := make([]rune, 100)
	_, err := Enforce(password, 72, false)
	if err != ErrLengthExceeded {
		t.Errorf("err = %v, want ErrLengthExceeded", err)
	}
}

func TestEnforce_WithinLimitNeverErrors(t *testing.T) {
	password := []rune("short")
	got, err := Enforce(password, 72, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "short" {
		t.Errorf("got %q, want unchanged", string(got))
	}
}
