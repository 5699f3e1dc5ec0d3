package zxcvbn

import "testing"

func TestChecker_ResultReflectsCurrentPassword(t *testing.T) {
	c := NewChecker(DefaultConfig())
	c.SetPassword("password")
	res, err := c.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0", res.Score)
	}

	c.SetPassword("correcthorsebatterystaple")
	res, err = c.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score < 3 {
		t.Errorf("Score = %d, want >= 3 after switching to a strong password", res.Score)
	}
}

func TestChecker_SetUserInputsAffectsResult(t *testing.T) {
	c := NewChecker(DefaultConfig())
	c.SetPassword("acmecorp2024")
	before, _ := c.Result()

	c.SetUserInputs("acmecorp2024")
	after, _ := c.Result()

	if after.Score > before.Score {
		t.Errorf("supplying the password as a user input should not increase the score: before=%d after=%d", before.Score, after.Score)
	}
}

func TestChecker_SetTranslatorAffectsFeedback(t *testing.T) {
	c := NewChecker(DefaultConfig())
	c.SetPassword("password")
	c.SetTranslator(func(msgID string) string { return "translated" })
	res, _ := c.Result()
	if res.Feedback.Warning != "translated" {
		t.Errorf("Warning = %q, want the custom translation", res.Feedback.Warning)
	}

	c.SetTranslator(nil)
	res, _ = c.Result()
	if res.Feedback.Warning == "translated" {
		t.Error("SetTranslator(nil) should restore the built-in catalog")
	}
}

func TestChecker_SetBreachCheckerAffectsResult(t *testing.T) {
	c := NewChecker(DefaultConfig())
	c.SetPassword("correcthorsebatterystaple")
	c.SetBreachChecker(fakeBreachChecker{breached: true, count: 1})
	res, _ := c.Result()
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0 once a breach checker flags the password", res.Score)
	}

	c.SetBreachChecker(nil)
	res, _ = c.Result()
	if res.Score < 3 {
		t.Errorf("Score = %d, want >= 3 once the breach checker is cleared", res.Score)
	}
}

func TestChecker_ConfigReturnsCopy(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChecker(cfg)
	got := c.Config()
	got.MaxLength = 1
	if c.Config().MaxLength == 1 {
		t.Error("Config() should return a copy, not a reference to internal state")
	}
}

func TestNewChecker_CopiesConfigAtConstruction(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChecker(cfg)
	cfg.MaxLength = 1
	if c.Config().MaxLength == 1 {
		t.Error("later mutation of the caller's Config should not affect the Checker")
	}
}
