package cracktime

import "testing"

func TestEstimate_DividesByEachAttackerRate(t *testing.T) {
	e := Estimate(1e6)
	if e.OfflineFastHashSeconds != 1e6/OfflineFastHash {
		t.Errorf("OfflineFastHashSeconds = %v, want %v", e.OfflineFastHashSeconds, 1e6/OfflineFastHash)
	}
	if e.OfflineSlowHashSeconds != 1e6/OfflineSlowHash {
		t.Errorf("OfflineSlowHashSeconds = %v, want %v", e.OfflineSlowHashSeconds, 1e6/OfflineSlowHash)
	}
	if e.OnlineUnthrottledSeconds != 1e6/OnlineUnthrottled {
		t.Errorf("OnlineUnthrottledSeconds = %v, want %v", e.OnlineUnthrottledSeconds, 1e6/OnlineUnthrottled)
	}
	if e.OnlineThrottledSeconds != 1e6/OnlineThrottled {
		t.Errorf("OnlineThrottledSeconds = %v, want %v", e.OnlineThrottledSeconds, 1e6/OnlineThrottled)
	}
}

func TestEstimate_FastestModelIsOfflineFastHash(t *testing.T) {
	e := Estimate(1e8)
	if e.OfflineFastHashSeconds >= e.OfflineSlowHashSeconds {
		t.Error("offline fast hash should take less time than offline slow hash")
	}
	if e.OfflineSlowHashSeconds >= e.OnlineUnthrottledSeconds {
		t.Error("offline slow hash should take less time than online unthrottled")
	}
	if e.OnlineUnthrottledSeconds >= e.OnlineThrottledSeconds {
		t.Error("online unthrottled should take less time than online throttled")
	}
}

func TestHumanizeSeconds_Buckets(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.4, "less than a second"},
		{1, "1 second"},
		{45, "45 seconds"},
		{90, "1 minute"},
		{2 * hour, "2 hours"},
		{3 * day, "3 days"},
		{2 * month, "2 months"},
		{5 * year, "5 years"},
		{200 * year, "centuries"},
	}
	for _, c := range cases {
		if got := humanizeSeconds(c.seconds); got != c.want {
			t.Errorf("humanizeSeconds(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestHumanize_PopulatesAllFourFields(t *testing.T) {
	d := Humanize(Estimate(1e10))
	if d.OnlineThrottled == "" || d.OnlineUnthrottled == "" || d.OfflineSlowHash == "" || d.OfflineFastHash == "" {
		t.Errorf("Humanize left a field empty: %+v", d)
	}
}

func TestPluralize_SingularVsPlural(t *testing.T) {
	if got := pluralize(1*minute, minute, "minute"); got != "1 minute" {
		t.Errorf("pluralize(1 minute) = %q, want \"1 minute\"", got)
	}
	if got := pluralize(5*minute, minute, "minute"); got != "5 minutes" {
		t.Errorf("pluralize(5 minutes) = %q, want \"5 minutes\"", got)
	}
}

func TestPluralize_FloorsToAtLeastOne(t *testing.T) {
	if got := pluralize(0.5*minute, minute, "minute"); got != "1 minute" {
		t.Errorf("pluralize(0.5 minute) = %q, want floored to \"1 minute\"", got)
	}
}
