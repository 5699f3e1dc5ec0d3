// Package cracktime turns a total guess count into estimated offline and
// online cracking times under a handful of attacker models, and renders
// those times as human-readable strings (§6 of the spec).
package cracktime

import "fmt"

// Attacker guess rates, in guesses per second, for each named model.
// The hashing-hardware numbers assume a single consumer GPU; the
// throttled-online numbers assume a rate-limited authentication
// endpoint rather than an offline hash dump.
const (
	OnlineThrottled  = 100.0 / (60 * 60) // 100 guesses/hour: a login form with lockout/backoff
	OnlineUnthrottled = 10.0             // 10 guesses/second: a login form with no rate limiting
	OfflineSlowHash  = 1e4               // bcrypt/scrypt/argon2 on a single GPU
	OfflineFastHash  = 1e10              // unsalted MD5/SHA1 on a GPU cracking rig
)

// Estimates holds crack-time estimates, in seconds, under each attacker
// model named above.
type Estimates struct {
	OnlineThrottledSeconds   float64
	OnlineUnthrottledSeconds float64
	OfflineSlowHashSeconds   float64
	OfflineFastHashSeconds   float64
}

// Estimate converts a total guess count into crack-time estimates under
// every attacker model.
func Estimate(guesses float64) Estimates {
	return Estimates{
		OnlineThrottledSeconds:   guesses / OnlineThrottled,
		OnlineUnthrottledSeconds: guesses / OnlineUnthrottled,
		OfflineSlowHashSeconds:   guesses / OfflineSlowHash,
		OfflineFastHashSeconds:   guesses / OfflineFastHash,
	}
}

// Display holds the humanized form of an Estimates value, one string per
// attacker model — what a result printer or the CLI actually shows.
type Display struct {
	OnlineThrottled   string
	OnlineUnthrottled string
	OfflineSlowHash   string
	OfflineFastHash   string
}

// Humanize renders every estimate in e as a human-readable duration.
func Humanize(e Estimates) Display {
	return Display{
		OnlineThrottled:   humanizeSeconds(e.OnlineThrottledSeconds),
		OnlineUnthrottled: humanizeSeconds(e.OnlineUnthrottledSeconds),
		OfflineSlowHash:   humanizeSeconds(e.OfflineSlowHashSeconds),
		OfflineFastHash:   humanizeSeconds(e.OfflineFastHashSeconds),
	}
}

// Duration boundaries for humanizeSeconds, in seconds.
const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	month  = 31 * day
	year   = 12 * month
	century = 100 * year
)

// humanizeSeconds renders a duration the way a user reads a password
// strength meter: coarse buckets ("less than a second" ... "centuries"),
// never a raw number of seconds.
func humanizeSeconds(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return pluralize(seconds, 1, "second")
	case seconds < hour:
		return pluralize(seconds, minute, "minute")
	case seconds < day:
		return pluralize(seconds, hour, "hour")
	case seconds < month:
		return pluralize(seconds, day, "day")
	case seconds < year:
		return pluralize(seconds, month, "month")
	case seconds < century:
		return pluralize(seconds, year, "year")
	default:
		return "centuries"
	}
}

func pluralize(seconds, unitSeconds float64, unit string) string {
	n := int(seconds / unitSeconds)
	if n < 1 {
		n = 1
	}
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
