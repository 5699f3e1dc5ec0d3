package policy

import "errors"

// ErrLengthExceeded is returned by Enforce when the password is longer
// than the configured maximum and the caller has opted out of silent
// truncation (§7).
var ErrLengthExceeded = errors.New("zxcvbn: password exceeds configured maximum length")

// DefaultMaxLength is the truncation boundary applied when a caller
// doesn't override Config.MaxLength — long enough for any real
// passphrase, short enough to keep the O(n²) matcher and O(n²) search
// fast even for adversarial input.
const DefaultMaxLength = 72

// Truncate returns password cut down to maxLength runes, and whether
// truncation actually happened. maxLength <= 0 means "no limit".
func Truncate(password []rune, maxLength int) ([]rune, bool) {
	if maxLength <= 0 || len(password) <= maxLength {
		return password, false
	}
	return password[:maxLength], true
}

// Enforce applies the max-length policy: silently truncate, unless
// allowTruncate is false, in which case a too-long password is rejected
// with ErrLengthExceeded.
func Enforce(password []rune, maxLength int, allowTruncate bool) ([]rune, error) {
	truncated, didTruncate := Truncate(password, maxLength)
	if didTruncate && !allowTruncate {
		return nil, ErrLengthExceeded
	}
	return truncated, nil
}
