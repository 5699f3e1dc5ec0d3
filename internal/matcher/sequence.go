package matcher

// maxSequenceDelta bounds how far apart two code points may be and still
// be considered "the next step" of a sequence — keeps "az" (delta 25)
// from counting as a sequence while "abc" (delta 1) and "aceg"-style
// runs with a small constant step do.
const maxSequenceDelta = 5

// minSequenceLength is the shortest run the sequence matcher reports.
const minSequenceLength = 3

// MatchSequence finds runs of characters that step through code-point
// space by a constant, non-zero delta of small magnitude — "abcdef",
// "654321", "acegik" — ascending or descending (§4.2).
func MatchSequence(password []rune) []Match {
	n := len(password)
	var out []Match
	for i := 0; i < n-1; i++ {
		j, delta, ok := sequenceRunAt(password, i)
		if !ok || j-i+1 < minSequenceLength {
			continue
		}
		name, space := sequenceClass(password[i])
		out = append(out, Match{
			I: i, J: j,
			Token:         string(password[i : j+1]),
			Pattern:       PatternSequence,
			SequenceName:  name,
			SequenceSpace: space,
			Ascending:     delta > 0,
		})
	}
	return out
}

// sequenceRunAt extends the constant-delta run starting at i as far as
// possible, returning its end index and the delta. ok is false if i
// cannot even start a 2-character step (delta zero or too large).
func sequenceRunAt(password []rune, i int) (end, delta int, ok bool) {
	n := len(password)
	if i+1 >= n {
		return i, 0, false
	}
	delta = int(password[i+1]) - int(password[i])
	if delta == 0 || abs(delta) > maxSequenceDelta {
		return i, 0, false
	}
	j := i + 1
	for j+1 < n && int(password[j+1])-int(password[j]) == delta {
		j++
	}
	return j, delta, true
}

// sequenceClass classifies a rune into the sequence space it belongs to,
// for guess estimation: the size of the alphabet the run is drawn from.
func sequenceClass(r rune) (name string, space int) {
	switch {
	case r >= 'a' && r <= 'z':
		return "lower", 26
	case r >= 'A' && r <= 'Z':
		return "upper", 26
	case r >= '0' && r <= '9':
		return "digits", 10
	default:
		return "unicode", 26
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
