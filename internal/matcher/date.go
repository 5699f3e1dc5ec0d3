package matcher

import (
	"regexp"
	"strconv"
)

// dateSep matches three numeric groups joined by a repeated separator —
// "11/20/1991", "1991-11-20", "20.11.91". RE2 has no backreferences, so
// the two separators are captured independently and compared in code
// rather than with a \2-style back-reference.
var dateSep = regexp.MustCompile(`(\d{1,4})([./\-])(\d{1,2})([./\-])(\d{1,4})`)

// dateDigits matches a bare run of 4 to 8 digits that might be a
// separator-less date ("19911120", "112091", "11209"). The {4,8}
// quantifier is greedy, so a longer run is always preferred over a
// shorter prefix of itself.
var dateDigits = regexp.MustCompile(`\d{4,8}`)

// MatchDate finds day/month/year dates, with or without a separator,
// trying every plausible field order and rejecting combinations that
// aren't a real calendar date (§4.2).
func MatchDate(password []rune) []Match {
	s := string(password)
	var out []Match
	out = append(out, matchSeparatedDates(password, s)...)
	out = append(out, matchBareDates(password, s)...)
	return out
}

func matchSeparatedDates(password []rune, s string) []Match {
	var out []Match
	for _, loc := range dateSep.FindAllStringSubmatchIndex(s, -1) {
		sep1 := s[loc[4]:loc[5]]
		sep2 := s[loc[8]:loc[9]]
		if sep1 != sep2 {
			continue
		}
		a, _ := strconv.Atoi(s[loc[2]:loc[3]])
		b, _ := strconv.Atoi(s[loc[6]:loc[7]])
		c, _ := strconv.Atoi(s[loc[10]:loc[11]])

		d, mo, y, ok := resolveDate(a, b, c)
		if !ok {
			continue
		}
		i, j := byteRangeToRuneRange(s, loc[0], loc[1])
		out = append(out, Match{
			I: i, J: j,
			Token:     string(password[i : j+1]),
			Pattern:   PatternDate,
			Day:       d,
			Month:     mo,
			Year:      y,
			Separator: sep1,
		})
	}
	return out
}

func matchBareDates(password []rune, s string) []Match {
	var out []Match
	for _, loc := range dateDigits.FindAllStringIndex(s, -1) {
		digits := s[loc[0]:loc[1]]
		d, mo, y, ok := splitBareDigits(digits)
		if !ok {
			continue
		}
		i, j := byteRangeToRuneRange(s, loc[0], loc[1])
		out = append(out, Match{
			I: i, J: j,
			Token:   string(password[i : j+1]),
			Pattern: PatternDate,
			Day:     d,
			Month:   mo,
			Year:    y,
		})
	}
	return out
}

// splitBareDigits tries every way of slicing an unseparated digit run
// into day/month/year groups (the year being 2 or 4 digits, at either
// end) and returns the first combination that is a valid date.
func splitBareDigits(digits string) (day, month, year int, ok bool) {
	n := len(digits)
	yearLens := []int{4, 2}
	for _, yl := range yearLens {
		if yl >= n {
			continue
		}
		// year first
		if d, mo, y, ok := trySplit(digits[yl:], digits[:yl]); ok {
			return d, mo, y, true
		}
		// year last
		if d, mo, y, ok := trySplit(digits[:n-yl], digits[n-yl:]); ok {
			return d, mo, y, true
		}
	}
	return 0, 0, 0, false
}

// trySplit takes the non-year digits (2-4 chars, to be split into day
// and month in either order) and the year digits, and returns the first
// valid (day, month, year) combination.
func trySplit(dm, yearDigits string) (day, month, year int, ok bool) {
	if len(dm) < 2 || len(dm) > 4 {
		return 0, 0, 0, false
	}
	y, err := strconv.Atoi(yearDigits)
	if err != nil {
		return 0, 0, 0, false
	}
	mid := len(dm) / 2
	splits := [][2]string{{dm[:mid], dm[mid:]}}
	if len(dm)%2 != 0 {
		splits = append(splits, [2]string{dm[:mid+1], dm[mid+1:]})
	}
	for _, sp := range splits {
		a, errA := strconv.Atoi(sp[0])
		b, errB := strconv.Atoi(sp[1])
		if errA != nil || errB != nil {
			continue
		}
		if d, mo, yy, ok := resolveDate(a, b, y); ok {
			return d, mo, yy, true
		}
	}
	return 0, 0, 0, false
}

// dateReferenceYear is the fixed anchor resolveDate measures "closest
// year" against when more than one (day, month, year) assignment of the
// same three numbers forms a valid calendar date (§4.2).
const dateReferenceYear = 2000

// resolveDate tries every assignment of (a, b, c) to (day, month, year),
// and among the assignments that form a valid calendar date, returns the
// one whose year has the smallest distance to dateReferenceYear.
func resolveDate(a, b, c int) (day, month, year int, ok bool) {
	candidates := [][3]int{
		{a, b, c}, // day, month, year
		{b, a, c}, // month, day, year
		{b, c, a}, // year, day, month — year-first inputs
		{c, b, a}, // year, month, day
	}
	bestDist := -1
	for _, cand := range candidates {
		d, mo, y := cand[0], cand[1], cand[2]
		if !validDate(d, mo, y) {
			continue
		}
		ny := normalizeYear(y)
		dist := ny - dateReferenceYear
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			day, month, year, ok = d, mo, ny, true
		}
	}
	return day, month, year, ok
}

func validDate(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	y := normalizeYear(year)
	if y < 1000 || y > 2050 {
		return false
	}
	return day <= daysInMonth(month, y)
}

func normalizeYear(y int) int {
	if y >= 100 {
		return y
	}
	if y > 50 {
		return 1900 + y
	}
	return 2000 + y
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
