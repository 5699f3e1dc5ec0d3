package matcher

import (
	"strings"

	"github.com/strengthlab/zxcvbn-go/internal/adjacency"
)

// MinSpatialRun is the shortest walk the spatial matcher reports; a
// single key-press is not a "pattern".
const MinSpatialRun = 2

// MatchSpatial scans the password against every adjacency graph and, for
// each starting position, emits the longest run of consecutive
// keyboard-adjacent characters (§4.2).
func MatchSpatial(password []rune, graphs map[string]*adjacency.Graph) []Match {
	lower := []rune(strings.ToLower(string(password)))

	var names []string
	for name := range graphs {
		names = append(names, name)
	}
	sortStrings(names)

	var out []Match
	n := len(lower)
	for _, name := range names {
		g := graphs[name]
		for i := 0; i < n; i++ {
			j, turns, shifted, ok := spatialRunAt(password, lower, g, i)
			if !ok || j-i+1 < MinSpatialRun {
				continue
			}
			out = append(out, Match{
				I: i, J: j,
				Token:        string(password[i : j+1]),
				Pattern:      PatternSpatial,
				Graph:        name,
				Turns:        turns,
				ShiftedCount: shifted,
			})
		}
	}
	return out
}

// spatialRunAt finds the longest keyboard-adjacent run starting at i,
// returning its end index, turn count, and shifted-character count.
// ok is false if position i is not itself a recognized key on g.
func spatialRunAt(original, lower []rune, g *adjacency.Graph, i int) (end, turns, shiftedCount int, ok bool) {
	c0, ok0 := runeByte(lower[i])
	if !ok0 {
		return i, 0, 0, false
	}
	_, shifted0, known0 := g.Base(c0)
	if !known0 {
		return i, 0, 0, false
	}
	if shifted0 {
		shiftedCount++
	}

	prevKey, _, _ := g.Base(c0)
	curDirection := -1
	j := i

	for k := i + 1; k < len(lower); k++ {
		ck, ok1 := runeByte(lower[k])
		if !ok1 {
			break
		}
		nextKey, nextShifted, known := g.Base(ck)
		if !known {
			break
		}
		neighbors := g.Neighbors[prevKey]
		direction := -1
		for idx, nb := range neighbors {
			if nb == nextKey {
				direction = idx
				break
			}
		}
		if direction == -1 {
			break
		}
		if direction != curDirection {
			turns++
			curDirection = direction
		}
		if nextShifted {
			shiftedCount++
		}
		prevKey = nextKey
		j = k
	}
	return j, turns, shiftedCount, true
}

// runeByte reports whether r fits in a byte (every adjacency key is
// ASCII), returning it as a byte for graph lookups.
func runeByte(r rune) (byte, bool) {
	if r < 0 || r > 255 {
		return 0, false
	}
	return byte(r), true
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
