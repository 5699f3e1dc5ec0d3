// Package adjacency builds the physical-keyboard neighbor graphs used by
// the spatial matcher to recognize walks like "qwerty" or "1qaz2wsx".
//
// Graphs are generated once at package init time from a compact row
// description (each key's unshifted and shifted character, plus its
// physical column) rather than hand-transcribed as a giant literal table.
// This keeps the four layouts (QWERTY, Dvorak, keypad, Mac keypad)
// consistent and easy to audit, while still producing the same shape of
// data a hand-written adjacency table would: an ordered neighbor list per
// key, a shift lookup, an average degree, and a key count.
package adjacency

// Graph is a named keyboard layout expressed as a neighbor map.
//
// Neighbors holds, for every recognized base key, up to six neighbor keys
// in the fixed order: left, upper-left, upper-right, right, lower-right,
// lower-left. A zero byte marks a missing neighbor (edge of the layout).
//
// ShiftOf maps a shifted symbol (e.g. '!') back to the base key that
// produces it when Shift is held (e.g. '1'). Shifted letters are not
// listed here — any uppercase ASCII letter shifts its lowercase self,
// uniformly across every graph, and callers should check unicode.IsUpper
// before consulting ShiftOf.
type Graph struct {
	Name          string
	Neighbors     map[byte][6]byte
	ShiftOf       map[byte]byte
	AverageDegree float64
	StartingKeys  int
}

// Base resolves a password byte to its graph key and reports whether
// producing that byte requires the shift modifier on this layout.
// Uppercase ASCII letters shift their lowercase form on every layout;
// anything else is looked up in the graph's own ShiftOf table.
func (g *Graph) Base(c byte) (key byte, shifted, ok bool) {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A'), true, true
	}
	if base, isShift := g.ShiftOf[c]; isShift {
		return base, true, true
	}
	if _, known := g.Neighbors[c]; known {
		return c, false, true
	}
	return 0, false, false
}

// key is one physical position: its unshifted rune, its shifted rune (0
// if the key has none, e.g. plain letters), and its column on the row.
// Column is in quarter-key units so that staggered rows (the standard
// QWERTY stagger of a quarter to three-quarters of a key per row) line
// up correctly; two adjacent keys in the same row are 4 units apart.
type key struct {
	lower, shift byte
	col          int // quarter-key units
}

type row struct {
	y    int
	keys []key
}

// build lays rows out on a col/row grid and derives Neighbors and
// ShiftOf by adjacency: same-row immediate left/right, and the two
// closest keys (within one half-key column) on the row above/below.
func build(name string, rows []row) *Graph {
	g := &Graph{Name: name, Neighbors: map[byte][6]byte{}, ShiftOf: map[byte]byte{}}

	type placed struct {
		k        key
		rowIndex int
	}
	var all []placed
	for ri, r := range rows {
		for _, k := range r.keys {
			all = append(all, placed{k, ri})
			if k.shift != 0 {
				g.ShiftOf[k.shift] = k.lower
			}
		}
	}

	find := func(rowIndex, col int) byte {
		for _, p := range all {
			if p.rowIndex == rowIndex && p.k.col == col {
				return p.k.lower
			}
		}
		return 0
	}

	degreeSum := 0
	for _, p := range all {
		ri, col := p.rowIndex, p.k.col
		var n [6]byte
		n[0] = find(ri, col-4)   // left
		n[1] = find(ri-1, col-2) // upper-left
		n[2] = find(ri-1, col+2) // upper-right
		n[3] = find(ri, col+4)   // right
		n[4] = find(ri+1, col+2) // lower-right
		n[5] = find(ri+1, col-2) // lower-left
		g.Neighbors[p.k.lower] = n
		for _, x := range n {
			if x != 0 {
				degreeSum++
			}
		}
	}

	g.StartingKeys = len(g.Neighbors)
	if g.StartingKeys > 0 {
		g.AverageDegree = float64(degreeSum) / float64(g.StartingKeys)
	}
	return g
}

// straightRow lays out a row of keys starting at startCol (quarter-key
// units), spaced one full key (4 units) apart. shifts may be shorter than
// lowers or empty; missing entries mean "no shifted variant".
func straightRow(y int, startCol int, lowers, shifts string) row {
	var ks []key
	for i := 0; i < len(lowers); i++ {
		var sh byte
		if i < len(shifts) {
			sh = shifts[i]
		}
		ks = append(ks, key{lower: lowers[i], shift: sh, col: startCol + i*4})
	}
	return row{y: y, keys: ks}
}
