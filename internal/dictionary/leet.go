package dictionary

// L33tTable maps a substitute character to the set of letters it can
// stand in for. It is reproduced byte-for-byte from the canonical zxcvbn
// l33t table (inverted from letter->substitutes to substitute->letters,
// since the L33t matcher needs to go from a character seen in the
// password back to the letters it might represent).
//
// Order within each value matters for determinism: candidates are tried
// in this order when a match is ambiguous (e.g. '1' standing for either
// 'i' or 'l').
var L33tTable = map[byte][]byte{
	'4': {'a'},
	'@': {'a'},
	'8': {'b'},
	'(': {'c'},
	'{': {'c'},
	'[': {'c'},
	'<': {'c'},
	'3': {'e'},
	'6': {'g'},
	'9': {'g'},
	'1': {'i', 'l'},
	'!': {'i'},
	'|': {'i', 'l'},
	'7': {'l', 't'},
	'0': {'o'},
	'$': {'s'},
	'5': {'s'},
	'+': {'t'},
	'%': {'x'},
	'2': {'z'},
}

// Subs returns the ordered, distinct substitute characters actually
// present in s — the starting point for the L33t matcher's subset
// enumeration (§4.2 of the spec).
func Subs(s string) []byte {
	seen := make(map[byte]bool)
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if _, ok := L33tTable[c]; ok && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
