package adjacency

// All returns every named adjacency graph, built once at package init.
// This is the adjacency-graph analogue of [dictionary.Load] — an
// in-memory, immutable reference-data table with no file I/O, safe to
// share across concurrent evaluations.
func All() map[string]*Graph {
	return map[string]*Graph{
		QWERTY.Name:    QWERTY,
		Dvorak.Name:    Dvorak,
		Keypad.Name:    Keypad,
		MacKeypad.Name: MacKeypad,
	}
}
