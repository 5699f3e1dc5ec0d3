package adjacency

// Keypad is the standard PC numeric keypad: a 3x3 digit grid, a wide "0"
// spanning the bottom-left two columns, and a decimal point to its right.
var Keypad = build("keypad", []row{
	straightRow(0, 0, "789", ""),
	straightRow(1, 0, "456", ""),
	straightRow(2, 0, "123", ""),
	{y: 3, keys: []key{{lower: '0', col: 2}, {lower: '.', col: 8}}},
})

// MacKeypad is the Apple extended-keyboard numeric keypad. Unlike the PC
// layout it carries an extra operator row above the digits ("=", "/",
// "*") and does not widen the "0" key, giving it a different average
// degree and key count from [Keypad].
var MacKeypad = build("mac_keypad", []row{
	straightRow(0, 0, "=/*", ""),
	straightRow(1, 0, "789", ""),
	straightRow(2, 0, "456", ""),
	straightRow(3, 0, "123", ""),
	{y: 4, keys: []key{{lower: '0', col: 0}, {lower: '.', col: 4}}},
})
