package adjacency

// QWERTY is the standard US QWERTY physical layout. Row offsets follow the
// real hardware stagger: the letter row shifts a quarter key right of the
// number row, the home row a further half key, and the bottom row a
// quarter key left of the home row.
var QWERTY = build("qwerty", []row{
	straightRow(0, 0, "`1234567890-=", "~!@#$%^&*()_+"),
	straightRow(1, 1, "qwertyuiop[]\\", "QWERTYUIOP{}|"),
	straightRow(2, 3, "asdfghjkl;'", "ASDFGHJKL:\""),
	straightRow(3, 2, "zxcvbnm,./", "ZXCVBNM<>?"),
})

// Dvorak is the standard Dvorak Simplified Keyboard layout, laid out on
// the same physical row stagger as QWERTY (the letters differ; the hand
// geometry does not).
var Dvorak = build("dvorak", []row{
	straightRow(0, 0, "`1234567890[]", "~!@#$%^&*(){}"),
	straightRow(1, 1, "',.pyfgcrl/=\\", "\"<>PYFGCRL?+|"),
	straightRow(2, 3, "aoeuidhtns-", "AOEUIDHTNS_"),
	straightRow(3, 2, ";qjkxbmwvz", ":QJKXBMWVZ"),
})
