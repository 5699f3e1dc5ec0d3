package dictionary

// wordsList is a curated list of common English words frequently found
// in passwords, grouped by theme and ordered roughly by expected
// frequency within each group. Position in this list is the token's
// rank (see Load).
//
//go:generate go test -run "TestWordList" -count=1 -v
var wordsList = []string{
	// ── Security / credentials ─────────────────────────────────────
	"password", "passwd", "passw", "secret", "private",
	"admin", "login", "access", "secure", "master",
	"credential", "authenticate", "authorize", "permission",

	// ── Technology ─────────────────────────────────────────────────
	"computer", "internet", "system", "server", "network",
	"phone", "mobile", "laptop", "email", "account",
	"software", "hardware", "program", "database", "cloud",
	"digital", "online", "website", "browser", "download",
	"upload", "wireless", "bluetooth", "keyboard", "monitor",
	"printer", "router", "modem", "pixel", "cursor",
	"algorithm", "binary", "compiler", "debug", "encrypt",
	"firewall", "gateway", "hostname", "interface", "kernel",
	"protocol", "socket", "terminal", "virtual", "quantum",

	// ── Money & business ───────────────────────────────────────────
	"money", "dollar", "credit", "bank", "gold",
	"silver", "diamond", "crystal", "magic", "power",
	"bitcoin", "crypto", "wallet", "stock", "market",
	"profit", "business", "company", "corporate", "manager",
	"finance", "invest", "wealth", "fortune", "million",
	"billion", "salary", "bonus", "budget", "payment",

	// ── Nature & elements ──────────────────────────────────────────
	"energy", "fire", "water", "earth", "storm",
	"thunder", "shadow", "light", "dark", "night",
	"star", "moon", "heaven", "angel", "devil",
	"sunrise", "sunset", "ocean", "river", "mountain",
	"forest", "garden", "flower", "island", "beach",
	"desert", "jungle", "valley", "meadow", "canyon",
	"volcano", "glacier", "waterfall", "horizon", "aurora",
	"eclipse", "nebula", "comet", "meteor", "asteroid",
	"tornado", "hurricane", "blizzard", "avalanche",
	"rainbow", "snowflake", "lightning", "breeze", "frost",

	// ── Animals ────────────────────────────────────────────────────
	"dragon", "tiger", "eagle", "falcon", "wolf",
	"panther", "cobra", "viper", "monkey", "horse",
	"chicken", "kitten", "puppy", "bear", "lion",
	"shark", "phoenix", "unicorn", "dolphin", "whale",
	"elephant", "giraffe", "penguin", "parrot", "turtle",
	"butterfly", "spider", "scorpion", "gorilla", "leopard",
	"cheetah", "stallion", "mustang", "hawk", "raven",
	"sparrow", "robin", "owl", "flamingo", "pelican",
	"jaguar", "cougar", "coyote", "buffalo", "moose",

	// ── People & names ─────────────────────────────────────────────
	"michael", "daniel", "robert", "william", "thomas",
	"james", "joseph", "richard", "charles", "david",
	"jennifer", "jessica", "michelle", "nicole", "amanda",
	"samantha", "ashley", "princess", "queen", "king",
	"alexander", "benjamin", "christopher", "elizabeth",
	"victoria", "katherine", "stephanie", "jonathan",

	// ── Sports & games ─────────────────────────────────────────────
	"football", "baseball", "soccer", "hockey", "basketball",
	"tennis", "golf", "rugby", "cricket", "volleyball",
	"player", "winner", "champion", "legend", "warrior",
	"ninja", "pirate", "wizard", "samurai", "spartan",
	"boxing", "wrestling", "karate", "marathon", "sprint",
	"trophy", "medal", "victory", "defeat", "tournament",

	// ── Pop culture ────────────────────────────────────────────────
	"batman", "superman", "spiderman", "ironman", "avengers",
	"starwars", "pokemon", "minecraft", "fortnite", "roblox",
	"marvel", "disney", "hogwarts", "naruto", "gandalf",
	"wolverine", "deadpool", "captain", "shield", "gotham",
	"joker", "thanos", "hulk", "thor", "loki",

	// ── Seasons & time ─────────────────────────────────────────────
	"summer", "winter", "spring", "autumn", "october",
	"november", "december", "january", "february", "forever",
	"today", "tomorrow", "yesterday", "morning", "midnight",
	"evening", "afternoon", "weekend", "holiday", "vacation",
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"saturday", "sunday",

	// ── Feelings & actions ─────────────────────────────────────────
	"love", "trust", "friend", "happy", "lucky",
	"freedom", "peace", "welcome", "hello", "sunshine",
	"smile", "dream", "hope", "faith",
	"courage", "strength", "honor", "glory", "destiny",
	"passion", "desire", "wonder", "inspire", "believe",
	"imagine", "create", "discover", "explore", "adventure",
	"journey", "spirit", "grace", "beauty", "truth",
	"wisdom", "knowledge", "justice", "mercy",

	// ── Colors ─────────────────────────────────────────────────────
	"purple", "orange", "yellow", "green", "blue",
	"black", "white", "golden", "crimson",
	"scarlet", "violet", "indigo", "turquoise", "magenta",

	// ── Food & drink ───────────────────────────────────────────────
	"cookie", "butter", "pepper", "ginger", "cheese",
	"chocolate", "coffee", "apple", "banana", "cherry",
	"lemon", "mango", "pizza", "burger", "candy",
	"vanilla", "caramel", "cinnamon", "nutmeg", "saffron",
	"steak", "sushi", "pasta", "noodle", "bacon",
	"waffle", "pancake", "brownie", "cupcake", "donut",
	"espresso", "latte", "smoothie", "cocktail",

	// ── Places & brands ────────────────────────────────────────────
	"google", "facebook", "twitter", "youtube", "amazon",
	"america", "london", "paris", "tokyo",
	"berlin", "sydney", "toronto", "chicago", "boston",
	"netflix", "spotify", "instagram", "tiktok",

	// ── Music & culture ────────────────────────────────────────────
	"music", "guitar", "piano", "dance", "rock",
	"metal", "jazz", "concert", "rhythm", "melody",
	"harmony", "symphony", "orchestra", "chorus", "lyric",

	// ── Fantasy & mythology ────────────────────────────────────────
	"knight", "paladin", "sorcerer", "warlock", "shaman",
	"vampire", "werewolf", "zombie", "ghost",
	"demon", "goblin", "troll", "fairy", "elf",
	"treasure", "quest", "dungeon", "castle", "tower",
	"throne", "crown", "scepter", "artifact", "relic",
	"enchant", "mystical", "arcane", "divine", "eternal",
	"immortal", "specter", "wraith", "sentinel",

	// ── Military & vehicles ────────────────────────────────────────
	"soldier", "marine", "general", "colonel", "commander",
	"sniper", "rifle", "bullet", "weapon",
	"corvette", "ferrari", "porsche", "lamborghini", "tesla",
	"harley", "yamaha", "kawasaki",

	// ── Miscellaneous common password words ────────────────────────
	"killer", "hunter", "ranger", "charlie", "buster",
	"buddy", "prince", "hacker", "cyber", "matrix",
	"maverick", "rebel", "outlaw", "rogue",
	"stealth", "silent", "venom", "toxic",
	"chaos", "havoc", "fury", "rage", "blaze",
	"inferno", "nitro", "turbo", "rocket", "laser",
	"bolt", "flash", "spark", "flame",
}
