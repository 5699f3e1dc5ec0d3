package dictionary

// surnamesList, maleNamesList, and femaleNamesList are compact seed lists
// for the "surnames", "male_names", and "female_names" named dictionaries
// (§3, §4.1). They follow the same authored-frequency ordering convention
// as passwordsList and wordsList — most common first — drawn from US
// census surname/given-name frequency data. Real deployments are expected
// to swap these for a fuller frozen dataset at build time (§1: dictionary
// file loading is an external collaborator); these seed lists keep the
// matcher's dictionary-class behavior exercisable without one.
var surnamesList = []string{
	"smith", "johnson", "williams", "brown", "jones",
	"garcia", "miller", "davis", "rodriguez", "martinez",
	"hernandez", "lopez", "gonzalez", "wilson", "anderson",
	"thomas", "taylor", "moore", "jackson", "martin",
	"lee", "perez", "thompson", "white", "harris",
	"sanchez", "clark", "ramirez", "lewis", "robinson",
	"walker", "young", "allen", "king", "wright",
	"scott", "torres", "nguyen", "hill", "flores",
	"green", "adams", "nelson", "baker", "hall",
	"rivera", "campbell", "mitchell", "carter", "roberts",
}

var maleNamesList = []string{
	"james", "robert", "john", "michael", "david",
	"william", "richard", "joseph", "thomas", "charles",
	"christopher", "daniel", "matthew", "anthony", "mark",
	"donald", "steven", "andrew", "paul", "joshua",
	"kenneth", "kevin", "brian", "george", "edward",
	"ronald", "timothy", "jason", "jeffrey", "ryan",
	"jacob", "gary", "nicholas", "eric", "jonathan",
	"stephen", "larry", "justin", "scott", "brandon",
}

var femaleNamesList = []string{
	"mary", "patricia", "jennifer", "linda", "elizabeth",
	"barbara", "susan", "jessica", "sarah", "karen",
	"nancy", "lisa", "margaret", "betty", "sandra",
	"ashley", "kimberly", "emily", "donna", "michelle",
	"carol", "amanda", "melissa", "deborah", "stephanie",
	"rebecca", "laura", "sharon", "cynthia", "kathleen",
	"amy", "angela", "shirley", "anna", "brenda",
	"pamela", "nicole", "samantha", "katherine", "emma",
}
