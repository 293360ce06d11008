package rules

// Common-misspelling rules. These fire ahead of the dictionary pass and carry
// a higher prior than dictionary-derived suggestions because each one encodes
// a known, specific confusion rather than a generic edit-distance guess.
var spellingDefs = []definition{
	// ie/ei confusions.
	misspelling("recieve", "recieve", "receive", "ie-ei"),
	misspelling("beleive", "beleive", "believe", "ie-ei"),
	misspelling("acheive", "acheive", "achieve", "ie-ei"),
	misspelling("wierd", "wierd", "weird", "ie-ei"),
	misspelling("freind", "freind", "friend", "ie-ei"),
	misspelling("thier", "thier", "their", "ie-ei"),

	// Doubled or dropped letters.
	misspelling("seperate", "seperate", "separate", "vowel-confusion"),
	misspelling("definately", "definately", "definitely", "vowel-confusion"),
	misspelling("occured", "occured", "occurred", "double-letter"),
	misspelling("untill", "untill", "until", "double-letter"),
	misspelling("begining", "begining", "beginning", "double-letter"),
	misspelling("comming", "comming", "coming", "double-letter"),
	misspelling("runing", "runing", "running", "double-letter"),
	misspelling("tommorrow", "tommorrow", "tomorrow", "double-letter"),
	misspelling("tommorow", "tommorow", "tomorrow", "double-letter"),
	misspelling("truely", "truely", "truly", "dropped-letter"),
	misspelling("arguement", "arguement", "argument", "dropped-letter"),
	misspelling("neccessary", "neccessary", "necessary", "double-letter"),
	misspelling("neccesary", "neccesary", "necessary", "double-letter"),
	misspelling("accomodate", "accomodate", "accommodate", "double-letter"),
	misspelling("embarass", "embarass", "embarrass", "double-letter"),

	// Suffix and vowel slips.
	misspelling("independant", "independant", "independent", "suffix"),
	misspelling("existance", "existance", "existence", "suffix"),
	misspelling("goverment", "goverment", "government", "dropped-letter"),
	misspelling("enviroment", "enviroment", "environment", "dropped-letter"),
	misspelling("calender", "calender", "calendar", "vowel-confusion"),
	misspelling("grammer", "grammer", "grammar", "vowel-confusion"),
	misspelling("sentance", "sentance", "sentence", "vowel-confusion"),
	misspelling("becuase", "becuase", "because", "transposition"),
	misspelling("becasue", "becasue", "because", "transposition"),

	// Keyboard transpositions.
	misspelling("teh", "teh", "the", "transposition"),
	misspelling("adn", "adn", "and", "transposition"),
	misspelling("taht", "taht", "that", "transposition"),
	misspelling("wich", "wich", "which", "dropped-letter"),

	// Word-boundary errors.
	{
		id:           "alot",
		pattern:      `(?i)\balot\b`,
		message:      `"Alot" is not a word; write "a lot".`,
		shortMessage: "Misspelling",
		category:     "word-boundary",
		confidence:   0.93,
		replacement:  preserveCase("a lot"),
	},
}
