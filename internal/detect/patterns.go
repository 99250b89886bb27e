package detect

// Tables holds the closed word and phrase lists the signal extractors scan for.
// They are plain data so tests can substitute alternate lists; nothing in this
// package mutates them after construction.
type Tables struct {
	// TransitionWords are matched against whole tokens for the formality ratio.
	TransitionWords []string
	// PersonalPhrases mark first-person or anecdotal voice.
	PersonalPhrases []string
	// GenericPhrases are stock filler constructions common in generated prose.
	GenericPhrases []string
	// HumanMarkers are informal-speech artifacts rarely produced by models.
	HumanMarkers []string
	// ConnectorWords feed the conversational-flow signal together with
	// question and exclamation marks.
	ConnectorWords []string
}

func DefaultTables() Tables {
	return Tables{
		TransitionWords: []string{
			"furthermore", "moreover", "consequently", "additionally",
			"nevertheless", "nonetheless", "therefore", "thus", "hence",
			"accordingly", "subsequently", "ultimately", "conversely",
			"likewise", "similarly", "indeed", "notably", "specifically",
		},
		PersonalPhrases: []string{
			"i think", "i believe", "i feel", "i guess", "i mean",
			"in my opinion", "my experience", "i remember", "i noticed",
			"you know", "honestly", "to be honest", "personally",
			"if you ask me", "i once", "i've found",
		},
		GenericPhrases: []string{
			"in conclusion", "it is important to note", "studies have shown",
			"research suggests", "it goes without saying",
			"at the end of the day", "when it comes to", "in today's world",
			"in this day and age", "plays a crucial role", "a wide range of",
			"it is worth noting", "first and foremost", "delve into",
		},
		HumanMarkers: []string{
			"um", "uh", "kinda", "sorta", "gonna", "wanna", "dunno",
			"yeah", "nope", "lol", "haha", "btw", "imo", "tbh",
			"trust me", "no kidding", "i swear",
		},
		ConnectorWords: []string{
			"you", "we", "let's", "right", "well", "actually", "basically",
			"anyway",
		},
	}
}
