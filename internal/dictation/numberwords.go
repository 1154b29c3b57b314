package dictation

// numberWords maps spoken French number words (0-20) to their value.
// Keys are lowercase and accent-folded ("zéro" is looked up as "zero").
var numberWords = map[string]int{
	"zero":     0,
	"un":       1,
	"une":      1,
	"deux":     2,
	"trois":    3,
	"quatre":   4,
	"cinq":     5,
	"six":      6,
	"sept":     7,
	"huit":     8,
	"neuf":     9,
	"dix":      10,
	"onze":     11,
	"douze":    12,
	"treize":   13,
	"quatorze": 14,
	"quinze":   15,
	"seize":    16,
	"dix-sept": 17,
	"dix-huit": 18,
	"dix-neuf": 19,
	"vingt":    20,
}

// NumberWord resolves a spoken number word, case- and accent-insensitively.
func NumberWord(token string) (int, bool) {
	value, ok := numberWords[Fold(token)]
	return value, ok
}
