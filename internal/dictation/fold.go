package dictation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and strips accents ("Référence" -> "reference").
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
