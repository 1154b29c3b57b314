package calc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	rePlusWord   = regexp.MustCompile(`\bplus\b`)
	reMinusWord  = regexp.MustCompile(`\bmoins\b`)
	reTimesWord  = regexp.MustCompile(`\b(?:fois|multiplie|multiplier)\b`)
	reDivideWord = regexp.MustCompile(`\bdivise[er]?\b`)
	reParWord    = regexp.MustCompile(`\bpar\b`)
	reDigitX     = regexp.MustCompile(`(\d)\s*x\s*(\d)`)
	reMathJunk   = regexp.MustCompile(`[^0-9+\-*/().]`)
)

// NormalizeMathSpeech rewrites spoken French arithmetic ("5 plus 10",
// "20 divisé par 4") into the plain expression fed to Evaluate. The
// digit-x-digit collapse must run before the junk strip, otherwise the
// x would be removed and the two operands would merge.
func NormalizeMathSpeech(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = rePlusWord.ReplaceAllString(s, " + ")
	s = reMinusWord.ReplaceAllString(s, " - ")
	s = reTimesWord.ReplaceAllString(s, " * ")
	s = reDivideWord.ReplaceAllString(s, " / ")
	s = reParWord.ReplaceAllString(s, " ")
	s = reDigitX.ReplaceAllString(s, "$1*$2")
	s = reMathJunk.ReplaceAllString(s, "")
	return s
}
