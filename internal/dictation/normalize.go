package dictation

import (
	"regexp"
	"strings"
)

// Spoken number words accepted after "et" when it acts as a list separator.
const numberWordPattern = `dix-sept|dix-huit|dix-neuf|zéro|zero|deux|trois|quatre|cinq|six|sept|huit|neuf|dix|onze|douze|treize|quatorze|quinze|seize|vingt|une|un`

var (
	rePointVirgule = regexp.MustCompile(`(?i)\bpoint[ -]?virgule\b`)
	reVirgule      = regexp.MustCompile(`(?i)\bvirgule\b`)
	reEtNumber     = regexp.MustCompile(`(?i)\bet\s+(\d+|(?:` + numberWordPattern + `)\b)`)
	reSignSep      = regexp.MustCompile(`\s*[+\-−]\s*`)
	reFois         = regexp.MustCompile(`(?i)\bfois\b`)
	reDimFull      = regexp.MustCompile(`(?i)\bm\s*(\d+)\s*x\s*(\d+)`)
	reDimShort     = regexp.MustCompile(`(?i)\bm\s+(\d+)`)
	reSepSpacing   = regexp.MustCompile(`\s*([,;])\s*`)
	reSpaces       = regexp.MustCompile(`\s+`)
)

// Normalize rewrites a spoken dictation into a canonical token stream.
// The rule order matters: separators are settled before "fois" becomes a
// multiplier and before dimension codes are collapsed.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = rePointVirgule.ReplaceAllString(s, ";")
	s = reVirgule.ReplaceAllString(s, ",")
	s = reEtNumber.ReplaceAllString(s, ", $1")
	s = reSignSep.ReplaceAllString(s, ", ")
	s = reFois.ReplaceAllString(s, "x")
	s = reDimFull.ReplaceAllString(s, "M${1}x${2}")
	s = reDimShort.ReplaceAllString(s, "M$1")
	s = reSepSpacing.ReplaceAllString(s, "$1 ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
