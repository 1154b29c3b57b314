package dictation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParsedLine is one extracted (item, quantity) pair.
type ParsedLine struct {
	ItemLabel string  `json:"item_label"`
	Quantity  float64 `json:"quantity"`
}

// Length units that disqualify the digit token right before them
// from being read as a quantity ("vis 6 mm").
var unitWords = map[string]bool{
	"mm":          true,
	"millimetre":  true,
	"millimetres": true,
}

var (
	reLeadingDigits  = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	reTrailingDigits = regexp.MustCompile(`^(.+)\s+(\d+)$`)
	reAllDigits      = regexp.MustCompile(`^\d+$`)
)

// Extract determines a quantity and an item label for one normalized,
// separator-free segment. Strategies are tried in priority order and the
// first success wins; a segment with no valid pair yields no line.
func Extract(segment string) (ParsedLine, bool) {
	seg := strings.TrimSpace(segment)
	if seg == "" {
		return ParsedLine{}, false
	}

	strategies := []func(string) (ParsedLine, bool){
		extractLeadingDigits,
		extractLeadingNumberWord,
		extractTrailingMultiplier,
		extractTrailingDigits,
		extractFirstFreeDigit,
	}

	for _, try := range strategies {
		if line, ok := try(seg); ok {
			return line, true
		}
	}
	return ParsedLine{}, false
}

// "10 vis M6x20"
func extractLeadingDigits(seg string) (ParsedLine, bool) {
	m := reLeadingDigits.FindStringSubmatch(seg)
	if m == nil {
		return ParsedLine{}, false
	}
	quantity, err := strconv.Atoi(m[1])
	if err != nil || quantity <= 0 {
		return ParsedLine{}, false
	}
	label := strings.TrimSpace(m[2])
	if label == "" {
		return ParsedLine{}, false
	}
	return ParsedLine{ItemLabel: label, Quantity: float64(quantity)}, true
}

// "dix vis M6x20"
func extractLeadingNumberWord(seg string) (ParsedLine, bool) {
	first, rest := cutToken(seg)
	if rest == "" {
		return ParsedLine{}, false
	}
	value, ok := NumberWord(first)
	if !ok || value <= 0 {
		return ParsedLine{}, false
	}
	return ParsedLine{ItemLabel: rest, Quantity: float64(value)}, true
}

// "vis M6x20 x 10" (the x glued between two digits belongs to a
// dimension code and is never a multiplier)
func extractTrailingMultiplier(seg string) (ParsedLine, bool) {
	i := strings.LastIndexAny(seg, "xX")
	if i <= 0 {
		return ParsedLine{}, false
	}
	after := seg[i+1:]
	digits := strings.TrimSpace(after)
	if !reAllDigits.MatchString(digits) {
		return ParsedLine{}, false
	}
	prev, _ := utf8.DecodeLastRuneInString(seg[:i])
	if unicode.IsDigit(prev) {
		return ParsedLine{}, false
	}
	// An x glued to the label ("visx10") is only a multiplier when the
	// digits are glued too; "fax 3" keeps its final x.
	if !unicode.IsSpace(prev) && after != digits {
		return ParsedLine{}, false
	}
	label := strings.TrimSpace(seg[:i])
	quantity, err := strconv.Atoi(digits)
	if err != nil || quantity <= 0 || label == "" {
		return ParsedLine{}, false
	}
	return ParsedLine{ItemLabel: label, Quantity: float64(quantity)}, true
}

// "vis M6x20 10"
func extractTrailingDigits(seg string) (ParsedLine, bool) {
	m := reTrailingDigits.FindStringSubmatch(seg)
	if m == nil {
		return ParsedLine{}, false
	}
	quantity, err := strconv.Atoi(m[2])
	if err != nil || quantity <= 0 {
		return ParsedLine{}, false
	}
	label := strings.TrimSpace(m[1])
	if label == "" {
		return ParsedLine{}, false
	}
	return ParsedLine{ItemLabel: label, Quantity: float64(quantity)}, true
}

// Last resort: the first standalone digit token that is not a length
// measurement becomes the quantity, everything else the label.
func extractFirstFreeDigit(seg string) (ParsedLine, bool) {
	tokens := strings.Fields(seg)
	for i, token := range tokens {
		if !reAllDigits.MatchString(token) {
			continue
		}
		if i+1 < len(tokens) && unitWords[Fold(tokens[i+1])] {
			continue
		}
		quantity, err := strconv.Atoi(token)
		if err != nil || quantity <= 0 {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		label := strings.Join(rest, " ")
		if label == "" {
			return ParsedLine{}, false
		}
		return ParsedLine{ItemLabel: label, Quantity: float64(quantity)}, true
	}
	return ParsedLine{}, false
}

func cutToken(s string) (first, rest string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}
