package dictation

import (
	"regexp"
	"strings"
)

var reSeparators = regexp.MustCompile(`[,;]+`)

// ParseBatch normalizes a full dictation, splits it on separators and
// extracts one line per segment. Segments with no valid pair are skipped.
func ParseBatch(text string) []ParsedLine {
	lines := []ParsedLine{}
	for _, segment := range reSeparators.Split(Normalize(text), -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if line, ok := Extract(segment); ok {
			lines = append(lines, line)
		}
	}
	return lines
}
