package container

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Summarize folds lines into one total per item label, sorted with French
// collation so accented labels land where an operator expects them.
// Sums do not depend on input order; only the final sort does.
func Summarize(lines []*Line) []SummaryLine {
	totals := make(map[string]float64)
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, seen := totals[line.ItemLabel]; !seen {
			labels = append(labels, line.ItemLabel)
		}
		totals[line.ItemLabel] += line.Quantity
	}

	collate.New(language.French).SortStrings(labels)

	summary := make([]SummaryLine, 0, len(labels))
	for _, label := range labels {
		summary = append(summary, SummaryLine{
			ItemLabel:     label,
			TotalQuantity: totals[label],
		})
	}
	return summary
}
