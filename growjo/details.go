package growjo

import (
	"regexp"
	"strings"
)

// detailSections are the known labels scanned for in the descriptive list.
// First matching line wins per label.
var detailSections = []string{
	"annual revenue",
	"venture funding",
	"revenue per employee",
	"total funding",
	"current valuation",
	"employees",
	"employee count",
}

var amountPattern = regexp.MustCompile(`[$€£]?\s?\d{1,3}(?:[,\d]*)(?:\.\d+)?\s?[kmbKMB]?`)

// ExtractDetails scans the descriptive lines for each known section label
// (case-insensitive substring) and keeps the first currency/number token of
// the matching line, or the whole line when no token is found.
func ExtractDetails(lines []string) map[string]string {
	details := make(map[string]string)
	seen := make(map[string]bool)

	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, section := range detailSections {
			if !strings.Contains(lower, section) || seen[section] {
				continue
			}
			if m := strings.TrimSpace(amountPattern.FindString(line)); m != "" {
				details[section] = m
			} else {
				details[section] = strings.TrimSpace(line)
			}
			seen[section] = true
			break
		}
	}

	return details
}
