package search

import "strings"

// CombineSnippets folds the result snippets into one lower-cased text blob
// for the regex/frequency miners. Duplicate snippets are collapsed so a
// syndicated blurb repeated across entries is counted once.
func CombineSnippets(results []Result) string {
	seen := make(map[string]struct{}, len(results))
	var parts []string
	for _, r := range results {
		snippet := strings.ToLower(strings.TrimSpace(r.Snippet))
		if snippet == "" {
			continue
		}
		if _, ok := seen[snippet]; ok {
			continue
		}
		seen[snippet] = struct{}{}
		parts = append(parts, snippet)
	}
	return strings.Join(parts, " ")
}
