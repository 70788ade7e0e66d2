package growjo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"companyscrapper/search"
)

// investorPattern covers the alternate phrasings investor counts appear in
// inside search snippets. Alternation order matters: the specific phrasings
// come before the bare "N investors" catch-all so each occurrence is
// counted once.
var investorPattern = regexp.MustCompile(`(?i)` +
	`has\s+(\d+)\s+investors|` +
	`from\s+(\d+)\s+investors|` +
	`total\s+of\s+(\d+)\s+investors|` +
	`raised\s+.*?\s+from\s+(\d+)\s+investors|` +
	`backed\s+by\s+(\d+)\s+investors|` +
	`(\d+)\s+investors\s+participated|` +
	`(\d+)\s+institutional\s+investors|` +
	`(\d+)\s+investors`)

// CountInvestorMentions tallies every number matched by the investor
// phrasings and returns the most frequent one; ties go to the number first
// encountered in scan order. Returns 0 when nothing matches.
func CountInvestorMentions(text string) int {
	counts := make(map[int]int)
	var order []int

	for _, match := range investorPattern.FindAllStringSubmatch(text, -1) {
		for _, group := range match[1:] {
			if group == "" {
				continue
			}
			n, err := strconv.Atoi(group)
			if err != nil {
				continue
			}
			if counts[n] == 0 {
				order = append(order, n)
			}
			counts[n]++
		}
	}

	best, bestCount := 0, 0
	for _, n := range order {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	return best
}

// investorCount runs the secondary "how many investors" search and mines
// the combined snippets. Any failure degrades to 0; the investor figure is
// never load-bearing.
func (r *Retriever) investorCount(ctx context.Context, company string) int {
	query := fmt.Sprintf("how many investors does %s have?", company)
	results, err := r.gateway.Search(ctx, query)
	if err != nil {
		r.log.Warn("investor search failed", zap.String("company", company), zap.Error(err))
		return 0
	}
	return CountInvestorMentions(search.CombineSnippets(results))
}
