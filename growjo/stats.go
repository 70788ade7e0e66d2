// Package growjo retrieves company statistics from a growjo.com profile
// page: industry tag, competitor and funding tables, descriptive figures
// and a search-derived investor count.
package growjo

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"companyscrapper/browser"
	"companyscrapper/search"
)

const (
	growjoDomain    = "growjo.com"
	pageLoadTimeout = 10 * time.Second
)

// pageOverrides routes specific companies straight to a known profile URL
// instead of the resolved search link. Data fixture for entries whose
// search ranking is unreliable; not a pattern to extend.
var pageOverrides = map[string]string{
	"andela": "https://growjo.com/company/Andela",
}

// Stats is the raw output of one statistics-page retrieval. Every section
// degrades independently to its zero value when its block fails to parse.
type Stats struct {
	Industry    string
	Competitors map[string][]string
	Funding     map[string][]string
	Details     map[string]string
	Investors   int
}

// Retriever locates and parses the statistics page for a company.
type Retriever struct {
	gateway search.Gateway
	pool    *browser.Pool
	log     *zap.Logger
}

func NewRetriever(gateway search.Gateway, pool *browser.Pool, log *zap.Logger) *Retriever {
	return &Retriever{gateway: gateway, pool: pool, log: log}
}

// Retrieve fetches the stats page through a pooled session and parses it.
// A failure before the page markup is available aborts the whole stats
// section; once markup is in hand, each block is fault-isolated.
func (r *Retriever) Retrieve(ctx context.Context, company string) (Stats, error) {
	results, err := r.gateway.Search(ctx, company+" "+growjoDomain+" company")
	if err != nil {
		return Stats{}, err
	}

	link, err := search.ResolveLink(results, growjoDomain)
	if err != nil {
		return Stats{}, err
	}
	if override, ok := pageOverrides[strings.ToLower(strings.TrimSpace(company))]; ok {
		link = override
	}

	doc, err := r.fetchStatsPage(ctx, link)
	if err != nil {
		return Stats{}, err
	}

	stats := ParseStatsPage(doc)
	stats.Investors = r.investorCount(ctx, company)
	return stats, nil
}

func (r *Retriever) fetchStatsPage(ctx context.Context, link string) (*goquery.Document, error) {
	s, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(s)

	if err := s.Navigate(ctx, link); err != nil {
		return nil, err
	}
	if err := s.WaitFor(ctx, "main", pageLoadTimeout); err != nil {
		return nil, err
	}

	html, err := s.CurrentMarkup(ctx)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// ParseStatsPage extracts every on-page section. Blocks that find nothing
// leave their zero value in place rather than failing the others.
func ParseStatsPage(doc *goquery.Document) Stats {
	stats := Stats{
		Competitors: map[string][]string{},
		Funding:     map[string][]string{},
	}

	stats.Industry = parseIndustry(doc)

	if table := findTable(doc, "competitor name"); table != nil {
		stats.Competitors = ParseTable(table)
	}
	if table := findTable(doc, "lead investors"); table != nil {
		stats.Funding = ParseTable(table)
	}

	stats.Details = ExtractDetails(detailLines(doc))
	return stats
}

// parseIndustry reads the first industry link inside the financial-summary
// block.
func parseIndustry(doc *goquery.Document) string {
	var industry string
	doc.Find("#revenue-financials a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if strings.Contains(a.AttrOr("href", ""), "/industry/") {
			industry = strings.TrimSpace(a.Text())
			return false
		}
		return true
	})
	return industry
}

// detailLines collects the descriptive list entries holding revenue,
// funding and headcount figures.
func detailLines(doc *goquery.Document) []string {
	var lines []string
	doc.Find("div.col-md-5 li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return lines
}
