// Package search issues web searches through pooled browsing sessions and
// resolves result links.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"companyscrapper/browser"
)

// Result is one ranked search entry: the (possibly redirect-wrapped) link
// and the entry's visible text.
type Result struct {
	URL     string
	Snippet string
}

// Gateway is the generic search capability the retrievers depend on.
type Gateway interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

const (
	htmlEndpoint = "https://html.duckduckgo.com/html/"
	// The search box is load-bearing: if it never appears the whole
	// search fails, unlike the softer waits inside page parsing.
	searchBoxTimeout = 5 * time.Second
	resultsTimeout   = 5 * time.Second
)

// DuckDuckGo runs queries against the DuckDuckGo HTML endpoint using a
// session checked out of the pool for the duration of one search.
type DuckDuckGo struct {
	pool *browser.Pool
	log  *zap.Logger
}

func NewDuckDuckGo(pool *browser.Pool, log *zap.Logger) *DuckDuckGo {
	return &DuckDuckGo{pool: pool, log: log}
}

func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	s, err := d.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer d.pool.Release(s)

	if err := s.Navigate(ctx, htmlEndpoint); err != nil {
		return nil, err
	}
	if err := s.WaitFor(ctx, `input[name="q"]`, searchBoxTimeout); err != nil {
		return nil, eris.Wrap(err, "search: search box not ready")
	}
	if err := s.TypeAndSubmit(ctx, "q", query); err != nil {
		return nil, err
	}
	if err := s.WaitFor(ctx, ".results", resultsTimeout); err != nil {
		return nil, eris.Wrap(err, "search: results never loaded")
	}

	html, err := s.CurrentMarkup(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "search: parsing results page")
	}

	results := ParseResults(doc)
	d.log.Debug("search finished", zap.String("query", query), zap.Int("results", len(results)))
	return results, nil
}

// ParseResults extracts ranked entries from a DuckDuckGo HTML results page.
// The snippet is the entry's whole visible text; the text miners downstream
// work on it as-is.
func ParseResults(doc *goquery.Document) []Result {
	var results []Result
	doc.Find("div.result").Each(func(_ int, sel *goquery.Selection) {
		href := sel.Find("a.result__url").AttrOr("href", "")
		if href == "" {
			href = sel.Find("a.result__a").AttrOr("href", "")
		}
		snippet := strings.Join(strings.Fields(sel.Text()), " ")
		if href == "" && snippet == "" {
			return
		}
		results = append(results, Result{URL: href, Snippet: snippet})
	})
	return results
}
