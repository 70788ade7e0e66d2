package search

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrLinkNotFound is returned when none of the inspected results resolve to
// the wanted domain.
var ErrLinkNotFound = eris.New("search: no matching link in top results")

// linkScanLimit bounds how many results ResolveLink inspects. Keeping the
// scan narrow is a cost-control decision: a relevant page not in the top
// two results is treated as absent.
const linkScanLimit = 2

// ResolveLink scans the first results for a de-redirected destination URL
// containing domainHint.
func ResolveLink(results []Result, domainHint string) (string, error) {
	limit := linkScanLimit
	if len(results) < limit {
		limit = len(results)
	}

	for _, r := range results[:limit] {
		clean := CleanRedirectURL(r.URL)
		if clean == "" || !strings.Contains(clean, domainHint) {
			continue
		}
		return stripSearchWrapper(clean), nil
	}

	return "", eris.Wrapf(ErrLinkNotFound, "domain hint %q", domainHint)
}

// CleanRedirectURL unwraps the uddg redirect parameter DuckDuckGo wraps
// result links in, returning the true destination. Links without the
// wrapper pass through unchanged.
func CleanRedirectURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "uddg=") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("uddg")
}

// stripSearchWrapper removes a residual /url?q= layer some entries carry on
// top of the uddg wrapper.
func stripSearchWrapper(u string) string {
	if i := strings.LastIndex(u, "/url?q="); i >= 0 {
		u = u[i+len("/url?q="):]
		if j := strings.Index(u, "&"); j >= 0 {
			u = u[:j]
		}
	}
	return u
}
