package search

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "unwraps uddg parameter",
			raw:  "//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FAndela&rut=abc",
			want: "https://en.wikipedia.org/wiki/Andela",
		},
		{
			name: "plain url passes through",
			raw:  "https://growjo.com/company/Paystack",
			want: "https://growjo.com/company/Paystack",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanRedirectURL(tt.raw))
		})
	}
}

func TestResolveLinkScansOnlyFirstTwo(t *testing.T) {
	results := []Result{
		{URL: "https://example.com/blog"},
		{URL: "https://other.example.org"},
		{URL: "https://growjo.com/company/Flutterwave"}, // third entry, out of scan range
	}

	_, err := ResolveLink(results, "growjo.com")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestResolveLinkReturnsFirstMatch(t *testing.T) {
	results := []Result{
		{URL: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FPaystack"},
		{URL: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FStripe"},
	}

	link, err := ResolveLink(results, "en.wikipedia.org")
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Paystack", link)
}

func TestResolveLinkStripsResidualWrapper(t *testing.T) {
	results := []Result{
		{URL: "https://duckduckgo.com/url?q=https://growjo.com/company/Andela&sa=x"},
	}

	link, err := ResolveLink(results, "growjo.com")
	require.NoError(t, err)
	assert.Equal(t, "https://growjo.com/company/Andela", link)
}

func TestResolveLinkEmptyResults(t *testing.T) {
	_, err := ResolveLink(nil, "en.wikipedia.org")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestParseResults(t *testing.T) {
	html := `
	<div class="results">
	  <div class="result">
	    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FAndela">Andela - Wikipedia</a>
	    <a class="result__url" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FAndela">en.wikipedia.org</a>
	    <div class="result__snippet">Andela is a global talent network founded in Lagos, Nigeria.</div>
	  </div>
	  <div class="result">
	    <a class="result__url" href="https://techcrunch.com/andela">techcrunch.com</a>
	    <div class="result__snippet">Andela raises new funding.</div>
	  </div>
	</div>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	results := ParseResults(doc)
	require.Len(t, results, 2)
	assert.Contains(t, results[0].URL, "uddg=")
	assert.Contains(t, results[0].Snippet, "founded in Lagos, Nigeria")
	assert.Equal(t, "https://techcrunch.com/andela", results[1].URL)
}
