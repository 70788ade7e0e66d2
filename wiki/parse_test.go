package wiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyPage = `
<html><body>
<span class="mw-page-title-main">Andela</span>
<div class="mw-body-content">
  <table class="infobox">
    <tr><th>Headquarters</th><td>Lagos,
Nigeria</td></tr>
    <tr><th>Revenue</th><td>US$246.4 million (2023)[3]</td></tr>
    <tr><th>Industry</th><td>Technology[1][2]</td></tr>
    <tr><td colspan="2"><a href="https://andela.com">andela.com</a></td></tr>
  </table>
  <p></p>
  <p>Andela is a global startup that connects companies with software engineers.[1][2]</p>
  <p>It was founded in Lagos.</p>
</div>
</body></html>`

const notACompanyPage = `
<html><body>
<span class="mw-page-title-main">Andela (river)</span>
<div class="mw-body-content">
  <p>A minor river flowing through a quiet valley.</p>
</div>
</body></html>`

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile(parse(t, companyPage), "andela")
	require.NoError(t, err)

	assert.Equal(t, "Andela", profile.Name)
	assert.Equal(t, "Andela is a global startup that connects companies with software engineers.", profile.Description)

	assert.Equal(t, "Lagos, Nigeria", profile.Fields["headquarters"])
	assert.Equal(t, "US$246.4 million", profile.Fields["revenue"], "money fields keep only the first currency amount")
	assert.Equal(t, "Technology", profile.Fields["industry"], "citation markers are stripped")
	assert.Equal(t, "https://andela.com", profile.Fields["website"])

	for key := range profile.Fields {
		assert.Equal(t, strings.ToLower(key), key, "infobox keys are lower-cased")
	}
}

func TestParseProfileNameFallsBackToInput(t *testing.T) {
	page := `
	<html><body><div class="mw-body-content">
	<p>Some business operating somewhere.</p>
	</div></body></html>`

	profile, err := ParseProfile(parse(t, page), "mystery co")
	require.NoError(t, err)
	assert.Equal(t, "mystery co", profile.Name)
}

func TestParseProfileRejectsNonCompanyPages(t *testing.T) {
	_, err := ParseProfile(parse(t, notACompanyPage), "andela")
	assert.ErrorIs(t, err, ErrNotACompany)
}

func TestCleanFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "money value reduced to amount",
			value: "US$1.5 billion (estimated)[7]",
			want:  "US$1.5 billion",
		},
		{
			name:  "money word without amount keeps cleaned text",
			value: "several million users[2]",
			want:  "several million users",
		},
		{
			name:  "newlines flatten to commas",
			value: "Lagos\nNairobi\nCairo",
			want:  "Lagos, Nairobi, Cairo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanFieldValue(tt.value))
		})
	}
}
