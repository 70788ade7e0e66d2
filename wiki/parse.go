package wiki

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// ErrNotACompany is returned when the resolved page fails the plausibility
// check, i.e. the search most likely landed on an unrelated entry.
var ErrNotACompany = eris.New("wiki: page does not describe a company")

var (
	citationPattern = regexp.MustCompile(`\[\d*\]`)
	moneyPattern    = regexp.MustCompile(`US\$\d+(?:[.,]\d+)? \w+`)
)

// magnitudeWords flag an infobox value as money-like; those values are
// reduced to their first currency-amount token.
var magnitudeWords = []string{"hundred", "thousand", "million", "billion", "trillion"}

// companyKeywords must appear somewhere in the page body for it to pass as
// a company article.
var companyKeywords = []string{
	"company", "startup", "corporation", "firm",
	"organization", "business", "enterprise", "subsidiary",
}

// ParseProfile extracts the canonical name, cleaned infobox fields and the
// lead-paragraph description from an encyclopedia page.
func ParseProfile(doc *goquery.Document, fallbackName string) (Profile, error) {
	name := strings.TrimSpace(doc.Find("span.mw-page-title-main").First().Text())
	if name == "" {
		name = fallbackName
	}

	body := doc.Find("div.mw-body-content")
	bodyText := strings.ToLower(body.Text())
	if !containsAny(bodyText, companyKeywords) {
		return Profile{}, eris.Wrapf(ErrNotACompany, "page for %q", fallbackName)
	}

	return Profile{
		Name:        name,
		Description: leadParagraph(body),
		Fields:      parseInfobox(doc),
	}, nil
}

// leadParagraph returns the first non-empty paragraph of the article with
// citation markers stripped.
func leadParagraph(body *goquery.Selection) string {
	var desc string
	body.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			return true
		}
		desc = text
		return false
	})
	return strings.TrimSpace(citationPattern.ReplaceAllString(desc, ""))
}

// parseInfobox reads the two-column key/value summary table. Keys are
// lower-cased so differently-cased duplicates collapse onto one entry.
func parseInfobox(doc *goquery.Document) map[string]string {
	fields := make(map[string]string)

	infobox := doc.Find("table.infobox").First()
	infobox.Find("tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		if label == "" || value == "" {
			return
		}
		fields[strings.ToLower(label)] = cleanFieldValue(value)
	})

	if href := infobox.Find("a[href]").First().AttrOr("href", ""); strings.HasPrefix(href, "http") {
		fields["website"] = href
	}

	return fields
}

// cleanFieldValue normalizes one infobox value. Money-like values keep only
// their first US$ amount; everything else loses citation markers and has
// newlines flattened to comma-separated text.
func cleanFieldValue(value string) string {
	if containsAny(strings.ToLower(value), magnitudeWords) {
		if m := moneyPattern.FindString(value); m != "" {
			return m
		}
		return strings.TrimSpace(citationPattern.ReplaceAllString(value, ""))
	}

	flattened := strings.ReplaceAll(value, "\n", ", ")
	flattened = strings.ReplaceAll(flattened, ",,", ",")
	return strings.TrimSpace(citationPattern.ReplaceAllString(flattened, ""))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
