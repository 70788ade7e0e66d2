package growjo

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var footnotePattern = regexp.MustCompile(`#\d+`)

// findTable returns the first stats table whose headers include
// wantedHeader (case-insensitive), or nil.
func findTable(doc *goquery.Document, wantedHeader string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table.cstm-table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		for _, h := range tableHeaders(table) {
			if strings.EqualFold(h, wantedHeader) {
				found = table
				return false
			}
		}
		return true
	})
	return found
}

// tableHeaders reads header cells from the thead, falling back to the
// first row when the table has none.
func tableHeaders(table *goquery.Selection) []string {
	var headers []string

	cells := table.Find("thead th")
	if cells.Length() == 0 {
		firstRow := table.Find("tr").First()
		cells = firstRow.Find("th")
		if cells.Length() == 0 {
			cells = firstRow.Find("td")
		}
	}

	cells.Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})
	return headers
}

// ParseTable reads a stats table into a column-name -> values map. Footnote
// markers (#12) are stripped from cells. Rows shorter than the header are
// padded with empty strings and longer rows are truncated, so every column
// list stays exactly as long as the number of body rows.
func ParseTable(table *goquery.Selection) map[string][]string {
	headers := tableHeaders(table)
	data := make(map[string][]string, len(headers))
	for _, h := range headers {
		data[h] = []string{}
	}
	if len(headers) == 0 {
		return data
	}

	rows := table.Find("tbody tr")
	if table.Find("thead").Length() == 0 {
		// Without a thead the first row carried the headers.
		rows = table.Find("tr").Slice(1, goquery.ToEnd)
	} else if rows.Length() == 0 {
		rows = table.Find("tr")
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		for i, header := range headers {
			text := ""
			if i < cells.Length() {
				text = strings.TrimSpace(footnotePattern.ReplaceAllString(cells.Eq(i).Text(), ""))
			}
			data[header] = append(data[header], text)
		}
	})

	return data
}
