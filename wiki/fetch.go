package wiki

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/rotisserie/eris"
)

// fetchDocument GETs a page over plain HTTP and parses it. The reference
// site is a static encyclopedia, so no browsing session is spent on it.
func (r *Retriever) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "wiki: building request")
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:134.0) Gecko/20100101 Firefox/134.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br, zstd")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "wiki: fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("wiki: fetching %s: status %d", url, resp.StatusCode)
	}

	var reader io.Reader
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "wiki: gzip reader")
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fr := flate.NewReader(resp.Body)
		defer fr.Close()
		reader = fr
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "wiki: zstd reader")
		}
		defer zr.Close()
		reader = zr
	default:
		reader = resp.Body
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, eris.Wrap(err, "wiki: parsing page")
	}
	return doc, nil
}
