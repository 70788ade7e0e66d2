// Package wiki retrieves a company's reference-encyclopedia profile: the
// infobox fields, the lead paragraph and the canonical name.
package wiki

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"companyscrapper/search"
)

const wikipediaDomain = "en.wikipedia.org"

// Profile is the raw output of one reference-page retrieval.
type Profile struct {
	Name        string
	Description string
	Fields      map[string]string
}

// Retriever locates and parses the reference page for a company.
type Retriever struct {
	gateway search.Gateway
	client  *http.Client
	log     *zap.Logger
}

func NewRetriever(gateway search.Gateway, log *zap.Logger) *Retriever {
	return &Retriever{
		gateway: gateway,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Retrieve searches for the company's encyclopedia page, fetches it and
// parses the profile. Failures here abort only the profile section of an
// aggregation, never the whole call.
func (r *Retriever) Retrieve(ctx context.Context, company string) (Profile, error) {
	results, err := r.gateway.Search(ctx, company+" company wikipedia")
	if err != nil {
		return Profile{}, err
	}

	link, err := search.ResolveLink(results, wikipediaDomain)
	if err != nil {
		return Profile{}, err
	}
	r.log.Debug("resolved reference page", zap.String("company", company), zap.String("url", link))

	doc, err := r.fetchDocument(ctx, link)
	if err != nil {
		return Profile{}, err
	}

	return ParseProfile(doc, company)
}
