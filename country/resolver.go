// Package country resolves a company's country of origin from noisy text
// through an ordered four-stage fallback: structured profile fields,
// mention-frequency mining over search snippets, demonym matching, and a
// contextual regex. Only allow-listed countries are ever returned.
package country

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"companyscrapper/search"
)

// ErrUnresolved means all four resolution stages came up empty. This is the
// one retrieval error that is fatal to a whole aggregation call.
var ErrUnresolved = eris.New("country: origin could not be resolved")

// structuredFieldKeys are the profile keys stage 1 inspects, in order.
var structuredFieldKeys = []string{"headquarters", "country"}

// Resolver runs the fallback chain. Stages 2-4 share a single search call;
// stage 1 never touches the network.
type Resolver struct {
	gateway search.Gateway
	log     *zap.Logger
}

func NewResolver(gateway search.Gateway, log *zap.Logger) *Resolver {
	return &Resolver{gateway: gateway, log: log}
}

// Resolve returns the allow-listed country of origin for company.
// profileFields may be nil when no structured data is available, in which
// case resolution starts at stage 2.
func (r *Resolver) Resolve(ctx context.Context, company string, profileFields map[string]string) (string, error) {
	if c := FromStructuredFields(profileFields); c != "" {
		r.log.Debug("country resolved from structured fields", zap.String("company", company), zap.String("country", c))
		return c, nil
	}

	results, err := r.gateway.Search(ctx, company+" company founded in what country?")
	if err != nil {
		r.log.Warn("country search failed", zap.String("company", company), zap.Error(err))
		return "", eris.Wrapf(ErrUnresolved, "search failed for %q: %v", company, err)
	}
	text := search.CombineSnippets(results)

	if c := MostMentionedCountry(text); c != "" {
		return c, nil
	}
	if c := FromDemonyms(text); c != "" {
		return c, nil
	}
	if c := FromContextualMention(text); c != "" {
		return c, nil
	}

	return "", eris.Wrapf(ErrUnresolved, "company %q", company)
}
