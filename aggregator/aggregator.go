// Package aggregator orchestrates the three retrieval tasks into one
// company record and applies the fatal/non-fatal failure policy: profile
// and stats failures degrade their sections to defaults, an unresolved
// country fails the whole call.
package aggregator

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"companyscrapper/country"
	"companyscrapper/growjo"
	"companyscrapper/model"
	"companyscrapper/wiki"
)

// ProfileRetriever fetches the reference-page profile.
type ProfileRetriever interface {
	Retrieve(ctx context.Context, company string) (wiki.Profile, error)
}

// StatsRetriever fetches the statistics-page sections.
type StatsRetriever interface {
	Retrieve(ctx context.Context, company string) (growjo.Stats, error)
}

// CountryResolver resolves the country of origin, optionally seeded with
// structured profile fields.
type CountryResolver interface {
	Resolve(ctx context.Context, company string, profileFields map[string]string) (string, error)
}

// Service runs aggregation calls over a bounded worker group.
type Service struct {
	profiles  ProfileRetriever
	stats     StatsRetriever
	countries CountryResolver
	workers   int
	log       *zap.Logger
}

// NewService wires the three retrievers. workers should equal the session
// pool size so the group never queues more tasks than sessions exist.
func NewService(profiles ProfileRetriever, stats StatsRetriever, countries CountryResolver, workers int, log *zap.Logger) *Service {
	if workers <= 0 {
		workers = 3
	}
	return &Service{
		profiles:  profiles,
		stats:     stats,
		countries: countries,
		workers:   workers,
		log:       log,
	}
}

// Aggregate builds the merged record for one company. The returned record
// is complete and immutable; timestamps are left for the persistence
// boundary to stamp.
func (a *Service) Aggregate(ctx context.Context, company string) (model.Company, error) {
	r := newRun(company, a.log)
	r.transition(Running)

	var (
		profile    wiki.Profile
		stats      growjo.Stats
		resolved   string
		countryErr error
	)

	// The country task reads the profile's structured fields only when the
	// profile task has already delivered them; otherwise stage 1 is
	// skipped and resolution starts at its search stages.
	profileFields := make(chan map[string]string, 1)

	var g errgroup.Group
	g.SetLimit(a.workers)

	g.Go(func() error {
		p, err := a.profiles.Retrieve(ctx, company)
		if err != nil {
			a.log.Warn("profile retrieval degraded to defaults",
				zap.String("company", company), zap.Error(err))
			profileFields <- nil
			return nil
		}
		profile = p
		profileFields <- p.Fields
		return nil
	})

	g.Go(func() error {
		s, err := a.stats.Retrieve(ctx, company)
		if err != nil {
			a.log.Warn("stats retrieval degraded to defaults",
				zap.String("company", company), zap.Error(err))
			return nil
		}
		stats = s
		return nil
	})

	g.Go(func() error {
		var fields map[string]string
		select {
		case f := <-profileFields:
			fields = f
		default:
		}

		c, err := a.countries.Resolve(ctx, company, fields)
		if err != nil {
			countryErr = err
			return nil
		}
		resolved = c
		return nil
	})

	// Task errors are absorbed into the merge policy above; Wait only
	// synchronizes.
	_ = g.Wait()

	if countryErr == nil && resolved == "" {
		countryErr = country.ErrUnresolved
	}
	if countryErr != nil {
		r.transition(Failed)
		return model.Company{}, countryErr
	}

	r.transition(Succeeded)
	return a.compose(company, profile, stats, resolved), nil
}

func (a *Service) compose(company string, profile wiki.Profile, stats growjo.Stats, resolved string) model.Company {
	name := profile.Name
	if name == "" {
		name = company
	}

	record := model.Company{
		Company:     name,
		Description: profile.Description,
		Country:     resolved,
		Info:        profile.Fields,
		Competitors: stats.Competitors,
		Funding:     stats.Funding,
		Fixed: model.Stats{
			AnnualRevenue:      stats.Details["annual revenue"],
			VentureFunding:     stats.Details["venture funding"],
			RevenuePerEmployee: stats.Details["revenue per employee"],
			TotalFunding:       stats.Details["total funding"],
			CurrentValuation:   stats.Details["current valuation"],
			EmployeeCount:      employeeCount(stats.Details),
			Investors:          stats.Investors,
			Industry:           stats.Industry,
		},
	}

	if record.Info == nil {
		record.Info = map[string]string{}
	}
	if record.Competitors == nil {
		record.Competitors = map[string][]string{}
	}
	if record.Funding == nil {
		record.Funding = map[string][]string{}
	}

	return record
}

// employeeCount prefers the explicit count label over the looser
// "employees" line.
func employeeCount(details map[string]string) string {
	if v, ok := details["employee count"]; ok {
		return v
	}
	return details["employees"]
}
