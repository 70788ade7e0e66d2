package aggregator

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"companyscrapper/cache"
	"companyscrapper/model"
	"companyscrapper/store"
)

// Server exposes the aggregation pipeline over HTTP, consulting the cache
// and the durable store before paying for a fresh scrape.
type Server struct {
	agg   *Service
	store store.Store
	cache *cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewServer(agg *Service, st store.Store, c *cache.Cache, ttl time.Duration, log *zap.Logger) *Server {
	return &Server{agg: agg, store: st, cache: c, ttl: ttl, log: log}
}

type errorPayload struct {
	Error   string `json:"error"`
	Company string `json:"company"`
}

// Information handles GET /information/{company}.
func (s *Server) Information(w http.ResponseWriter, r *http.Request) {
	company := strings.TrimSpace(mux.Vars(r)["company"])
	if company == "" {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "company name cannot be empty"})
		return
	}

	ctx := r.Context()

	record, err := cache.Memoize(ctx, s.cache, "company:"+strings.ToLower(company), s.ttl, func() (model.Company, error) {
		existing, err := s.store.FindByName(ctx, company)
		if err != nil {
			s.log.Warn("store lookup failed, scraping fresh", zap.String("company", company), zap.Error(err))
		}
		if existing != nil {
			s.log.Info("serving stored record", zap.String("company", company))
			return *existing, nil
		}

		s.log.Info("aggregating fresh record", zap.String("company", company))
		record, err := s.agg.Aggregate(ctx, company)
		if err != nil {
			return model.Company{}, err
		}

		now := time.Now().UTC()
		record.CreatedAt, record.UpdatedAt = now, now

		if err := s.store.Insert(ctx, record); err != nil {
			// The record is still good; persistence catches up next call.
			s.log.Warn("persisting record failed", zap.String("company", company), zap.Error(err))
		}
		return record, nil
	})
	if err != nil {
		s.log.Error("aggregation failed", zap.String("company", company), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: err.Error(), Company: company})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Company profile aggregation service. GET /information/{company}",
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
