package news

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"companyscrapper/cache"
)

const headlineLimit = 10

// Handler serves GET /news/{company}. Headlines churn quickly, so they get
// a much shorter TTL than company records.
func Handler(svc *Service, c *cache.Cache, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := strings.TrimSpace(mux.Vars(r)["company"])
		if company == "" {
			http.Error(w, "company name cannot be empty", http.StatusBadRequest)
			return
		}

		articles, err := cache.Memoize(r.Context(), c, "news:"+strings.ToLower(company), 15*time.Minute, func() ([]Article, error) {
			return svc.Fetch(r.Context(), company, headlineLimit)
		})
		if err != nil {
			log.Error("news fetch failed", zap.String("company", company), zap.Error(err))
			http.Error(w, "could not fetch news", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(articles)
	}
}
