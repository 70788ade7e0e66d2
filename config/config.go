// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable the process reads at startup. Collaborator
// handles (Redis, Mongo, browser pool) are constructed once in main from
// these values and passed down; nothing reinitializes them later.
type Config struct {
	Port            string
	RedisAddr       string
	RedisPassword   string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	PoolSize        int
	CacheTTL        time.Duration
	AllowedOrigins  []string
}

// Load reads .env (if present) and the environment, applying defaults for
// local development.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", "8000"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "companyscrapper"),
		MongoCollection: getenv("MONGO_COLLECTION", "companies"),
		PoolSize:        getenvInt("BROWSER_POOL_SIZE", 3),
		CacheTTL:        time.Duration(getenvInt("CACHE_TTL_HOURS", 5)) * time.Hour,
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
