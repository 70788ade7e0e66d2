package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"companyscrapper/aggregator"
	"companyscrapper/browser"
	"companyscrapper/cache"
	"companyscrapper/config"
	"companyscrapper/country"
	"companyscrapper/growjo"
	"companyscrapper/news"
	"companyscrapper/search"
	"companyscrapper/store"
	"companyscrapper/wiki"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongo, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection)
	cancel()
	if err != nil {
		log.Fatal("mongo connect failed", zap.Error(err))
	}

	redis := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	factory := browser.NewChromeFactory()
	pool, err := browser.NewPool(cfg.PoolSize, factory.NewSession, log)
	if err != nil {
		log.Fatal("browser pool startup failed", zap.Error(err))
	}

	gateway := search.NewDuckDuckGo(pool, log)
	agg := aggregator.NewService(
		wiki.NewRetriever(gateway, log),
		growjo.NewRetriever(gateway, pool, log),
		country.NewResolver(gateway, log),
		cfg.PoolSize,
		log,
	)
	server := aggregator.NewServer(agg, mongo, redis, cfg.CacheTTL, log)

	router := mux.NewRouter()
	router.HandleFunc("/", server.Root).Methods("GET")
	router.HandleFunc("/information/{company}", server.Information).Methods("GET")
	router.HandleFunc("/news/{company}", news.Handler(news.NewService(log), redis, log)).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors(router),
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown did not finish cleanly", zap.Error(err))
	}

	pool.Drain()
	factory.Close()
	if err := redis.Close(); err != nil {
		log.Warn("redis close failed", zap.Error(err))
	}
	if err := mongo.Disconnect(shutdownCtx); err != nil {
		log.Warn("mongo disconnect failed", zap.Error(err))
	}
}
