package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/monkeytypegame/monkeytype-redirects/auth"
	"github.com/monkeytypegame/monkeytype-redirects/cache"
	"github.com/monkeytypegame/monkeytype-redirects/config"
	_ "github.com/monkeytypegame/monkeytype-redirects/docs" // Swagger docs
	"github.com/monkeytypegame/monkeytype-redirects/handler"
	appLogger "github.com/monkeytypegame/monkeytype-redirects/logger"
	"github.com/monkeytypegame/monkeytype-redirects/middleware"
	redisClient "github.com/monkeytypegame/monkeytype-redirects/redis"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/tester"
)

// @title monkeytype-redirects API
// @version 1.0
// @description Hostname redirect service with per-config usage statistics and live redirect verification.
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.MustLoadConfig()

	appLogger.Initialize(cfg.Production())
	log.Info().Str("mode", cfg.Mode).Msg("Configuration loaded successfully")

	// Redis is the only store; failing to reach it at boot is fatal
	rdb := redisClient.NewClient(cfg.Redis)

	var cacheClient *cache.Cache
	if cfg.Cache.Enabled {
		var err error
		cacheClient, err = cache.New(cfg.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize cache")
		}
	} else {
		log.Info().Msg("Cache disabled in configuration")
	}

	configStore := store.NewConfigStore(rdb)
	statsStore := store.NewStatsStore(rdb)
	userStore := store.NewUserStore(rdb)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryDays)*24*time.Hour)
	redirectTester := tester.New(cfg.Tester, cfg.Production())

	h := handler.New(configStore, statsStore, userStore, cacheClient, redirectTester, jwtManager, rdb, cfg)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	bearerAuth := middleware.NewBearerAuth(jwtManager)

	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger)
	r.Use(rateLimiter.Limit)

	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/cache/metrics", h.CacheMetrics).Methods("GET")
	r.HandleFunc("/redirect", h.Redirect).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", h.Register).Methods("POST")
	api.HandleFunc("/login", h.Login).Methods("POST")
	// Deliberately unauthenticated: performs no mutation and reveals only
	// the publicly observable behavior of a public hostname.
	api.HandleFunc("/test-redirect/{uuid}", h.TestRedirect).Methods("GET")

	protected := api.NewRoute().Subrouter()
	protected.Use(bearerAuth.Protect)
	protected.HandleFunc("/configs", h.ListConfigs).Methods("GET")
	protected.HandleFunc("/configs", h.CreateConfig).Methods("POST")
	protected.HandleFunc("/configs/{uuid}", h.GetConfig).Methods("GET")
	protected.HandleFunc("/stats/{uuid}", h.GetStats).Methods("GET")
	protected.HandleFunc("/ui-data", h.UIData).Methods("GET")
	protected.HandleFunc("/qr/{uuid}", h.GenerateQR).Methods("GET")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("address", serverAddress).Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	cacheClient.Close()

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Redis connection")
	}

	log.Info().Msg("Server stopped gracefully")
}
