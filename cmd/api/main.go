package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-health-journal/internal/adapters/auth/jwtauth"
	"pet-health-journal/internal/adapters/cache/rediscache"
	pg "pet-health-journal/internal/adapters/storage/postgres"
	"pet-health-journal/internal/domain/insights"
	"pet-health-journal/internal/platform/config"
	"pet-health-journal/internal/platform/logger"
	"pet-health-journal/internal/ports/auth"
	"pet-health-journal/internal/router"
)

// @title Pet Health Journal API
// @version 1.0
// @description Check-ins diarios de salud canina: resumen del día, consistencia, patrones y detección de emergencias.
// @BasePath /
func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		// sin logger todavía
		_, _ = os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if s, ok := log.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()

	ctx := context.Background()

	opts := router.Options{
		Logger:   log,
		Insights: cfg.Insights,
	}

	// Postgres opcional: si falla, seguimos en memoria (modo dev)
	if cfg.DatabaseDSN != "" {
		db, err := pg.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Warn("postgres unavailable, using in-memory repos", map[string]any{"err": err})
		} else {
			defer db.Close()
			if err := pg.Migrate(ctx, db); err != nil {
				log.Error("migrations failed", map[string]any{"err": err})
				os.Exit(1)
			}
			opts.DB = db
			log.Info("postgres connected", nil)
		}
	}

	var cache insights.Cache = insights.NopCache{}
	if cfg.Redis.Addr != "" {
		client, err := rediscache.NewClient(ctx, rediscache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("redis unavailable, insights cache disabled", map[string]any{"err": err})
		} else {
			defer client.Close()
			cache = rediscache.New(client, cfg.Redis.TTL)
			log.Info("redis connected", map[string]any{"addr": cfg.Redis.Addr})
		}
	}
	opts.Cache = cache

	var verifier auth.AuthVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = jwtauth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	} else {
		log.Warn("JWT_SECRET not set, dev mode (X-Debug-User-ID)", nil)
	}
	opts.AuthVerifier = verifier

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", map[string]any{"err": err})
	}
}
