// @title Itinerary Builder API
// @version 1.0
// @description Day-by-day itinerary assembly for travel agents
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	_ "ITINERARY_BACK-END/docs" // This is required for swagger
	"ITINERARY_BACK-END/internal/catalog"
	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/events"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/jobs"
	"ITINERARY_BACK-END/internal/middleware"
	"ITINERARY_BACK-END/internal/routes"
	"ITINERARY_BACK-END/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// simple protocol keeps PgBouncer in transaction mode happy
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "itinerary-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
		if err := storage.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	store := storage.NewStore(pool, cfg.Database.QueryTimeout)

	// --- Catalog (optionally cached in Redis) ---
	var packages itinerary.Catalog = store
	var cachePinger handlers.Pinger
	var rdb *redis.Client
	if cfg.IsCacheConfigured() {
		rdb, err = catalog.NewClient(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		cached := catalog.NewCached(store, rdb, cfg.Redis.CatalogTTL)
		// entries from a previous deploy may carry an older schema
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cached.Invalidate(ctx); err != nil {
			log.Printf("Catalog cache invalidate failed: %v", err)
		}
		cancel()
		packages = cached
		cachePinger = cached
		log.Printf("Catalog cache enabled (ttl=%s)", cfg.Redis.CatalogTTL)
	}

	// --- Realtime events ---
	hub := events.NewHub()
	go hub.Run()
	listener := handlers.NewSessionListener(store, events.NewBroadcaster(hub), cfg.Builder.DefaultCurrency)

	sessions := itinerary.NewSessions(store, packages, itinerary.Options{
		PriceDebounce: cfg.Builder.PriceDebounce,
		WriteTimeout:  cfg.Builder.WriteTimeout,
		Listener:      listener,
	})

	// --- Background jobs ---
	var reconciler *jobs.Reconciler
	if cfg.Jobs.ReconcileEnabled {
		reconciler = jobs.NewReconciler(store, sessions, cfg.Jobs.ReconcileInterval, cfg.Jobs.ReconcileLookback)
		if err := reconciler.Start(); err != nil {
			log.Fatalf("reconciler: %v", err)
		}
	}

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Health:        handlers.NewHealthHandler(store, cachePinger),
		Itineraries:   handlers.NewItinerariesHandler(store, sessions, listener),
		Builder:       handlers.NewBuilderHandler(sessions, cfg.Builder.CatalogLimit),
		Packages:      handlers.NewPackagesHandler(packages, cfg.Builder.CatalogLimit),
		Notifications: handlers.NewNotificationsHandler(store),
		WebSocket:     handlers.NewWebSocketHandler(hub, store, cfg.CORS.AllowedOrigins),
	}, &cfg.JWT)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.Chain(mux, middleware.Logging, middleware.Recovery, limiter.Limit))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// pending totals are flushed before the pool goes away
	sessions.CloseAll()
	if reconciler != nil {
		if err := reconciler.Stop(); err != nil {
			log.Printf("Reconciler shutdown error: %v", err)
		}
	}
	hub.Stop()
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}
	log.Println("Server stopped.")
}
