package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/lojas-backend/internal/config"
	"github.com/georgemunganga/lojas-backend/internal/database"
	"github.com/georgemunganga/lojas-backend/internal/logger"
	appmw "github.com/georgemunganga/lojas-backend/internal/middleware"
	"github.com/georgemunganga/lojas-backend/internal/modules/catalog"
	"github.com/georgemunganga/lojas-backend/internal/modules/dashboard"
	"github.com/georgemunganga/lojas-backend/internal/modules/paymentmethod"
	"github.com/georgemunganga/lojas-backend/internal/modules/sale"
	"github.com/georgemunganga/lojas-backend/internal/modules/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		File:        cfg.Log.File,
		ServiceName: "lojas-api",
	})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Options{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MaxIdle:  cfg.Database.MaxIdle,
	})
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()
	zl.Info("database connected")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			zl.Fatal("migrate database", zap.Error(err))
		}
	}

	// ── Payment method cache ────────────────────────────────
	cache := paymentmethod.NewNoopCache()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unreachable, payment methods will be read from the database",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cache = paymentmethod.NewRedisCache(rdb, cfg.PaymentMethodCacheTTL)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appmw.AccessLog(zl))
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, `{"status":"unavailable"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.JWTSecret == "" {
		zl.Warn("JWT_SECRET not set, API routes are unauthenticated")
	}

	router.Group(func(r chi.Router) {
		r.Use(appmw.Auth(cfg.JWTSecret))

		// ── Stores & payment methods ────────────────────────
		storeService := store.NewService(store.NewPostgresRepository(db), zl)
		store.NewHandler(storeService, zl).RegisterRoutes(r)

		paymentService := paymentmethod.NewService(paymentmethod.NewPostgresRepository(db), cache, zl)
		paymentmethod.NewHandler(paymentService, zl).RegisterRoutes(r)

		// ── Catalog ─────────────────────────────────────────
		catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
		catalog.NewHandler(catalogService, zl).RegisterRoutes(r)

		// ── Sales ───────────────────────────────────────────
		saleService := sale.NewService(sale.NewPostgresRepository(db), storeService, paymentService, zl)
		sale.NewHandler(saleService, zl).RegisterRoutes(r)

		// ── Dashboard ───────────────────────────────────────
		dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(db), time.Now)
		dashboard.NewHandler(dashboardService, zl).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("lojas API server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown", zap.Error(err))
	}
}
