package main

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/storefront-api/internal/config"
	"github.com/georgemunganga/storefront-api/internal/database"
	"github.com/georgemunganga/storefront-api/internal/logger"
	"github.com/georgemunganga/storefront-api/internal/modules/counter"
	"github.com/georgemunganga/storefront-api/internal/modules/product"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	boot := logger.Default("info", "json")
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		boot.Fatal().Err(err).Msg("load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.Default(cfg.LogLevel, cfg.LogFormat)

	repo, closeRepo, err := newRepository(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend).Msg("open data backend")
	}
	defer closeRepo()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── Products ────────────────────────────────────────────
	productService := product.NewService(repo, cfg.PageSizes, log)
	product.NewHandler(productService, log).RegisterRoutes(router)

	// ── Counter ─────────────────────────────────────────────
	counter.NewHandler(counter.NewStore(), log).RegisterRoutes(router)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	if err := productService.Refresh(initCtx); err != nil {
		log.Warn().Err(err).Msg("initial product fetch failed; list stays empty until refreshed")
	}
	cancelInit()

	// ── Start Server ────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("backend", cfg.Backend).Msg("storefront API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	log.Info().Str("signal", s.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}

func newRepository(cfg config.Config, log zerolog.Logger) (product.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("table", cfg.ProductsTable).Msg("connected to postgres")
		return product.NewPostgresRepository(db, cfg.ProductsTable), func() { db.Close() }, nil
	case config.BackendMemory:
		log.Warn().Msg("using in-memory products; data is lost on exit")
		return product.NewMemoryRepository(), func() {}, nil
	default:
		client, err := database.ConnectSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("url", cfg.SupabaseURL).Str("role", cfg.SupabaseRole).Msg("supabase client ready")
		return product.NewSupabaseRepository(client, cfg.ProductsTable), func() {}, nil
	}
}
