// Package main is the entry point for the duty board HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/mattn/go-sqlite3"

	"dutyboard/internal/api"
	"dutyboard/internal/config"
	internaldb "dutyboard/internal/db"
	"dutyboard/internal/db/repository"
	"dutyboard/internal/middleware"
	"dutyboard/internal/service"
	"dutyboard/internal/ui"
)

func main() {
	ctx := context.Background()

	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("could not load .env", "error", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// writeDB: single-connection pool for serialized writes (WAL +
	// txlock=immediate). readDB: concurrent read pool.
	writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, 4)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer writeDB.Close()
	defer readDB.Close()

	if err := internaldb.RunMigrations(writeDB); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Repositories — write pool for mutators, read pool for the aggregate
	// queries.
	userRepo := repository.NewUserRepo(writeDB)
	taskRepo := repository.NewTaskRepo(writeDB)
	dutyRepo := repository.NewDutyRepo(writeDB)
	statsRepo := repository.NewStatsRepo(readDB)

	registrySvc := service.NewRegistryService(userRepo, taskRepo, dutyRepo)
	dutyLogSvc := service.NewDutyLogService(userRepo, taskRepo, dutyRepo)
	statsSvc := service.NewStatsService(statsRepo)

	// One-time startup seeding from configuration; idempotent.
	created, err := registrySvc.SeedDefaults(ctx, cfg.Seed)
	if err != nil {
		logger.Error("seed registry", "error", err)
		os.Exit(1)
	}
	if created > 0 {
		logger.Info("registry seeded", "created", created)
	}

	apiHandler := api.NewHandler(registrySvc, dutyLogSvc, statsSvc, logger.With("component", "api"))
	uiHandler := ui.NewHandler(registrySvc, dutyLogSvc, statsSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
		r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
		api.MountRoutes(r, apiHandler)
	})

	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, uiHandler)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})

	logger.Info("duty board listening", "addr", cfg.ListenAddr, "db", cfg.DBPath)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
