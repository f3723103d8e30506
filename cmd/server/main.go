package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"wordtrail-backend/internal/config"
	"wordtrail-backend/internal/database"
	"wordtrail-backend/internal/handlers"
	"wordtrail-backend/internal/middleware"
	"wordtrail-backend/internal/repository"
	"wordtrail-backend/internal/router"
	"wordtrail-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	setupLogger(cfg.Env)
	slog.Info("starting WordTrail backend", "env", cfg.Env)

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		slog.Error("PostgreSQL connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("PostgreSQL connected")

	// ──── Step 3: Initialize Redis Client ────
	rdb, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()
	slog.Info("Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	// ──── Initialize Repositories ────
	checkinRepo := repository.NewCheckinRepo(pool)
	studyLogRepo := repository.NewStudyLogRepo(pool)
	reviewRepo := repository.NewReviewRepo(pool)
	wrongWordRepo := repository.NewWrongWordRepo(pool)
	favoriteRepo := repository.NewFavoriteRepo(pool)
	wordRepo := repository.NewWordRepo(pool)

	// ──── Initialize Services ────
	statisticsService := services.NewStatisticsService(studyLogRepo, wordRepo)
	reviewService := services.NewReviewService(reviewRepo, services.DefaultReviewPolicy)
	dashboardService := services.NewDashboardService(checkinRepo, studyLogRepo, reviewRepo)

	// ──── Initialize Handlers ────
	checkinHandler := handlers.NewCheckinHandler(checkinRepo)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, reviewService)
	studyLogHandler := handlers.NewStudyLogHandler(studyLogRepo)
	testHandler := handlers.NewTestHandler(studyLogRepo)
	wrongWordHandler := handlers.NewWrongWordHandler(wrongWordRepo, wordRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, wordRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// ──── Step 5: Start HTTP Server ────
	rateLimiter := middleware.NewRateLimiter(rdb, cfg.RateLimitPerMin, time.Minute)

	r := router.New(
		checkinHandler,
		statisticsHandler,
		reviewHandler,
		studyLogHandler,
		testHandler,
		wrongWordHandler,
		favoriteHandler,
		dashboardHandler,
		rateLimiter,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		slog.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("WordTrail backend ready", "addr", fmt.Sprintf("http://localhost:%s/api", cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}
