package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mealtrack/mealtrack-go/internal/config"
	"github.com/mealtrack/mealtrack-go/internal/handler"
	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
	"github.com/mealtrack/mealtrack-go/internal/repository"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.MigrateOnStart {
		if err := repository.MigrateUp(cfg.DatabaseDSN); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	logRepo := repository.NewLogEntryRepository(db)

	estimator := nutrition.NewGeminiClient(nutrition.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
	})

	authService := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionMaxAge)
	cookie := middleware.SessionCookie{Secure: cfg.Production(), MaxAge: cfg.SessionMaxAge}

	router := handler.NewRouter(handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, cookie),
		Goals:    handler.NewGoalHandler(service.NewGoalService(goalRepo)),
		Meals:    handler.NewMealHandler(service.NewMealService(logRepo, estimator)),
		Logs:     handler.NewLogHandler(service.NewLogService(logRepo)),
		Trends:   handler.NewTrendHandler(service.NewTrendService(logRepo, cfg.WeeklySmoothing)),
		Sessions: authService,
		Cookie:   cookie,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Meal analysis waits on the model, so writes may take up to its timeout.
		WriteTimeout: cfg.GeminiTimeout + 15*time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
