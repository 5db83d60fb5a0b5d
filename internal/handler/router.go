package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mealtrack/mealtrack-go/internal/metrics"
	"github.com/mealtrack/mealtrack-go/internal/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth   *AuthHandler
	Goals  *GoalHandler
	Meals  *MealHandler
	Logs   *LogHandler
	Trends *TrendHandler

	Sessions middleware.SessionAuthenticator
	Cookie   middleware.SessionCookie
}

// NewRouter wires the API routes and middleware stack.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/auth/login", h.Auth.HandleLogin)
			r.Post("/auth/register", h.Auth.HandleRegister)
		})
		r.Delete("/auth/login", h.Auth.HandleLogout)
		r.Post("/auth/logout", h.Auth.HandleLogout)
		r.Get("/auth/session", h.Auth.HandleSession)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(h.Sessions, h.Cookie))

			r.With(middleware.RateLimitByUser(0.5, 5)).Post("/analyze-meal", h.Meals.HandleAnalyze)

			r.Get("/goals", h.Goals.HandleGet)
			r.Put("/goals", h.Goals.HandlePut)

			r.Get("/logs/recent", h.Logs.HandleRecent)
			r.Get("/logs/{slugID}", h.Logs.HandleGet)
			r.Get("/recent-meals", h.Logs.HandleRecentMeals)

			r.Get("/today-summary", h.Trends.HandleToday)
			r.Get("/weekly-trends", h.Trends.HandleWeekly)
			r.Get("/last-10-days", h.Trends.HandleLastDays)
		})
	})

	return r
}
