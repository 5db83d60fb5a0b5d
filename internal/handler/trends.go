package handler

import (
	"net/http"
	"strconv"

	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// TrendHandler handles HTTP requests for nutrition summaries.
type TrendHandler struct {
	service *service.TrendService
}

// NewTrendHandler creates a new TrendHandler.
func NewTrendHandler(svc *service.TrendService) *TrendHandler {
	return &TrendHandler{service: svc}
}

// HandleToday handles GET /api/today-summary requests.
func (h *TrendHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	summary, err := h.service.Today(r.Context(), userID)
	if err != nil {
		internalError(w, r, "summarising today", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleWeekly handles GET /api/weekly-trends?smooth= requests.
func (h *TrendHandler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	smoothing := h.service.Smoothing()
	if raw := r.URL.Query().Get("smooth"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("smooth must be true or false"))
			return
		}
		smoothing = v
	}

	trend, err := h.service.Weekly(r.Context(), userID, smoothing)
	if err != nil {
		internalError(w, r, "computing weekly trend", err)
		return
	}

	writeJSON(w, http.StatusOK, trend)
}

// HandleLastDays handles GET /api/last-10-days requests.
func (h *TrendHandler) HandleLastDays(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	days, err := h.service.LastDays(r.Context(), userID)
	if err != nil {
		internalError(w, r, "computing recent days", err)
		return
	}

	writeJSON(w, http.StatusOK, days)
}
