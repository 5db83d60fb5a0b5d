package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// MealHandler handles HTTP requests for meal analysis.
type MealHandler struct {
	service *service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(svc *service.MealService) *MealHandler {
	return &MealHandler{service: svc}
}

// HandleAnalyze handles POST /api/analyze-meal requests.
func (h *MealHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	var req model.AnalyzeMealRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.service.Analyze(r.Context(), userID, req.MealText)
	if err != nil {
		writeAnalyzeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func writeAnalyzeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		msg    string
	)

	switch {
	case errors.Is(err, service.ErrMealTextRequired):
		status, msg = http.StatusBadRequest, "Meal text is required"
	case errors.Is(err, service.ErrMealTextTooLong):
		status, msg = http.StatusBadRequest, fmt.Sprintf("Meal text must be at most %d characters", service.MaxMealTextLength)
	case errors.Is(err, service.ErrNoFoodDetected):
		status, msg = http.StatusUnprocessableEntity, "No food items found in the description"
	case errors.Is(err, nutrition.ErrNotConfigured):
		status, msg = http.StatusInternalServerError, "API key not configured"
	case errors.Is(err, nutrition.ErrInvalidAPIKey):
		status, msg = http.StatusUnauthorized, "Invalid API key"
	case errors.Is(err, nutrition.ErrQuotaExceeded):
		status, msg = http.StatusTooManyRequests, "API quota exceeded. Please try again later."
	case errors.Is(err, nutrition.ErrUnparseable):
		status, msg = http.StatusInternalServerError, "Failed to parse nutrition analysis"
	case errors.Is(err, nutrition.ErrInvalidFormat):
		status, msg = http.StatusInternalServerError, "Invalid nutrition analysis format"
	case errors.Is(err, nutrition.ErrUpstream):
		status, msg = http.StatusInternalServerError, "Failed to analyze meal. Please try again."
	default:
		internalError(w, r, "analyzing meal", err)
		return
	}

	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized {
		slog.Error("meal analysis failed", "error", err, "status", status)
	}
	writeJSON(w, status, errorResponse(msg))
}
