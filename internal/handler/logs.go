package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// LogHandler handles HTTP requests for stored log entries.
type LogHandler struct {
	service *service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(svc *service.LogService) *LogHandler {
	return &LogHandler{service: svc}
}

// HandleGet handles GET /api/logs/{slugID} requests.
func (h *LogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	entry, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "slugID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLogID):
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid log entry ID"))
		case errors.Is(err, service.ErrLogEntryNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Log entry not found"))
		case errors.Is(err, service.ErrForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse("Access denied"))
		default:
			internalError(w, r, "fetching log entry", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// HandleRecent handles GET /api/logs/recent?limit=&offset= requests.
func (h *LogHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), service.DefaultPageSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("limit must be an integer"))
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("offset must be an integer"))
		return
	}

	page, err := h.service.Recent(r.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPagination) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, "listing log entries", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleRecentMeals handles GET /api/recent-meals requests.
func (h *LogHandler) HandleRecentMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	meals, err := h.service.RecentMeals(r.Context(), userID)
	if err != nil {
		internalError(w, r, "listing recent meals", err)
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
