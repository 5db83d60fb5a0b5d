package handler

import (
	"errors"
	"net/http"

	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// GoalHandler handles HTTP requests for nutrient goals.
type GoalHandler struct {
	service *service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(svc *service.GoalService) *GoalHandler {
	return &GoalHandler{service: svc}
}

// HandleGet handles GET /api/goals?type= requests.
func (h *GoalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	goal, err := h.service.Get(r.Context(), userID, r.URL.Query().Get("type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// HandlePut handles PUT /api/goals requests.
func (h *GoalHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	var req model.GoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.service.Set(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrGoalTypeRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse("Type parameter is required"))
	case errors.Is(err, service.ErrGoalFieldsRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse("Type and value are required"))
	case errors.Is(err, service.ErrInvalidGoalType):
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid goal type"))
	case errors.Is(err, service.ErrInvalidGoalValue):
		writeJSON(w, http.StatusBadRequest, errorResponse("Goal value must be a non-negative number"))
	default:
		internalError(w, r, "handling goal", err)
	}
}
