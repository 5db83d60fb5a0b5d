package handler

import (
	"errors"
	"net/http"

	"github.com/mealtrack/mealtrack-go/internal/middleware"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
	cookie  middleware.SessionCookie
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrPasswordRequired),
			errors.Is(err, service.ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse("Email already registered"))
		default:
			internalError(w, r, "registering user", err)
		}
		return
	}

	h.cookie.Set(w, sess.Token)
	writeJSON(w, http.StatusCreated, model.LoginResponse{Success: true, User: sess.User})
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialsRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse("Email and password are required"))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid credentials"))
		default:
			internalError(w, r, "logging in", err)
		}
		return
	}

	h.cookie.Set(w, sess.Token)
	writeJSON(w, http.StatusOK, model.LoginResponse{Success: true, User: sess.User})
}

// HandleLogout handles DELETE /api/auth/login and POST /api/auth/logout.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleSession handles GET /api/auth/session requests. It never fails
// with 401; a signed-out caller gets {"user": null}.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, model.SessionResponse{})
		return
	}

	user, err := h.service.Authenticate(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			h.cookie.Clear(w)
			writeJSON(w, http.StatusOK, model.SessionResponse{})
			return
		}
		internalError(w, r, "resolving session", err)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{User: &user})
}
