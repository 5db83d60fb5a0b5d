package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/service"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "user-session"

type contextKey string

const userKey contextKey = "user"

// SessionAuthenticator resolves a session token to its user.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (model.UserResponse, error)
}

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	Secure bool
	MaxAge time.Duration
}

// Set stores token in the session cookie.
func (c SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		Expires:  time.Now().Add(c.MaxAge),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear tells the client to drop the session cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken returns the session token sent with r, if any.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireSession returns middleware that resolves the session cookie to a
// user on every request and rejects the request when that fails. A cookie
// that no longer resolves is cleared.
func RequireSession(auth SessionAuthenticator, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					cookie.Clear(w)
					writeJSONError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				slog.Error("resolving session", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user resolved by RequireSession.
func UserFromContext(ctx context.Context) (model.UserResponse, bool) {
	user, ok := ctx.Value(userKey).(model.UserResponse)
	return user, ok
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := UserFromContext(ctx)
	return user.ID, ok
}

// WithUser returns a copy of ctx carrying user, as RequireSession does.
func WithUser(ctx context.Context, user model.UserResponse) context.Context {
	return context.WithValue(ctx, userKey, user)
}
