package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionIssuer   = "mealtrack"
	sessionAudience = "mealtrack-session"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionClaims is the payload of the token stored in the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// IssueSession signs a session token for userID that expires after maxAge.
func IssueSession(userID int64, secret string, maxAge time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{sessionAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession validates a session token and returns its claims.
func ParseSession(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithAudience(sessionAudience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidSession
	}
	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
