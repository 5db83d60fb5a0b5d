package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/crypto"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrEmailTaken          = errors.New("email already taken")
	ErrUnauthenticated     = errors.New("authentication required")
)

// Session is a signed-in user together with the token for their cookie.
type Session struct {
	Token string
	User  model.UserResponse
}

// AuthService handles authentication business logic.
type AuthService struct {
	users         UserStore
	sessionSecret string
	sessionMaxAge time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, maxAge time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		sessionSecret: secret,
		sessionMaxAge: maxAge,
	}
}

// SessionMaxAge is how long an issued session stays valid.
func (s *AuthService) SessionMaxAge() time.Duration {
	return s.sessionMaxAge
}

// Register creates a new user account and starts a session for it.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (Session, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return Session{}, ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return Session{}, ErrInvalidEmail
	}
	if req.Password == "" {
		return Session{}, ErrPasswordRequired
	}
	if len(req.Password) < minPasswordLength {
		return Session{}, ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return Session{}, err
	}

	user := &model.User{
		Email:    email,
		AuthHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, err
	}

	return s.startSession(user)
}

// Login authenticates a user by email and password and starts a session.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (Session, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return Session{}, ErrCredentialsRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return Session{}, err
	}
	if !match {
		return Session{}, ErrInvalidCredentials
	}

	return s.startSession(user)
}

// Authenticate resolves a session token to the user it was issued for.
// It returns ErrUnauthenticated when the token is invalid or expired, or
// when the user no longer exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (model.UserResponse, error) {
	if token == "" {
		return model.UserResponse{}, ErrUnauthenticated
	}

	claims, err := crypto.ParseSession(token, s.sessionSecret)
	if err != nil {
		return model.UserResponse{}, ErrUnauthenticated
	}

	return s.GetUser(ctx, claims.UserID)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUnauthenticated
		}
		return model.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *AuthService) startSession(user *model.User) (Session, error) {
	token, err := crypto.IssueSession(user.ID, s.sessionSecret, s.sessionMaxAge)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
