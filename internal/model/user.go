package model

import "time"

// User represents a user in the database.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is returned after a successful login or registration.
// The session token itself travels in the cookie, never in the body.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// SessionResponse describes the current session; User is nil when signed out.
type SessionResponse struct {
	User *UserResponse `json:"user"`
}
