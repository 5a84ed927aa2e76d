package model

import "time"

// --- Domain Object ---

// User is the account domain model. ID is the internal database ID; the
// public ID is generated at the API boundary.
type User struct {
	ID           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	PasswordHash string
	Nickname     string
	IsAdmin      bool
	LastLoginAt  *time.Time
}

// --- Data Transfer Objects ---

// RegisterRequest is the sign-up request body.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname"`
}

// LoginRequest is the sign-in request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Nickname    string     `json:"nickname,omitempty"`
	IsAdmin     bool       `json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// SessionResponse is returned by login, register and refresh.
type SessionResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresAt    int64         `json:"expires_at"`
	User         *UserResponse `json:"user,omitempty"`
}
