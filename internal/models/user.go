package models

import (
	"time"
)

// User represents a registered user account
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CurrentUser is the identity derived from a validated credential.
// It lives for the duration of a request (plus a short cache window)
// and is the only author identity the mutation services accept.
type CurrentUser struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the signin payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued credential and the user it belongs to
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
