package auth

import "time"

// User represents a registered account. The password hash never leaves the
// service; the json tag on PasswordHash exists only to make the omission
// explicit.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the request payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the request payload for authenticating
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	Token string `json:"token"`
}

// UserInfo is the identity echoed back from protected endpoints
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
