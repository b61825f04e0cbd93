package model

import "time"

// User is an identity record. It carries the password hash but no
// authentication behaviour; see service.AuthService.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest holds the submitted registration form.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// LoginRequest holds the submitted login form.
type LoginRequest struct {
	Username string
	Password string
	Remember bool
	Next     string
}
