package models

import "github.com/golang-jwt/jwt/v5"

// AdminLoginForm is the admin login box on the main screen.
type AdminLoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Credentials is the single admin pair the panel is guarded by.
// PasswordHash is a bcrypt hash, never the plain password.
type Credentials struct {
	Username     string
	PasswordHash string
}
