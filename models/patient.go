package models

import "github.com/golang-jwt/jwt/v5"

type SignupForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PatientClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// PatientRecord is one "name: history" line of the admin history box.
type PatientRecord struct {
	Name    string `json:"name"`
	History string `json:"history"`
}

type PatientHistoryForm struct {
	Text string `json:"text"`
}

// HistoryReplacement reports what a history update kept and what it dropped.
type HistoryReplacement struct {
	Records []PatientRecord `json:"records"`
	Dropped []string        `json:"dropped_lines"`
}
