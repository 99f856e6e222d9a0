// Package validation holds the signup form checks. Every function is pure and
// reports the first rule that failed as an *Error carrying the user-facing message.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)

const (
	minPasswordLength = 8
	phoneLength       = 10
	passwordSpecials  = "!@#$%^&*()"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// Error is a failed check. Message is shown to the user as is.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	errEmail    = &Error{Field: FieldEmail, Message: "Invalid Email: Enter a valid email address."}
	errPassword = &Error{Field: FieldPassword, Message: "Invalid Password: Must include uppercase, lowercase, number, and special character."}
	errPhone    = &Error{Field: FieldPhone, Message: "Invalid Phone Number: Must be exactly 10 digits."}
)

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errEmail
	}
	return nil
}

// ValidatePassword requires at least eight characters with an uppercase letter,
// a lowercase letter, a digit and one of !@#$%^&*(). It never says which rule failed.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return errPassword
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	if !(upper && lower && digit && special) {
		return errPassword
	}
	return nil
}

func ValidatePhone(phone string) error {
	if utf8.RuneCountInString(phone) != phoneLength {
		return errPhone
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return errPhone
		}
	}
	return nil
}

// ValidateSignup checks email, password and phone in that order.
func ValidateSignup(email, password, phone string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidatePhone(phone)
}
