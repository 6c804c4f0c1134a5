package service

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSpecials is the punctuation set a password must draw at least
// one character from.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// validateUserFields checks the shared user-field rules in fixed order:
// name, address, password, email. The first failing rule is returned.
func validateUserFields(name, address, password, email string) error {
	if len(name) < 15 || len(name) > 60 {
		return NewValidationError("Name must be between 15 and 60 characters")
	}
	if address == "" || len(address) > 400 {
		return NewValidationError("Address must not exceed 400 characters")
	}
	if !validPassword(password) {
		return NewValidationError("Password must be 8-16 characters with at least one uppercase letter and one special character")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("Invalid email format")
	}
	return nil
}

// validatePassword checks the complexity rule on its own, for password
// changes.
func validatePassword(password string) error {
	if !validPassword(password) {
		return NewValidationError("Password must be 8-16 characters with at least one uppercase letter and one special character")
	}
	return nil
}

func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return false
	}
	return strings.ContainsAny(password, passwordSpecials)
}
