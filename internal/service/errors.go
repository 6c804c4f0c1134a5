package service

import "errors"

// Sentinel errors carry the client-facing message; handlers map them to
// HTTP status codes.
var (
	ErrEmailAlreadyExists       = errors.New("Email already exists")
	ErrInvalidCredentials       = errors.New("Invalid credentials")
	ErrCurrentPasswordIncorrect = errors.New("Current password is incorrect")
	ErrUserNotFound             = errors.New("User not found")
	ErrStoreNotFound            = errors.New("Store not found")
	ErrRatingsUsersOnly         = errors.New("Only normal users can submit ratings")
)

// ValidationError marks malformed or out-of-range input, rejected before
// any persistence call.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
