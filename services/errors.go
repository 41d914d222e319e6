package services

import "errors"

var (
	// ErrNotFound reports an unknown id or planner entry.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser reports a registration with an already-used email.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password logins so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken reports an absent, malformed or expired session token.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports a missing or invalid required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
