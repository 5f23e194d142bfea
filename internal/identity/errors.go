package identity

import (
	"errors"
	"strings"
)

// Registration outcomes surfaced to callers.
var (
	ErrValidation         = errors.New("validation error")
	ErrAccountExists      = errors.New("account already exists, please sign in instead")
	ErrPersistence        = errors.New("account storage is unavailable, please try again")
	ErrRegistrationFailed = errors.New("registration failed, please try again")
)

// Repository errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already taken")
)

// ValidationError carries one message per rejected credential field.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, ", ")
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
