package service

import "errors"

var (
	ErrShopClosed         = errors.New("shop is closed")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries the offending field so clients can highlight it.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
