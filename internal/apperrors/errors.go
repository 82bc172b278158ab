package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientFunds indicates a buy whose cost exceeds the user's cash balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientShares indicates a sell of more shares than the user net-owns.
var ErrInsufficientShares = errors.New("insufficient shares")

// ErrUnknownSymbol indicates the quote provider has no listing for the symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrQuoteUnavailable indicates the quote provider could not be reached or answered abnormally.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// ErrInvalidAmount indicates a malformed monetary amount (non-positive, or more
// than two fractional digits).
var ErrInvalidAmount = errors.New("invalid amount")

// AppError wraps lower-level failures (typically storage) with an HTTP-ish
// status code and a message that is safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
