package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller does not own the requested resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateNotFound indicates that no active exchange rate exists for a required currency pair.
// It is a validation failure: the user can fix it by adding a rate.
var ErrRateNotFound = fmt.Errorf("%w: exchange rate not found", ErrValidation)

// ErrMissingExchangeRate is returned when a conversion between two different currencies
// was attempted without a pre-fetched exchange rate.
var ErrMissingExchangeRate = errors.New("exchange rate required for cross-currency conversion")

// ErrStaleExchangeRate is returned when a pre-fetched exchange rate is not usable
// for the transaction it was supplied for.
var ErrStaleExchangeRate = errors.New("exchange rate is not valid for this conversion")

// ErrInvalidPeriod is returned for a budget period outside the known enumeration.
var ErrInvalidPeriod = errors.New("invalid budget period")

// AppError carries an HTTP status code alongside the wrapped cause.
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

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates a 400 AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewDuplicateError creates a 409 AppError wrapping ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}
