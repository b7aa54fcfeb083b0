package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCapacity indicates that a credit facility or master limit cannot absorb an amount.
var ErrCapacity = errors.New("insufficient credit capacity")

// ErrPosting indicates that a journal entry could not be built or posted.
var ErrPosting = errors.New("journal posting failed")

// ErrForbidden indicates that the acting user is not a party allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the aggregate changed underneath the caller.
var ErrConflict = errors.New("conflicting update")

// AppError carries an HTTP-ish code alongside a wrapped infrastructure error.
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

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CapacityError reports how much room was left when a limit check failed.
type CapacityError struct {
	Reason    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s (requested: %s, available: %s)", e.Reason, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// NewCapacityError creates a CapacityError.
func NewCapacityError(reason string, requested, available decimal.Decimal) *CapacityError {
	return &CapacityError{Reason: reason, Requested: requested, Available: available}
}
