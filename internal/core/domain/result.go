package domain

import (
	"errors"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a lifecycle or limit operation. Failures carry the
// classified error in Err; the message is always human readable.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	EntityID string `json:"entityID,omitempty"`
	Err      error  `json:"-"`
}

// Succeeded builds a successful result.
func Succeeded(message, entityID string) Result {
	return Result{Success: true, Message: message, EntityID: entityID}
}

// Failed builds a failed result from err.
func Failed(err error) Result {
	return Result{Success: false, Message: err.Error(), Err: err}
}

// Available extracts the available amount from a capacity failure.
func (r Result) Available() (decimal.Decimal, bool) {
	var capErr *apperrors.CapacityError
	if errors.As(r.Err, &capErr) {
		return capErr.Available, true
	}
	return decimal.Zero, false
}
