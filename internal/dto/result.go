package dto

import (
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResultResponse is the wire form of a domain.Result.
type ResultResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	EntityID  string           `json:"entityID,omitempty"`
	Available *decimal.Decimal `json:"available,omitempty"`
}

// ToResultResponse converts a domain.Result to its response DTO.
func ToResultResponse(r domain.Result) ResultResponse {
	resp := ResultResponse{Success: r.Success, Message: r.Message, EntityID: r.EntityID}
	if available, ok := r.Available(); ok {
		resp.Available = &available
	}
	return resp
}
