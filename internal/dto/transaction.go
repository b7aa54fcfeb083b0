package dto

import (
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordFeeRequest charges a bank fee to a customer.
type RecordFeeRequest struct {
	OrganizationID string              `json:"organizationID" binding:"required"`
	FacilityType   domain.FacilityType `json:"facilityType" binding:"omitempty,oneof=INVOICE_FINANCING TERM_LOAN OVERDRAFT GUARANTEE"`
	InvoiceID      string              `json:"invoiceID"`
	Amount         decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Description    string              `json:"description"`
	ChargeDate     *time.Time          `json:"chargeDate"`
}

// RecordTreasuryFundingRequest places treasury cash with the bank.
type RecordTreasuryFundingRequest struct {
	OrganizationID string          `json:"organizationID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description    string          `json:"description"`
	MaturityDate   *time.Time      `json:"maturityDate"`
}
