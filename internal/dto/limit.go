package dto

import (
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FacilityRequest describes a facility to grant.
type FacilityRequest struct {
	Type            domain.FacilityType `json:"type" binding:"required,oneof=INVOICE_FINANCING TERM_LOAN OVERDRAFT GUARANTEE"`
	TotalLimit      decimal.Decimal     `json:"totalLimit" binding:"required,gt=0"`
	ReviewEndDate   time.Time           `json:"reviewEndDate" binding:"required"`
	GracePeriodDays int                 `json:"gracePeriodDays" binding:"gte=0"`
}

// CreateCreditLimitRequest grants a master limit and its initial facilities.
type CreateCreditLimitRequest struct {
	OrganizationID string            `json:"organizationID" binding:"required"`
	MasterLimit    decimal.Decimal   `json:"masterLimit" binding:"required,gt=0"`
	NextReviewDate time.Time         `json:"nextReviewDate"`
	Facilities     []FacilityRequest `json:"facilities" binding:"dive"`
}

// FacilityAmountRequest targets an organization's own facility of a type.
type FacilityAmountRequest struct {
	OrganizationID string              `json:"organizationID" binding:"required"`
	FacilityType   domain.FacilityType `json:"facilityType" binding:"required,oneof=INVOICE_FINANCING TERM_LOAN OVERDRAFT GUARANTEE"`
	Amount         decimal.Decimal     `json:"amount" binding:"required,gt=0"`
}

// AllocateBuyerLimitRequest shares part of a seller facility with a buyer.
type AllocateBuyerLimitRequest struct {
	SellerID     string              `json:"sellerID" binding:"required"`
	BuyerID      string              `json:"buyerID" binding:"required"`
	FacilityType domain.FacilityType `json:"facilityType" binding:"required,oneof=INVOICE_FINANCING TERM_LOAN OVERDRAFT GUARANTEE"`
	Amount       decimal.Decimal     `json:"amount" binding:"required,gt=0"`
}
