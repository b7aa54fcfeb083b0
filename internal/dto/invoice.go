package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CounterpartyRequest describes a non-customer party named on an uploaded invoice.
type CounterpartyRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxID         string `json:"taxID" binding:"required"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
}

// UploadInvoiceRequest is used by both seller and buyer uploads. The uploading side
// must be an organization; the other side may be an organization or a counterparty.
type UploadInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	SellerID      string               `json:"sellerID"`
	BuyerID       string               `json:"buyerID"`
	Counterparty  *CounterpartyRequest `json:"counterparty"`
	Amount        decimal.Decimal      `json:"amount" binding:"required,gt=0"`
	Currency      string               `json:"currency" binding:"omitempty,len=3"`
	IssueDate     time.Time            `json:"issueDate" binding:"required"`
	DueDate       time.Time            `json:"dueDate" binding:"required,gtfield=IssueDate"`
	Description   string               `json:"description"`
}

// ReasonRequest carries the reason of a rejection.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// SellerAcceptanceRequest carries the discount rate offered to the seller.
type SellerAcceptanceRequest struct {
	DiscountRate decimal.Decimal `json:"discountRate" binding:"gte=0,lt=100"`
}

// FundInvoiceRequest carries the funding terms. When FinalDiscountRate is zero the
// seller's accepted offer rate applies, then BaseRate + MarginRate.
type FundInvoiceRequest struct {
	BaseRate          decimal.Decimal `json:"baseRate" binding:"gte=0"`
	MarginRate        decimal.Decimal `json:"marginRate" binding:"gte=0"`
	FinalDiscountRate decimal.Decimal `json:"finalDiscountRate" binding:"gte=0,lt=100"`
	FundingDate       *time.Time      `json:"fundingDate"`
}

// PaymentRequest carries a buyer payment against a funded invoice.
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	PaymentDate *time.Time      `json:"paymentDate"`
}

// CustomerRelationshipResponse reports which invoice parties are bank customers.
type CustomerRelationshipResponse struct {
	InvoiceID    string `json:"invoiceID"`
	Relationship string `json:"relationship"`
}
