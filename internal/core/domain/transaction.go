package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a recorded business event.
type TransactionType string

const (
	TxnInvoiceUpload   TransactionType = "INVOICE_UPLOAD"
	TxnInvoiceFunding  TransactionType = "INVOICE_FUNDING"
	TxnPayment         TransactionType = "PAYMENT"
	TxnFeeCharge       TransactionType = "FEE_CHARGE"
	TxnTreasuryFunding TransactionType = "TREASURY_FUNDING"
	TxnLimitAdjustment TransactionType = "LIMIT_ADJUSTMENT"
)

// Transaction is the immutable record of a financial event. It produces at most one
// journal entry.
type Transaction struct {
	TransactionID          string           `json:"transactionID"`
	Type                   TransactionType  `json:"type"`
	FacilityType           FacilityType     `json:"facilityType"`
	OrganizationID         string           `json:"organizationID"`
	InvoiceID              *string          `json:"invoiceID,omitempty"`
	Description            string           `json:"description"`
	Amount                 decimal.Decimal  `json:"amount"`
	InterestOrDiscountRate *decimal.Decimal `json:"interestOrDiscountRate,omitempty"`
	TransactionDate        time.Time        `json:"transactionDate"`
	MaturityDate           time.Time        `json:"maturityDate"`
	IsPaid                 bool             `json:"isPaid"`
	PaymentDate            *time.Time       `json:"paymentDate,omitempty"`
	AuditFields
}

// EventHeader carries the fields every transaction event shares.
type EventHeader struct {
	OrganizationID  string
	InvoiceID       *string
	FacilityType    FacilityType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	MaturityDate    time.Time
	IsPaid          bool
}

// TransactionEvent is the closed set of business events the recorder accepts.
// Each variant carries what its journal entry needs and nothing else.
type TransactionEvent interface {
	Type() TransactionType
	Header() EventHeader
	transactionEvent()
}

// InvoiceUploadEvent records an uploaded invoice. It produces no journal entry.
type InvoiceUploadEvent struct {
	EventHeader
	InvoiceNumber string
}

// InvoiceFundingEvent records the bank advancing the discounted amount to the seller.
// The header amount is the funded advance; InvoiceAmount is the face value moved
// off the seller's receivables.
type InvoiceFundingEvent struct {
	EventHeader
	InvoiceNumber string
	SellerID      *string
	InvoiceAmount decimal.Decimal
	Discount      decimal.Decimal
	Rate          decimal.Decimal
}

// PaymentEvent records the buyer settling all or part of a funded invoice.
type PaymentEvent struct {
	EventHeader
	InvoiceNumber string
	BuyerID       *string
}

// FeeChargeEvent records a bank fee charged to a customer.
type FeeChargeEvent struct {
	EventHeader
}

// TreasuryFundingEvent records treasury cash placed with the bank.
type TreasuryFundingEvent struct {
	EventHeader
}

// LimitAdjustmentEvent records a change of credit limits. It produces no journal entry.
type LimitAdjustmentEvent struct {
	EventHeader
}

func (e InvoiceUploadEvent) Type() TransactionType   { return TxnInvoiceUpload }
func (e InvoiceFundingEvent) Type() TransactionType  { return TxnInvoiceFunding }
func (e PaymentEvent) Type() TransactionType         { return TxnPayment }
func (e FeeChargeEvent) Type() TransactionType       { return TxnFeeCharge }
func (e TreasuryFundingEvent) Type() TransactionType { return TxnTreasuryFunding }
func (e LimitAdjustmentEvent) Type() TransactionType { return TxnLimitAdjustment }

func (e InvoiceUploadEvent) Header() EventHeader   { return e.EventHeader }
func (e InvoiceFundingEvent) Header() EventHeader  { return e.EventHeader }
func (e PaymentEvent) Header() EventHeader         { return e.EventHeader }
func (e FeeChargeEvent) Header() EventHeader       { return e.EventHeader }
func (e TreasuryFundingEvent) Header() EventHeader { return e.EventHeader }
func (e LimitAdjustmentEvent) Header() EventHeader { return e.EventHeader }

func (InvoiceUploadEvent) transactionEvent()   {}
func (InvoiceFundingEvent) transactionEvent()  {}
func (PaymentEvent) transactionEvent()         {}
func (FeeChargeEvent) transactionEvent()       {}
func (TreasuryFundingEvent) transactionEvent() {}
func (LimitAdjustmentEvent) transactionEvent() {}

// NewTransaction builds the persisted record for an event.
func NewTransaction(id string, event TransactionEvent, by string, now time.Time) Transaction {
	h := event.Header()
	txn := Transaction{
		TransactionID:   id,
		Type:            event.Type(),
		FacilityType:    h.FacilityType,
		OrganizationID:  h.OrganizationID,
		InvoiceID:       h.InvoiceID,
		Description:     h.Description,
		Amount:          h.Amount,
		TransactionDate: h.TransactionDate,
		MaturityDate:    h.MaturityDate,
		IsPaid:          h.IsPaid,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     by,
			LastUpdatedAt: now,
			LastUpdatedBy: by,
		},
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = now
	}
	if txn.MaturityDate.IsZero() {
		txn.MaturityDate = txn.TransactionDate
	}
	if f, ok := event.(InvoiceFundingEvent); ok {
		rate := f.Rate
		txn.InterestOrDiscountRate = &rate
	}
	if txn.IsPaid {
		paidAt := txn.TransactionDate
		txn.PaymentDate = &paidAt
	}
	return txn
}
