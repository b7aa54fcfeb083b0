package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func marshalApproval(r *domain.ApprovalRequest) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func unmarshalApproval(raw []byte) (*domain.ApprovalRequest, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var r domain.ApprovalRequest
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) (models.Invoice, error) {
	buyerApproval, err := marshalApproval(d.BuyerApproval)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("encoding buyer approval: %w", err)
	}
	sellerAcceptance, err := marshalApproval(d.SellerAcceptance)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("encoding seller acceptance: %w", err)
	}
	return models.Invoice{
		InvoiceID:              d.InvoiceID,
		InvoiceNumber:          d.InvoiceNumber,
		SellerID:               d.SellerID,
		BuyerID:                d.BuyerID,
		CounterpartyID:         d.CounterpartyID,
		Amount:                 d.Amount,
		Currency:               d.Currency,
		IssueDate:              d.IssueDate,
		DueDate:                d.DueDate,
		Description:            d.Description,
		Status:                 string(d.Status),
		FundedAmount:           toNullDecimal(d.FundedAmount),
		DiscountRate:           toNullDecimal(d.DiscountRate),
		FundingDate:            d.FundingDate,
		FinancedOrganizationID: d.FinancedOrganizationID,
		PaidAmount:             d.PaidAmount,
		PaymentDate:            d.PaymentDate,
		BuyerApproval:          buyerApproval,
		SellerAcceptance:       sellerAcceptance,
		RejectionReason:        d.RejectionReason,
		UploadedBy:             d.UploadedBy,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	buyerApproval, err := unmarshalApproval(m.BuyerApproval)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("decoding buyer approval of invoice %s: %w", m.InvoiceID, err)
	}
	sellerAcceptance, err := unmarshalApproval(m.SellerAcceptance)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("decoding seller acceptance of invoice %s: %w", m.InvoiceID, err)
	}
	return domain.Invoice{
		InvoiceID:              m.InvoiceID,
		InvoiceNumber:          m.InvoiceNumber,
		SellerID:               m.SellerID,
		BuyerID:                m.BuyerID,
		CounterpartyID:         m.CounterpartyID,
		Amount:                 m.Amount,
		Currency:               m.Currency,
		IssueDate:              m.IssueDate,
		DueDate:                m.DueDate,
		Description:            m.Description,
		Status:                 domain.InvoiceStatus(m.Status),
		FundedAmount:           fromNullDecimal(m.FundedAmount),
		DiscountRate:           fromNullDecimal(m.DiscountRate),
		FundingDate:            m.FundingDate,
		FinancedOrganizationID: m.FinancedOrganizationID,
		PaidAmount:             m.PaidAmount,
		PaymentDate:            m.PaymentDate,
		BuyerApproval:          buyerApproval,
		SellerAcceptance:       sellerAcceptance,
		RejectionReason:        m.RejectionReason,
		UploadedBy:             m.UploadedBy,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		CounterpartyID: d.CounterpartyID,
		Name:           d.Name,
		TaxID:          d.TaxID,
		Address:        d.Address,
		ContactPerson:  d.ContactPerson,
		Email:          d.Email,
		Phone:          d.Phone,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID: m.CounterpartyID,
		Name:           m.Name,
		TaxID:          m.TaxID,
		Address:        m.Address,
		ContactPerson:  m.ContactPerson,
		Email:          m.Email,
		Phone:          m.Phone,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
