package mapping

import (
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:          d.TransactionID,
		TransactionType:        string(d.Type),
		FacilityType:           string(d.FacilityType),
		OrganizationID:         d.OrganizationID,
		InvoiceID:              d.InvoiceID,
		Description:            d.Description,
		Amount:                 d.Amount,
		InterestOrDiscountRate: toNullDecimal(d.InterestOrDiscountRate),
		TransactionDate:        d.TransactionDate,
		MaturityDate:           d.MaturityDate,
		IsPaid:                 d.IsPaid,
		PaymentDate:            d.PaymentDate,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:          m.TransactionID,
		Type:                   domain.TransactionType(m.TransactionType),
		FacilityType:           domain.FacilityType(m.FacilityType),
		OrganizationID:         m.OrganizationID,
		InvoiceID:              m.InvoiceID,
		Description:            m.Description,
		Amount:                 m.Amount,
		InterestOrDiscountRate: fromNullDecimal(m.InterestOrDiscountRate),
		TransactionDate:        m.TransactionDate,
		MaturityDate:           m.MaturityDate,
		IsPaid:                 m.IsPaid,
		PaymentDate:            m.PaymentDate,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
