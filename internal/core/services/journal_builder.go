package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// entryBuilder accumulates lines for one automated journal entry.
type entryBuilder struct {
	chart *ChartOfAccounts
	lines []domain.JournalEntryLine
	err   error
}

func (b *entryBuilder) add(code domain.AccountCode, debit, credit decimal.Decimal, description string, orgID *string) {
	if b.err != nil || (debit.IsZero() && credit.IsZero()) {
		return
	}
	accountID, err := b.chart.AccountID(code)
	if err != nil {
		b.err = err
		return
	}
	b.lines = append(b.lines, domain.JournalEntryLine{
		LineID:         uuid.NewString(),
		AccountID:      accountID,
		Debit:          debit,
		Credit:         credit,
		Description:    description,
		OrganizationID: orgID,
	})
}

func (b *entryBuilder) debit(code domain.AccountCode, amount decimal.Decimal, description string, orgID *string) {
	b.add(code, amount, decimal.Zero, description, orgID)
}

func (b *entryBuilder) credit(code domain.AccountCode, amount decimal.Decimal, description string, orgID *string) {
	b.add(code, decimal.Zero, amount, description, orgID)
}

// buildTransactionEntry maps a recorded transaction onto its journal entry. Upload and
// limit adjustment events carry no accounting effect and yield nil.
func buildTransactionEntry(chart *ChartOfAccounts, txn domain.Transaction, event domain.TransactionEvent, by string, now time.Time) (*domain.JournalEntry, error) {
	b := &entryBuilder{chart: chart}
	var description string

	switch e := event.(type) {
	case domain.InvoiceUploadEvent, domain.LimitAdjustmentEvent:
		return nil, nil

	case domain.InvoiceFundingEvent:
		description = fmt.Sprintf("Funding of invoice %s", e.InvoiceNumber)
		if e.SellerID != nil {
			b.debit(domain.AccountCash, e.Amount, "Funds received from invoice financing", e.SellerID)
			b.debit(domain.AccountFactoringFeeExpense, e.Discount, "Discount on invoice financing", e.SellerID)
			b.credit(domain.AccountReceivable, e.InvoiceAmount, "Invoice receivable transferred to bank", e.SellerID)
		}
		b.debit(domain.AccountLoansToCustomers, e.InvoiceAmount, "Invoice financing advanced", nil)
		b.credit(domain.AccountCash, e.Amount, "Funds disbursed for invoice financing", nil)
		b.credit(domain.AccountInterestIncome, e.Discount, "Discount earned on invoice financing", nil)

	case domain.PaymentEvent:
		description = fmt.Sprintf("Payment of invoice %s", e.InvoiceNumber)
		if e.BuyerID != nil {
			b.debit(domain.AccountPayable, e.Amount, "Invoice payable settled", e.BuyerID)
			b.credit(domain.AccountCash, e.Amount, "Payment made for invoice", e.BuyerID)
		}
		b.debit(domain.AccountCash, e.Amount, "Payment received for financed invoice", nil)
		b.credit(domain.AccountLoansToCustomers, e.Amount, "Invoice financing repaid", nil)

	case domain.FeeChargeEvent:
		description = "Bank fee charge"
		customer := &e.OrganizationID
		b.debit(domain.AccountBankFeeExpense, e.Amount, "Bank fee charged", customer)
		b.credit(domain.AccountPayable, e.Amount, "Bank fee payable", customer)
		b.debit(domain.AccountReceivable, e.Amount, "Bank fee receivable", nil)
		b.credit(domain.AccountFeeIncome, e.Amount, "Bank fee earned", nil)

	case domain.TreasuryFundingEvent:
		description = "Treasury funding"
		b.debit(domain.AccountCash, e.Amount, "Cash received from treasury", nil)
		b.credit(domain.AccountDueToTreasury, e.Amount, "Amount due to treasury", nil)

	default:
		return nil, fmt.Errorf("%w: unsupported transaction event %T", apperrors.ErrPosting, event)
	}

	if b.err != nil {
		return nil, b.err
	}
	if txn.Description != "" {
		description = txn.Description
	}

	entryID := uuid.NewString()
	for i := range b.lines {
		b.lines[i].JournalEntryID = entryID
	}
	txnID := txn.TransactionID
	orgID := txn.OrganizationID
	return &domain.JournalEntry{
		JournalEntryID: entryID,
		Reference:      "TXN-" + txn.TransactionID,
		EntryDate:      txn.TransactionDate,
		Description:    description,
		Status:         domain.JournalPending,
		Lines:          b.lines,
		OrganizationID: &orgID,
		InvoiceID:      txn.InvoiceID,
		TransactionID:  &txnID,
		AuditFields:    domain.NewAuditFields(by, now),
	}, nil
}
