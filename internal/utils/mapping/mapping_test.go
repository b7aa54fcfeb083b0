package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceMapping_KeepsApprovalRounds(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("4.5")
	decider := "buyer-user"
	inv := domain.Invoice{
		InvoiceID: "inv-1",
		Amount:    decimal.NewFromInt(1000),
		Status:    domain.InvoiceSellerAcceptancePending,
		BuyerApproval: &domain.ApprovalRequest{
			Kind:         domain.BuyerApproval,
			Outcome:      domain.ApprovalAccepted,
			ProposedRate: &rate,
			RequestedBy:  "bank-user",
			RequestedAt:  now,
			DecidedBy:    &decider,
			DecidedAt:    &now,
		},
		DiscountRate: &rate,
	}

	m, err := ToModelInvoice(inv)
	require.NoError(t, err)
	assert.Nil(t, m.SellerAcceptance)
	assert.True(t, m.DiscountRate.Valid)
	assert.False(t, m.FundedAmount.Valid)

	back, err := ToDomainInvoice(m)
	require.NoError(t, err)
	require.NotNil(t, back.BuyerApproval)
	assert.Equal(t, domain.ApprovalAccepted, back.BuyerApproval.Outcome)
	assert.True(t, back.BuyerApproval.ProposedRate.Equal(rate))
	assert.Nil(t, back.SellerAcceptance)
	assert.Nil(t, back.FundedAmount)
	assert.True(t, back.DiscountRate.Equal(rate))
}

func TestToDomainInvoice_RejectsCorruptApproval(t *testing.T) {
	m, err := ToModelInvoice(domain.Invoice{InvoiceID: "inv-2"})
	require.NoError(t, err)
	m.BuyerApproval = []byte("{not json")

	_, err = ToDomainInvoice(m)
	assert.Error(t, err)
}

func TestToModelJournalLines_NumbersLines(t *testing.T) {
	entry := domain.JournalEntry{
		JournalEntryID: "je-1",
		Lines: []domain.JournalEntryLine{
			{LineID: "l1", AccountID: "a1", Debit: decimal.NewFromInt(5)},
			{LineID: "l2", AccountID: "a2", Credit: decimal.NewFromInt(5)},
		},
	}
	lines := ToModelJournalLines(entry)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].LineNumber)
	assert.Equal(t, 2, lines[1].LineNumber)
	assert.Equal(t, "je-1", lines[1].JournalEntryID)
}
