package domain_test

import (
	"testing"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_Balance(t *testing.T) {
	entry := domain.JournalEntry{Lines: []domain.JournalEntryLine{
		{AccountID: "cash", Debit: d("100"), Credit: decimal.Zero},
		{AccountID: "revenue", Debit: decimal.Zero, Credit: d("60")},
		{AccountID: "payable", Debit: decimal.Zero, Credit: d("40")},
	}}
	assert.True(t, d("100").Equal(entry.TotalDebits()))
	assert.True(t, d("100").Equal(entry.TotalCredits()))
	assert.True(t, entry.IsBalanced())

	entry.Lines[2].Credit = d("39.99")
	assert.False(t, entry.IsBalanced())
}

func TestJournalEntryLine_HasSingleSide(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{"debit only", "10", "0", true},
		{"credit only", "0", "10", true},
		{"both sides", "10", "10", false},
		{"neither side", "0", "0", false},
		{"negative debit", "-10", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.JournalEntryLine{Debit: d(tt.debit), Credit: d(tt.credit)}
			assert.Equal(t, tt.want, line.HasSingleSide())
		})
	}
}

func TestJournalEntry_IsPosted(t *testing.T) {
	assert.False(t, domain.JournalEntry{Status: domain.JournalPending}.IsPosted())
	assert.True(t, domain.JournalEntry{Status: domain.JournalPosted}.IsPosted())
}

func TestChartOfAccounts_IsCopy(t *testing.T) {
	chart := domain.ChartOfAccounts()
	assert.Len(t, chart, 20)
	chart[0].Name = "changed"
	assert.Equal(t, "Cash", domain.ChartOfAccounts()[0].Name)
}

func TestAccountType_IsDebitNormal(t *testing.T) {
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.Expense.IsDebitNormal())
	assert.False(t, domain.Liability.IsDebitNormal())
	assert.False(t, domain.Revenue.IsDebitNormal())
	assert.False(t, domain.AccountType("OTHER").IsValid())
}

func TestNewTransaction_FundingCarriesRate(t *testing.T) {
	event := domain.InvoiceFundingEvent{
		EventHeader: domain.EventHeader{
			OrganizationID:  "seller",
			Amount:          d("1000"),
			TransactionDate: testNow,
		},
		Rate: d("5"),
	}
	txn := domain.NewTransaction("txn-1", event, "bank-user", testNow)
	assert.Equal(t, domain.TxnInvoiceFunding, txn.Type)
	if assert.NotNil(t, txn.InterestOrDiscountRate) {
		assert.True(t, d("5").Equal(*txn.InterestOrDiscountRate))
	}
	assert.Equal(t, testNow, txn.MaturityDate, "maturity defaults to transaction date")
	assert.Nil(t, txn.PaymentDate)
}

func TestNewTransaction_PaidEventStampsPaymentDate(t *testing.T) {
	event := domain.PaymentEvent{EventHeader: domain.EventHeader{
		OrganizationID: "buyer",
		Amount:         d("10"),
		IsPaid:         true,
	}}
	txn := domain.NewTransaction("txn-2", event, "buyer-user", testNow)
	assert.Equal(t, testNow, txn.TransactionDate)
	if assert.NotNil(t, txn.PaymentDate) {
		assert.Equal(t, testNow, *txn.PaymentDate)
	}
	assert.Nil(t, txn.InterestOrDiscountRate)
}
