package dto

import (
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one manual line. AccountID wins over AccountCode when both are set.
type JournalLineRequest struct {
	AccountID      string             `json:"accountID"`
	AccountCode    domain.AccountCode `json:"accountCode"`
	Debit          decimal.Decimal    `json:"debit" binding:"gte=0"`
	Credit         decimal.Decimal    `json:"credit" binding:"gte=0"`
	Description    string             `json:"description"`
	OrganizationID string             `json:"organizationID"`
}

// CreateJournalEntryRequest is a manual journal entry.
type CreateJournalEntryRequest struct {
	Reference      string               `json:"reference"`
	EntryDate      time.Time            `json:"entryDate"`
	Description    string               `json:"description" binding:"required"`
	OrganizationID string               `json:"organizationID"`
	InvoiceID      string               `json:"invoiceID"`
	Lines          []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf       string                    `json:"asOf"`
	Rows       []TrialBalanceRowResponse `json:"rows"`
	IsBalanced bool                      `json:"isBalanced"`
	Totals     struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance to its response DTO.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf:       tb.AsOfDate.Format("2006-01-02"),
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		IsBalanced: tb.IsBalanced,
	}
	for i, row := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountCode:   string(row.AccountCode),
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			DebitBalance:  row.DebitBalance,
			CreditBalance: row.CreditBalance,
		}
	}
	resp.Totals.Debit = tb.TotalDebits
	resp.Totals.Credit = tb.TotalCredits
	return resp
}
