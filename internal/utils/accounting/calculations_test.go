package accounting

import (
	"testing"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(debit, credit int64) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		AccountID: "acc",
		Debit:     decimal.NewFromInt(debit),
		Credit:    decimal.NewFromInt(credit),
	}
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		line        domain.JournalEntryLine
		accountType domain.AccountType
		want        int64
	}{
		{"debit asset", line(100, 0), domain.Asset, 100},
		{"credit asset", line(0, 100), domain.Asset, -100},
		{"debit expense", line(40, 0), domain.Expense, 40},
		{"debit liability", line(100, 0), domain.Liability, -100},
		{"credit liability", line(0, 100), domain.Liability, 100},
		{"credit revenue", line(0, 25), domain.Revenue, 25},
		{"debit equity", line(10, 0), domain.Equity, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSignedAmount(tt.line, tt.accountType)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := CalculateSignedAmount(line(1, 0), domain.AccountType("UNKNOWN"))
	assert.Error(t, err)
}

func TestValidateJournalBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalEntryLine
		wantErr bool
	}{
		{"balanced pair", []domain.JournalEntryLine{line(100, 0), line(0, 100)}, false},
		{"balanced split", []domain.JournalEntryLine{line(100, 0), line(0, 60), line(0, 40)}, false},
		{"single line", []domain.JournalEntryLine{line(100, 0)}, true},
		{"unbalanced", []domain.JournalEntryLine{line(100, 0), line(0, 99)}, true},
		{"two sided line", []domain.JournalEntryLine{line(100, 100), line(0, 0)}, true},
		{"empty line", []domain.JournalEntryLine{line(100, 0), line(0, 100), line(0, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJournalBalance(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitNetBalance(t *testing.T) {
	debit, credit := SplitNetBalance(decimal.NewFromInt(300), decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(200).Equal(debit))
	assert.True(t, credit.IsZero())

	debit, credit = SplitNetBalance(decimal.NewFromInt(100), decimal.NewFromInt(250))
	assert.True(t, debit.IsZero())
	assert.True(t, decimal.NewFromInt(150).Equal(credit))

	debit, credit = SplitNetBalance(decimal.NewFromInt(50), decimal.NewFromInt(50))
	assert.True(t, debit.IsZero())
	assert.True(t, credit.IsZero())
}
