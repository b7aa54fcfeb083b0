package accounting

import (
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the change a journal line applies to the balance of an
// account of the given type.
func CalculateSignedAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// ValidateJournalBalance checks line shape and that debits equal credits.
func ValidateJournalBalance(lines []domain.JournalEntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, line := range lines {
		if !line.HasSingleSide() {
			return fmt.Errorf("%w: line %d must carry exactly one non-negative debit or credit", apperrors.ErrValidation, i+1)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: journal entry is unbalanced: debits %s, credits %s",
			apperrors.ErrValidation, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

// SplitNetBalance turns line totals into a debit balance or a credit balance.
// A positive net (debits over credits) is reported on the debit side.
func SplitNetBalance(totalDebits, totalCredits decimal.Decimal) (debitBalance, creditBalance decimal.Decimal) {
	net := totalDebits.Sub(totalCredits)
	if net.IsPositive() {
		return net, decimal.Zero
	}
	return decimal.Zero, net.Abs()
}
