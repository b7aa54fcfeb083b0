package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether the balance of this account type grows on debit.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// IsValid checks the account type against the known set.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountCategory groups accounts for statement presentation.
type AccountCategory string

const (
	CategoryCurrentAssets       AccountCategory = "CURRENT_ASSETS"
	CategoryFixedAssets         AccountCategory = "FIXED_ASSETS"
	CategoryCurrentLiabilities  AccountCategory = "CURRENT_LIABILITIES"
	CategoryLongTermLiabilities AccountCategory = "LONG_TERM_LIABILITIES"
	CategoryShareCapital        AccountCategory = "SHARE_CAPITAL"
	CategoryRetainedEarnings    AccountCategory = "RETAINED_EARNINGS"
	CategoryOperatingRevenue    AccountCategory = "OPERATING_REVENUE"
	CategoryNonOperatingRevenue AccountCategory = "NON_OPERATING_REVENUE"
	CategoryOperatingExpenses   AccountCategory = "OPERATING_EXPENSES"
	CategoryFinancingExpenses   AccountCategory = "FINANCING_EXPENSES"
)

// AccountCode is the closed set of chart-of-accounts codes the ledger knows about.
type AccountCode string

const (
	AccountCash                AccountCode = "1100"
	AccountReceivable          AccountCode = "1200"
	AccountLoansToCustomers    AccountCode = "1300"
	AccountAllowanceDoubtful   AccountCode = "1400"
	AccountFixedAssets         AccountCode = "1500"
	AccountPayable             AccountCode = "2100"
	AccountAccruedExpenses     AccountCode = "2200"
	AccountDueToTreasury       AccountCode = "2300"
	AccountCustomerDeposits    AccountCode = "2400"
	AccountLongTermDebt        AccountCode = "2500"
	AccountShareCapital        AccountCode = "3100"
	AccountRetainedEarnings    AccountCode = "3200"
	AccountInterestIncome      AccountCode = "4100"
	AccountFeeIncome           AccountCode = "4200"
	AccountOtherIncome         AccountCode = "4300"
	AccountFactoringFeeExpense AccountCode = "6100"
	AccountBankFeeExpense      AccountCode = "6200"
	AccountInterestExpense     AccountCode = "6300"
	AccountOperatingExpenses   AccountCode = "6400"
	AccountBadDebtExpense      AccountCode = "6500"
)

// AccountDefinition describes one chart entry before it is persisted.
type AccountDefinition struct {
	Code     AccountCode
	Name     string
	Type     AccountType
	Category AccountCategory
}

var chartOfAccounts = []AccountDefinition{
	{AccountCash, "Cash", Asset, CategoryCurrentAssets},
	{AccountReceivable, "Accounts Receivable", Asset, CategoryCurrentAssets},
	{AccountLoansToCustomers, "Loans to Customers", Asset, CategoryCurrentAssets},
	{AccountAllowanceDoubtful, "Allowance for Doubtful Accounts", Asset, CategoryCurrentAssets},
	{AccountFixedAssets, "Fixed Assets", Asset, CategoryFixedAssets},
	{AccountPayable, "Accounts Payable", Liability, CategoryCurrentLiabilities},
	{AccountAccruedExpenses, "Accrued Expenses", Liability, CategoryCurrentLiabilities},
	{AccountDueToTreasury, "Due to Treasury", Liability, CategoryCurrentLiabilities},
	{AccountCustomerDeposits, "Customer Deposits", Liability, CategoryCurrentLiabilities},
	{AccountLongTermDebt, "Long-term Debt", Liability, CategoryLongTermLiabilities},
	{AccountShareCapital, "Share Capital", Equity, CategoryShareCapital},
	{AccountRetainedEarnings, "Retained Earnings", Equity, CategoryRetainedEarnings},
	{AccountInterestIncome, "Interest Income", Revenue, CategoryOperatingRevenue},
	{AccountFeeIncome, "Fee Income", Revenue, CategoryOperatingRevenue},
	{AccountOtherIncome, "Other Income", Revenue, CategoryNonOperatingRevenue},
	{AccountFactoringFeeExpense, "Factoring Fee Expense", Expense, CategoryFinancingExpenses},
	{AccountBankFeeExpense, "Bank Fee Expense", Expense, CategoryOperatingExpenses},
	{AccountInterestExpense, "Interest Expense", Expense, CategoryFinancingExpenses},
	{AccountOperatingExpenses, "Operating Expenses", Expense, CategoryOperatingExpenses},
	{AccountBadDebtExpense, "Bad Debt Expense", Expense, CategoryOperatingExpenses},
}

// ChartOfAccounts returns the fixed chart definitions ordered by code.
func ChartOfAccounts() []AccountDefinition {
	out := make([]AccountDefinition, len(chartOfAccounts))
	copy(out, chartOfAccounts)
	return out
}

// Account represents a ledger account. Balance only moves when a journal line is posted.
type Account struct {
	AccountID   string          `json:"accountID"`
	Code        AccountCode     `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Category    AccountCategory `json:"category"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// AccountBalance is a read model pairing an account with its running balance.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        AccountCode     `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}
