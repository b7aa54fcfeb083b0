package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountCode   AccountCode     `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalance is the point-in-time list of non-zero account balances over posted lines.
type TrialBalance struct {
	AsOfDate     time.Time         `json:"asOfDate"`
	GeneratedAt  time.Time         `json:"generatedAt"`
	GeneratedBy  string            `json:"generatedBy"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
}

// AccountLineTotals aggregates posted line amounts for one account.
type AccountLineTotals struct {
	Account      Account
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// FacilityReportLine describes one facility in a limit report.
type FacilityReportLine struct {
	FacilityID            string          `json:"facilityID"`
	Type                  FacilityType    `json:"type"`
	TotalLimit            decimal.Decimal `json:"totalLimit"`
	AllocatedLimit        decimal.Decimal `json:"allocatedLimit"`
	CurrentUtilization    decimal.Decimal `json:"currentUtilization"`
	AvailableLimit        decimal.Decimal `json:"availableLimit"`
	UtilizationPercentage decimal.Decimal `json:"utilizationPercentage"`
	Status                FacilityStatus  `json:"status"`
	ReviewEndDate         time.Time       `json:"reviewEndDate"`
	GraceDaysRemaining    int             `json:"graceDaysRemaining"`
	InExcess              decimal.Decimal `json:"inExcess"`
	AllocatedTo           *string         `json:"allocatedTo,omitempty"`
	GrantedBy             *string         `json:"grantedBy,omitempty"`
}

// LimitReport summarizes what an organization may see of its credit position.
// Master fields are nil when the viewer holds no credit limit of its own.
type LimitReport struct {
	OrganizationID        string               `json:"organizationID"`
	OrganizationName      string               `json:"organizationName"`
	GeneratedAt           time.Time            `json:"generatedAt"`
	MasterLimit           *decimal.Decimal     `json:"masterLimit,omitempty"`
	TotalUtilization      *decimal.Decimal     `json:"totalUtilization,omitempty"`
	UtilizationPercentage *decimal.Decimal     `json:"utilizationPercentage,omitempty"`
	AvailableMasterLimit  *decimal.Decimal     `json:"availableMasterLimit,omitempty"`
	Facilities            []FacilityReportLine `json:"facilities"`
	ActiveTransactions    []Transaction        `json:"activeTransactions,omitempty"`
}

// LimitTreeNode is an owner facility with the sub-allocations drawn from it.
type LimitTreeNode struct {
	OrganizationID   string               `json:"organizationID"`
	OrganizationName string               `json:"organizationName"`
	MasterLimit      decimal.Decimal      `json:"masterLimit"`
	Facility         FacilityReportLine   `json:"facility"`
	SubAllocations   []FacilityReportLine `json:"subAllocations"`
}

// StatementLine is one transaction on an account statement with its running balance.
type StatementLine struct {
	TransactionID   string          `json:"transactionID"`
	Type            TransactionType `json:"type"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	Amount          decimal.Decimal `json:"amount"`
	Balance         decimal.Decimal `json:"balance"`
}

// AccountStatement lists an organization's transactions over a period.
type AccountStatement struct {
	StatementNumber string          `json:"statementNumber"`
	OrganizationID  string          `json:"organizationID"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	ClosingBalance  decimal.Decimal `json:"closingBalance"`
	Lines           []StatementLine `json:"lines"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
