package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditLimit is a row of the credit_limits table.
type CreditLimit struct {
	CreditLimitInfoID string          `db:"credit_limit_info_id"`
	OrganizationID    string          `db:"organization_id"`
	MasterLimit       decimal.Decimal `db:"master_limit"`
	LastReviewDate    time.Time       `db:"last_review_date"`
	NextReviewDate    time.Time       `db:"next_review_date"`
	AuditFields
}

// Facility is a row of the facilities table.
type Facility struct {
	FacilityID         string          `db:"facility_id"`
	CreditLimitInfoID  string          `db:"credit_limit_info_id"`
	FacilityType       string          `db:"facility_type"`
	TotalLimit         decimal.Decimal `db:"total_limit"`
	AllocatedLimit     decimal.Decimal `db:"allocated_limit"`
	CurrentUtilization decimal.Decimal `db:"current_utilization"`
	RelatedPartyID     *string         `db:"related_party_id"`
	ReviewEndDate      time.Time       `db:"review_end_date"`
	GracePeriodDays    int             `db:"grace_period_days"`
	AuditFields
}
