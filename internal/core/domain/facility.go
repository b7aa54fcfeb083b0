package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FacilityType is the kind of credit a facility extends.
type FacilityType string

const (
	FacilityInvoiceFinancing FacilityType = "INVOICE_FINANCING"
	FacilityTermLoan         FacilityType = "TERM_LOAN"
	FacilityOverdraft        FacilityType = "OVERDRAFT"
	FacilityGuarantee        FacilityType = "GUARANTEE"
)

// IsValid checks the facility type against the known set.
func (t FacilityType) IsValid() bool {
	switch t {
	case FacilityInvoiceFinancing, FacilityTermLoan, FacilityOverdraft, FacilityGuarantee:
		return true
	}
	return false
}

// FacilityStatus is the review state of a facility at a point in time.
type FacilityStatus string

const (
	FacilityActive      FacilityStatus = "ACTIVE"
	FacilityGracePeriod FacilityStatus = "GRACE_PERIOD"
	FacilityExpired     FacilityStatus = "EXPIRED"
)

// Facility is a typed credit sub-limit under an organization's master limit.
// When RelatedPartyID is set the row is a sub-allocation granted by the owner
// of the credit limit to that party; it shares the owner's capacity.
type Facility struct {
	FacilityID         string          `json:"facilityID"`
	CreditLimitInfoID  string          `json:"creditLimitInfoID"`
	Type               FacilityType    `json:"type"`
	TotalLimit         decimal.Decimal `json:"totalLimit"`
	AllocatedLimit     decimal.Decimal `json:"allocatedLimit"`
	CurrentUtilization decimal.Decimal `json:"currentUtilization"`
	RelatedPartyID     *string         `json:"relatedPartyID,omitempty"`
	ReviewEndDate      time.Time       `json:"reviewEndDate"`
	GracePeriodDays    int             `json:"gracePeriodDays"`
	AuditFields
}

// AvailableLimit is totalLimit minus currentUtilization.
func (f Facility) AvailableLimit() decimal.Decimal {
	return f.TotalLimit.Sub(f.CurrentUtilization)
}

// IsSubAllocation reports whether the facility was granted to another party.
func (f Facility) IsSubAllocation() bool {
	return f.RelatedPartyID != nil
}

func (f Facility) graceEnd() time.Time {
	return f.ReviewEndDate.AddDate(0, 0, f.GracePeriodDays)
}

// IsExpiredAt reports whether now is past the review end date plus grace days.
func (f Facility) IsExpiredAt(now time.Time) bool {
	return now.After(f.graceEnd())
}

// InGracePeriodAt reports whether the review date has passed but the grace window has not.
func (f Facility) InGracePeriodAt(now time.Time) bool {
	return now.After(f.ReviewEndDate) && !now.After(f.graceEnd())
}

// StatusAt classifies the facility for reporting.
func (f Facility) StatusAt(now time.Time) FacilityStatus {
	switch {
	case f.IsExpiredAt(now):
		return FacilityExpired
	case f.InGracePeriodAt(now):
		return FacilityGracePeriod
	default:
		return FacilityActive
	}
}

// GraceDaysRemainingAt returns whole days left in the grace window, or zero outside it.
func (f Facility) GraceDaysRemainingAt(now time.Time) int {
	if !f.InGracePeriodAt(now) {
		return 0
	}
	return int(f.graceEnd().Sub(now).Hours() / 24)
}

// InExcessAt is the utilization above the total limit once the facility has expired.
func (f Facility) InExcessAt(now time.Time) decimal.Decimal {
	if !f.IsExpiredAt(now) {
		return decimal.Zero
	}
	excess := f.CurrentUtilization.Sub(f.TotalLimit)
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess
}

// UtilizationPercentage is currentUtilization / totalLimit * 100, rounded to 2dp.
func (f Facility) UtilizationPercentage() decimal.Decimal {
	if !f.TotalLimit.IsPositive() {
		return decimal.Zero
	}
	return f.CurrentUtilization.Div(f.TotalLimit).Mul(decimal.NewFromInt(100)).Round(2)
}

// CreditLimitInfo holds an organization's master limit and its facilities.
type CreditLimitInfo struct {
	CreditLimitInfoID string          `json:"creditLimitInfoID"`
	OrganizationID    string          `json:"organizationID"`
	MasterLimit       decimal.Decimal `json:"masterLimit"`
	LastReviewDate    time.Time       `json:"lastReviewDate"`
	NextReviewDate    time.Time       `json:"nextReviewDate"`
	Facilities        []Facility      `json:"facilities"`
	AuditFields
}

// TotalUtilization sums currentUtilization across every facility row.
func (c CreditLimitInfo) TotalUtilization() decimal.Decimal {
	total := decimal.Zero
	for _, f := range c.Facilities {
		total = total.Add(f.CurrentUtilization)
	}
	return total
}

// AvailableMasterLimit is masterLimit minus total utilization.
func (c CreditLimitInfo) AvailableMasterLimit() decimal.Decimal {
	return c.MasterLimit.Sub(c.TotalUtilization())
}

// UtilizationPercentage of the master limit, rounded to 2dp.
func (c CreditLimitInfo) UtilizationPercentage() decimal.Decimal {
	if !c.MasterLimit.IsPositive() {
		return decimal.Zero
	}
	return c.TotalUtilization().Div(c.MasterLimit).Mul(decimal.NewFromInt(100)).Round(2)
}

// OwnFacility returns the index of the owner's (non sub-allocated) facility of the given type.
func (c CreditLimitInfo) OwnFacility(t FacilityType) (int, bool) {
	for i, f := range c.Facilities {
		if f.Type == t && !f.IsSubAllocation() {
			return i, true
		}
	}
	return -1, false
}

// SubAllocation returns the index of the facility of type t granted to partyID.
func (c CreditLimitInfo) SubAllocation(t FacilityType, partyID string) (int, bool) {
	for i, f := range c.Facilities {
		if f.Type == t && f.RelatedPartyID != nil && *f.RelatedPartyID == partyID {
			return i, true
		}
	}
	return -1, false
}

// CheckCapacity verifies that the owner's facility of type t can absorb amount at time now.
// It never mutates the receiver.
func (c CreditLimitInfo) CheckCapacity(t FacilityType, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	idx, ok := c.OwnFacility(t)
	if !ok {
		return fmt.Errorf("%w: no %s facility for organization %s", apperrors.ErrNotFound, t, c.OrganizationID)
	}
	f := c.Facilities[idx]
	if f.IsExpiredAt(now) {
		return apperrors.NewCapacityError(
			fmt.Sprintf("facility %s expired on %s, in excess: %s", f.FacilityID, f.graceEnd().Format("2006-01-02"), f.InExcessAt(now).StringFixed(2)),
			amount, decimal.Zero)
	}
	if f.CurrentUtilization.Add(amount).GreaterThan(f.TotalLimit) {
		return apperrors.NewCapacityError("facility limit exceeded", amount, f.AvailableLimit())
	}
	if c.TotalUtilization().Add(amount).GreaterThan(c.MasterLimit) {
		return apperrors.NewCapacityError("master limit exceeded", amount, c.AvailableMasterLimit())
	}
	return nil
}

// Draw adds amount to the owner's facility of type t without re-checking capacity.
// Callers run CheckCapacity first inside the same unit of work.
func (c *CreditLimitInfo) Draw(t FacilityType, amount decimal.Decimal) (*Facility, error) {
	idx, ok := c.OwnFacility(t)
	if !ok {
		return nil, fmt.Errorf("%w: no %s facility for organization %s", apperrors.ErrNotFound, t, c.OrganizationID)
	}
	c.Facilities[idx].CurrentUtilization = c.Facilities[idx].CurrentUtilization.Add(amount)
	return &c.Facilities[idx], nil
}

// Release subtracts amount from the owner's facility of type t, flooring at zero.
func (c *CreditLimitInfo) Release(t FacilityType, amount decimal.Decimal) (*Facility, error) {
	idx, ok := c.OwnFacility(t)
	if !ok {
		return nil, fmt.Errorf("%w: no %s facility for organization %s", apperrors.ErrNotFound, t, c.OrganizationID)
	}
	next := c.Facilities[idx].CurrentUtilization.Sub(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	c.Facilities[idx].CurrentUtilization = next
	return &c.Facilities[idx], nil
}
