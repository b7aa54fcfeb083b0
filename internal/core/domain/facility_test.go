package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func creditLimit(master, total, used string, reviewEnd time.Time, grace int) domain.CreditLimitInfo {
	return domain.CreditLimitInfo{
		CreditLimitInfoID: "cli-1",
		OrganizationID:    "seller",
		MasterLimit:       d(master),
		Facilities: []domain.Facility{{
			FacilityID:         "fac-1",
			CreditLimitInfoID:  "cli-1",
			Type:               domain.FacilityInvoiceFinancing,
			TotalLimit:         d(total),
			AllocatedLimit:     decimal.Zero,
			CurrentUtilization: d(used),
			ReviewEndDate:      reviewEnd,
			GracePeriodDays:    grace,
		}},
	}
}

func TestFacility_StatusAt(t *testing.T) {
	reviewEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	f := domain.Facility{ReviewEndDate: reviewEnd, GracePeriodDays: 10, TotalLimit: d("100"), CurrentUtilization: d("150")}

	tests := []struct {
		name   string
		now    time.Time
		status domain.FacilityStatus
		grace  int
		excess string
	}{
		{"before review end", reviewEnd.AddDate(0, 0, -1), domain.FacilityActive, 0, "0"},
		{"inside grace window", reviewEnd.AddDate(0, 0, 3), domain.FacilityGracePeriod, 7, "0"},
		{"last grace day", reviewEnd.AddDate(0, 0, 10), domain.FacilityGracePeriod, 0, "0"},
		{"after grace", reviewEnd.AddDate(0, 0, 11), domain.FacilityExpired, 0, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, f.StatusAt(tt.now))
			assert.Equal(t, tt.grace, f.GraceDaysRemainingAt(tt.now))
			assert.True(t, d(tt.excess).Equal(f.InExcessAt(tt.now)), "excess %s", f.InExcessAt(tt.now))
		})
	}
}

func TestFacility_UtilizationPercentage(t *testing.T) {
	f := domain.Facility{TotalLimit: d("3000"), CurrentUtilization: d("1000")}
	assert.True(t, d("33.33").Equal(f.UtilizationPercentage()))

	empty := domain.Facility{TotalLimit: decimal.Zero, CurrentUtilization: d("10")}
	assert.True(t, empty.UtilizationPercentage().IsZero())
}

func TestCreditLimitInfo_CheckCapacity(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(1, 0, 0)

	t.Run("within limits", func(t *testing.T) {
		info := creditLimit("10000", "10000", "9500", future, 0)
		assert.NoError(t, info.CheckCapacity(domain.FacilityInvoiceFinancing, d("500"), now))
	})

	t.Run("facility exceeded reports available", func(t *testing.T) {
		info := creditLimit("10000", "10000", "9500", future, 0)
		err := info.CheckCapacity(domain.FacilityInvoiceFinancing, d("600"), now)
		require.ErrorIs(t, err, apperrors.ErrCapacity)
		var capErr *apperrors.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.True(t, d("500").Equal(capErr.Available))
		assert.True(t, d("9500").Equal(info.Facilities[0].CurrentUtilization), "check must not mutate")
	})

	t.Run("master exceeded", func(t *testing.T) {
		info := creditLimit("5000", "8000", "4800", future, 0)
		err := info.CheckCapacity(domain.FacilityInvoiceFinancing, d("300"), now)
		var capErr *apperrors.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "master limit exceeded", capErr.Reason)
		assert.True(t, d("200").Equal(capErr.Available))
	})

	t.Run("expired facility", func(t *testing.T) {
		info := creditLimit("10000", "10000", "0", now.AddDate(0, 0, -10), 5)
		err := info.CheckCapacity(domain.FacilityInvoiceFinancing, d("1"), now)
		assert.ErrorIs(t, err, apperrors.ErrCapacity)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("grace period still allows", func(t *testing.T) {
		info := creditLimit("10000", "10000", "0", now.AddDate(0, 0, -2), 5)
		assert.NoError(t, info.CheckCapacity(domain.FacilityInvoiceFinancing, d("1"), now))
	})

	t.Run("missing facility type", func(t *testing.T) {
		info := creditLimit("10000", "10000", "0", future, 0)
		assert.ErrorIs(t, info.CheckCapacity(domain.FacilityOverdraft, d("1"), now), apperrors.ErrNotFound)
	})

	t.Run("non positive amount", func(t *testing.T) {
		info := creditLimit("10000", "10000", "0", future, 0)
		assert.ErrorIs(t, info.CheckCapacity(domain.FacilityInvoiceFinancing, decimal.Zero, now), apperrors.ErrValidation)
	})
}

func TestCreditLimitInfo_SubAllocationsShareOwnerCapacity(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	info := creditLimit("5000", "5000", "0", future, 0)
	info.Facilities = append(info.Facilities, domain.Facility{
		FacilityID:         "fac-2",
		Type:               domain.FacilityInvoiceFinancing,
		TotalLimit:         d("2000"),
		AllocatedLimit:     d("2000"),
		CurrentUtilization: d("1000"),
		RelatedPartyID:     stringPtr("buyer"),
		ReviewEndDate:      future,
	})

	idx, ok := info.OwnFacility(domain.FacilityInvoiceFinancing)
	require.True(t, ok)
	assert.Equal(t, "fac-1", info.Facilities[idx].FacilityID)

	subIdx, ok := info.SubAllocation(domain.FacilityInvoiceFinancing, "buyer")
	require.True(t, ok)
	assert.Equal(t, "fac-2", info.Facilities[subIdx].FacilityID)

	assert.True(t, d("1000").Equal(info.TotalUtilization()))
	assert.True(t, d("4000").Equal(info.AvailableMasterLimit()))
	assert.True(t, d("20").Equal(info.UtilizationPercentage()))
}

func TestCreditLimitInfo_DrawAndRelease(t *testing.T) {
	info := creditLimit("10000", "10000", "100", time.Now().AddDate(1, 0, 0), 0)

	f, err := info.Draw(domain.FacilityInvoiceFinancing, d("400"))
	require.NoError(t, err)
	assert.True(t, d("500").Equal(f.CurrentUtilization))

	f, err = info.Release(domain.FacilityInvoiceFinancing, d("200"))
	require.NoError(t, err)
	assert.True(t, d("300").Equal(f.CurrentUtilization))

	f, err = info.Release(domain.FacilityInvoiceFinancing, d("1000"))
	require.NoError(t, err)
	assert.True(t, f.CurrentUtilization.IsZero(), "release floors at zero")

	_, err = info.Draw(domain.FacilityTermLoan, d("1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
