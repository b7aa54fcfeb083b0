package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitService_CheckFacilityLimitReportsAvailable(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)

	res := f.svc.Limit.UpdateFacilityUtilization(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(9500))
	require.True(t, res.Success, res.Message)

	res = f.svc.Limit.CheckFacilityLimit(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(600))
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrCapacity)
	available, ok := res.Available()
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(500).Equal(available), "available %s", available)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CapacityRejections(string(domain.FacilityInvoiceFinancing))))

	res = f.svc.Limit.CheckFacilityLimit(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(500))
	assert.True(t, res.Success, res.Message)
	assert.True(t, decimal.NewFromInt(9500).Equal(f.ownFacility(t, sellerOrg).CurrentUtilization), "checks never mutate")
}

func TestLimitService_UpdateAndRelease(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 1000, 1000)

	// update does not re-check capacity
	res := f.svc.Limit.UpdateFacilityUtilization(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(1200))
	require.True(t, res.Success, res.Message)
	assert.True(t, decimal.NewFromInt(1200).Equal(f.ownFacility(t, sellerOrg).CurrentUtilization))

	res = f.svc.Limit.ReleaseFacilityUtilization(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(5000))
	require.True(t, res.Success, res.Message)
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())

	res = f.svc.Limit.ReleaseFacilityUtilization(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.Zero)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)

	res = f.svc.Limit.UpdateFacilityUtilization(f.ctx, buyerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(1))
	assert.ErrorIs(t, res.Err, apperrors.ErrNotFound)
}

func TestLimitService_CreateCreditLimitValidation(t *testing.T) {
	f := newFixture(t)
	review := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name string
		req  dto.CreateCreditLimitRequest
		err  error
	}{
		{
			name: "facilities exceed master",
			req: dto.CreateCreditLimitRequest{
				OrganizationID: sellerOrg,
				MasterLimit:    decimal.NewFromInt(1000),
				Facilities: []dto.FacilityRequest{
					{Type: domain.FacilityInvoiceFinancing, TotalLimit: decimal.NewFromInt(800), ReviewEndDate: review},
					{Type: domain.FacilityOverdraft, TotalLimit: decimal.NewFromInt(300), ReviewEndDate: review},
				},
			},
			err: apperrors.ErrValidation,
		},
		{
			name: "duplicate facility type",
			req: dto.CreateCreditLimitRequest{
				OrganizationID: sellerOrg,
				MasterLimit:    decimal.NewFromInt(1000),
				Facilities: []dto.FacilityRequest{
					{Type: domain.FacilityTermLoan, TotalLimit: decimal.NewFromInt(100), ReviewEndDate: review},
					{Type: domain.FacilityTermLoan, TotalLimit: decimal.NewFromInt(100), ReviewEndDate: review},
				},
			},
			err: apperrors.ErrValidation,
		},
		{
			name: "unknown organization",
			req:  dto.CreateCreditLimitRequest{OrganizationID: "nobody", MasterLimit: decimal.NewFromInt(1000)},
			err:  apperrors.ErrNotFound,
		},
		{
			name: "non positive master",
			req:  dto.CreateCreditLimitRequest{OrganizationID: sellerOrg, MasterLimit: decimal.Zero},
			err:  apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.svc.Limit.CreateCreditLimitWithFacilities(f.ctx, tt.req, bankUser)
			assert.False(t, res.Success)
			assert.ErrorIs(t, res.Err, tt.err)
		})
	}

	f.grantLimit(t, sellerOrg, 1000, 1000)
	res := f.svc.Limit.CreateCreditLimitWithFacilities(f.ctx, dto.CreateCreditLimitRequest{
		OrganizationID: sellerOrg,
		MasterLimit:    decimal.NewFromInt(1000),
	}, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrDuplicate)

	txns, err := f.svc.Transactions.ListTransactionsForOrganization(f.ctx, sellerOrg)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TxnLimitAdjustment, txns[0].Type)
}

func TestLimitService_AddFacility(t *testing.T) {
	f := newFixture(t)
	req := dto.FacilityRequest{
		Type:          domain.FacilityOverdraft,
		TotalLimit:    decimal.NewFromInt(3000),
		ReviewEndDate: time.Now().AddDate(0, 6, 0),
	}

	// the first facility creates the credit limit sized to it
	res := f.svc.Limit.AddFacilityToOrganization(f.ctx, buyerOrg, req, bankUser)
	require.True(t, res.Success, res.Message)
	info, err := f.svc.Limit.GetCreditLimitInfo(f.ctx, buyerOrg)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(info.MasterLimit))
	require.Len(t, info.Facilities, 1)

	res = f.svc.Limit.AddFacilityToOrganization(f.ctx, buyerOrg, req, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrDuplicate)

	// new facilities are sized against the master limit left after utilization
	require.True(t, f.svc.Limit.UpdateFacilityUtilization(f.ctx, buyerOrg, domain.FacilityOverdraft, decimal.NewFromInt(1000)).Success)
	req.Type = domain.FacilityTermLoan
	req.TotalLimit = decimal.NewFromInt(2500)
	res = f.svc.Limit.AddFacilityToOrganization(f.ctx, buyerOrg, req, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrCapacity)
	available, ok := res.Available()
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(2000).Equal(available))

	req.TotalLimit = decimal.NewFromInt(2000)
	res = f.svc.Limit.AddFacilityToOrganization(f.ctx, buyerOrg, req, bankUser)
	require.True(t, res.Success, res.Message)
}

func TestLimitService_AllocateBuyerLimit(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)

	req := dto.AllocateBuyerLimitRequest{
		SellerID:     sellerOrg,
		BuyerID:      buyerOrg,
		FacilityType: domain.FacilityInvoiceFinancing,
		Amount:       decimal.NewFromInt(2000),
	}
	res := f.svc.Limit.AllocateBuyerLimit(f.ctx, req, bankUser)
	require.True(t, res.Success, res.Message)
	allocationID := res.EntityID

	info, err := f.svc.Limit.GetCreditLimitInfo(f.ctx, sellerOrg)
	require.NoError(t, err)
	require.Len(t, info.Facilities, 2)
	assert.True(t, decimal.NewFromInt(5000).Equal(info.MasterLimit), "allocation adds no capacity")
	assert.True(t, decimal.NewFromInt(5000).Equal(f.ownFacility(t, sellerOrg).TotalLimit))

	buyerView, err := f.svc.Limit.GetVisibleFacilities(f.ctx, buyerOrg)
	require.NoError(t, err)
	require.Len(t, buyerView, 1)
	assert.Equal(t, allocationID, buyerView[0].FacilityID)
	assert.True(t, decimal.NewFromInt(2000).Equal(buyerView[0].AllocatedLimit))
	assert.Equal(t, buyerOrg, *buyerView[0].RelatedPartyID)

	sellerView, err := f.svc.Limit.GetVisibleFacilities(f.ctx, sellerOrg)
	require.NoError(t, err)
	assert.Len(t, sellerView, 2)

	// a second allocation tops up the existing row
	req.Amount = decimal.NewFromInt(500)
	res = f.svc.Limit.AllocateBuyerLimit(f.ctx, req, bankUser)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, allocationID, res.EntityID)
	buyerView, err = f.svc.Limit.GetVisibleFacilities(f.ctx, buyerOrg)
	require.NoError(t, err)
	require.Len(t, buyerView, 1)
	assert.True(t, decimal.NewFromInt(2500).Equal(buyerView[0].AllocatedLimit))
	assert.True(t, decimal.NewFromInt(2500).Equal(buyerView[0].TotalLimit))
}

func TestLimitService_AllocateBuyerLimitRejections(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)
	require.True(t, f.svc.Limit.UpdateFacilityUtilization(f.ctx, sellerOrg, domain.FacilityInvoiceFinancing, decimal.NewFromInt(4000)).Success)

	base := dto.AllocateBuyerLimitRequest{
		SellerID:     sellerOrg,
		BuyerID:      buyerOrg,
		FacilityType: domain.FacilityInvoiceFinancing,
		Amount:       decimal.NewFromInt(2000),
	}

	res := f.svc.Limit.AllocateBuyerLimit(f.ctx, base, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrCapacity)
	available, ok := res.Available()
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1000).Equal(available))

	sameParty := base
	sameParty.BuyerID = sellerOrg
	assert.ErrorIs(t, f.svc.Limit.AllocateBuyerLimit(f.ctx, sameParty, bankUser).Err, apperrors.ErrValidation)

	notBuyer := base
	notBuyer.BuyerID = bankOrg
	assert.ErrorIs(t, f.svc.Limit.AllocateBuyerLimit(f.ctx, notBuyer, bankUser).Err, apperrors.ErrValidation)

	wrongType := base
	wrongType.FacilityType = domain.FacilityGuarantee
	wrongType.Amount = decimal.NewFromInt(10)
	assert.ErrorIs(t, f.svc.Limit.AllocateBuyerLimit(f.ctx, wrongType, bankUser).Err, apperrors.ErrNotFound)
}
