package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_UploadNotifiesBank(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-100", 1000)

	inv := f.invoice(t, invoiceID)
	assert.Equal(t, domain.InvoiceApproved, inv.Status)
	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, sellerUser, inv.UploadedBy)

	uploaded := f.notifier.to(bankUser)
	require.NotEmpty(t, uploaded)
	assert.True(t, uploaded[0].RequiresAction)
	assert.NotEmpty(t, f.notifier.to(buyerUser), "buyer hears about validation and approval")
}

func TestInvoiceService_UploadRejectsNonSeller(t *testing.T) {
	f := newFixture(t)
	res := f.svc.Invoice.UploadInvoice(f.ctx, dto.UploadInvoiceRequest{
		InvoiceNumber: "INV-101",
		SellerID:      buyerOrg,
		Amount:        decimal.NewFromInt(10),
		IssueDate:     time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
	}, buyerUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)
}

func TestInvoiceService_BuyerUploadWithCounterpartySeller(t *testing.T) {
	f := newFixture(t)
	req := dto.UploadInvoiceRequest{
		InvoiceNumber: "INV-102",
		BuyerID:       buyerOrg,
		Counterparty:  &dto.CounterpartyRequest{Name: "Small Supplier", TaxID: "TX-1"},
		Amount:        decimal.NewFromInt(250),
		IssueDate:     time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
	}
	res := f.svc.Invoice.UploadBuyerInvoice(f.ctx, req, buyerUser)
	require.True(t, res.Success, res.Message)

	inv := f.invoice(t, res.EntityID)
	assert.Equal(t, domain.InvoiceBuyerUploaded, inv.Status)
	assert.Nil(t, inv.SellerID)
	require.NotNil(t, inv.CounterpartyID)

	req.InvoiceNumber = "INV-103"
	res = f.svc.Invoice.UploadBuyerInvoice(f.ctx, req, buyerUser)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, *inv.CounterpartyID, *f.invoice(t, res.EntityID).CounterpartyID, "counterparty is reused")
}

func TestInvoiceService_SellerUploadTracksCounterpartyRisk(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)
	req := dto.UploadInvoiceRequest{
		InvoiceNumber: "INV-104",
		SellerID:      sellerOrg,
		Counterparty:  &dto.CounterpartyRequest{Name: "Corner Shop", TaxID: "TX-9"},
		Amount:        decimal.NewFromInt(250),
		IssueDate:     time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
	}
	res := f.svc.Invoice.UploadInvoice(f.ctx, req, sellerUser)
	require.True(t, res.Success, res.Message)
	inv := f.invoice(t, res.EntityID)
	require.NotNil(t, inv.CounterpartyID)

	info, err := f.svc.Limit.GetCreditLimitInfo(f.ctx, sellerOrg)
	require.NoError(t, err)
	idx, ok := info.SubAllocation(domain.FacilityInvoiceFinancing, *inv.CounterpartyID)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(250).Equal(info.Facilities[idx].TotalLimit))
	assert.True(t, decimal.NewFromInt(250).Equal(info.Facilities[idx].AllocatedLimit))

	req.InvoiceNumber = "INV-105"
	res = f.svc.Invoice.UploadInvoice(f.ctx, req, sellerUser)
	require.True(t, res.Success, res.Message)
	info, err = f.svc.Limit.GetCreditLimitInfo(f.ctx, sellerOrg)
	require.NoError(t, err)
	assert.Len(t, info.Facilities, 2, "one tracking row per counterparty")
}

func TestInvoiceService_FundPostsBalancedEntry(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-200", 1000)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser)
	require.True(t, res.Success, res.Message)

	inv := f.invoice(t, invoiceID)
	assert.Equal(t, domain.InvoiceFunded, inv.Status)
	require.NotNil(t, inv.FundedAmount)
	assert.True(t, decimal.NewFromInt(950).Equal(*inv.FundedAmount))
	assert.Equal(t, sellerOrg, *inv.FinancedOrganizationID)
	assert.True(t, decimal.NewFromInt(1000).Equal(f.ownFacility(t, sellerOrg).CurrentUtilization))

	txns, err := f.svc.Transactions.ListTransactionsForOrganization(f.ctx, sellerOrg)
	require.NoError(t, err)
	var funding *domain.Transaction
	for i := range txns {
		if txns[i].Type == domain.TxnInvoiceFunding {
			funding = &txns[i]
		}
	}
	require.NotNil(t, funding)
	assert.True(t, decimal.NewFromInt(950).Equal(funding.Amount), "transaction records the advance, not the face value")
	require.NotNil(t, funding.InterestOrDiscountRate)
	assert.True(t, decimal.NewFromInt(5).Equal(*funding.InterestOrDiscountRate))

	entries, err := f.svc.Ledger.GetJournalEntriesForOrganization(f.ctx, sellerOrg)
	require.NoError(t, err)
	require.Len(t, entries, 1, "upload and limit adjustments carry no entry")
	entry := entries[0]
	assert.Equal(t, domain.JournalPosted, entry.Status)
	assert.Len(t, entry.Lines, 6)
	assert.True(t, decimal.NewFromInt(2000).Equal(entry.TotalDebits()))
	assert.True(t, decimal.NewFromInt(2000).Equal(entry.TotalCredits()))
	require.NotNil(t, entry.InvoiceID)
	assert.Equal(t, invoiceID, *entry.InvoiceID)

	assert.True(t, decimal.NewFromInt(1000).Equal(f.balance(t, domain.AccountLoansToCustomers)))
	assert.True(t, decimal.NewFromInt(50).Equal(f.balance(t, domain.AccountInterestIncome)))
	assert.True(t, decimal.NewFromInt(50).Equal(f.balance(t, domain.AccountFactoringFeeExpense)))
}

func TestInvoiceService_FundWithoutCapacityRollsBack(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 500, 500)
	invoiceID := f.approvedInvoice(t, "INV-201", 1000)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrCapacity)
	available, ok := res.Available()
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(500).Equal(available))

	assert.Equal(t, domain.InvoiceApproved, f.invoice(t, invoiceID).Status)
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())
}

func TestInvoiceService_BankStepsRequireBankUser(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	res := f.svc.Invoice.UploadInvoice(f.ctx, dto.UploadInvoiceRequest{
		InvoiceNumber: "INV-210",
		SellerID:      sellerOrg,
		BuyerID:       buyerOrg,
		Amount:        decimal.NewFromInt(1000),
		IssueDate:     time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
	}, sellerUser)
	require.True(t, res.Success, res.Message)
	uploadedID := res.EntityID

	for _, userID := range []string{sellerUser, buyerUser, "stranger"} {
		res = f.svc.Invoice.ValidateInvoice(f.ctx, uploadedID, userID)
		assert.ErrorIs(t, res.Err, apperrors.ErrForbidden, userID)
	}
	assert.ErrorIs(t, f.svc.Invoice.RejectInvoice(f.ctx, uploadedID, "not mine", buyerUser).Err, apperrors.ErrForbidden)
	assert.Equal(t, domain.InvoiceUploaded, f.invoice(t, uploadedID).Status)

	approvedID := f.approvedInvoice(t, "INV-211", 1000)
	assert.ErrorIs(t, f.svc.Invoice.ApproveInvoice(f.ctx, uploadedID, sellerUser).Err, apperrors.ErrForbidden)
	assert.ErrorIs(t, f.svc.Invoice.RequestBuyerApproval(f.ctx, approvedID, sellerUser).Err, apperrors.ErrForbidden)
	assert.ErrorIs(t, f.svc.Invoice.RequestSellerAcceptance(f.ctx, approvedID, rate(4), sellerUser).Err, apperrors.ErrForbidden)

	res = f.svc.Invoice.FundInvoice(f.ctx, approvedID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, sellerUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrForbidden)

	inv := f.invoice(t, approvedID)
	assert.Equal(t, domain.InvoiceApproved, inv.Status)
	assert.Nil(t, inv.FundedAmount)
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())
}

func TestInvoiceService_FundRejectsNegativeRate(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-212", 1000)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(-5)}, bankUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)

	res = f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{BaseRate: rate(3), MarginRate: rate(-1)}, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)

	assert.Equal(t, domain.InvoiceApproved, f.invoice(t, invoiceID).Status)
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())
}

func TestInvoiceService_AcceptedRateOutranksBaseAndMargin(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-213", 1000)
	require.True(t, f.svc.Invoice.RequestSellerAcceptance(f.ctx, invoiceID, rate(4), bankUser).Success)
	require.True(t, f.svc.Invoice.SellerAcceptOffer(f.ctx, invoiceID, sellerUser).Success)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{BaseRate: rate(3), MarginRate: rate(3)}, bankUser)
	require.True(t, res.Success, res.Message)
	assert.True(t, decimal.NewFromInt(960).Equal(*f.invoice(t, invoiceID).FundedAmount))
}

func TestInvoiceService_FundWithoutLimitFails(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-202", 1000)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrNotFound)
	assert.Equal(t, domain.InvoiceApproved, f.invoice(t, invoiceID).Status)
}

func TestInvoiceService_FundDrawsBuyerFacilityWhenPresent(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)
	f.grantLimit(t, buyerOrg, 5000, 5000)
	invoiceID := f.approvedInvoice(t, "INV-203", 1000)

	relationship, err := f.svc.Invoice.DetermineCustomerRelationship(f.ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.BothAreCustomers, relationship)

	res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{BaseRate: rate(3), MarginRate: rate(1.5)}, bankUser)
	require.True(t, res.Success, res.Message)

	inv := f.invoice(t, invoiceID)
	assert.Equal(t, buyerOrg, *inv.FinancedOrganizationID)
	assert.True(t, rate(4.5).Equal(*inv.DiscountRate))
	assert.True(t, decimal.NewFromInt(1000).Equal(f.ownFacility(t, buyerOrg).CurrentUtilization))
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())
}

func TestInvoiceService_ConcurrentFundingSucceedsOnce(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-204", 1000)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser)
			if res.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.True(t, decimal.NewFromInt(1000).Equal(f.ownFacility(t, sellerOrg).CurrentUtilization))

	txns, err := f.svc.Transactions.ListTransactionsForOrganization(f.ctx, sellerOrg)
	require.NoError(t, err)
	fundings := 0
	for _, txn := range txns {
		if txn.Type == domain.TxnInvoiceFunding {
			fundings++
		}
	}
	assert.Equal(t, 1, fundings)

	entries, err := f.svc.Ledger.GetJournalEntriesForOrganization(f.ctx, sellerOrg)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInvoiceService_PaymentReleasesUtilizationOnCompletion(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-205", 1000)
	require.True(t, f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser).Success)

	res := f.svc.Invoice.ProcessPayment(f.ctx, invoiceID, dto.PaymentRequest{Amount: decimal.NewFromInt(400)}, buyerUser)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, domain.InvoicePartiallyPaid, f.invoice(t, invoiceID).Status)
	assert.True(t, decimal.NewFromInt(1000).Equal(f.ownFacility(t, sellerOrg).CurrentUtilization))

	res = f.svc.Invoice.ProcessPayment(f.ctx, invoiceID, dto.PaymentRequest{Amount: decimal.NewFromInt(700)}, buyerUser)
	assert.False(t, res.Success, "overpayment is rejected")
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)

	res = f.svc.Invoice.ProcessPayment(f.ctx, invoiceID, dto.PaymentRequest{Amount: decimal.NewFromInt(600)}, buyerUser)
	require.True(t, res.Success, res.Message)

	inv := f.invoice(t, invoiceID)
	assert.Equal(t, domain.InvoiceFullyPaid, inv.Status)
	assert.True(t, decimal.NewFromInt(1000).Equal(inv.PaidAmount))
	assert.True(t, f.ownFacility(t, sellerOrg).CurrentUtilization.IsZero())
	assert.True(t, f.balance(t, domain.AccountLoansToCustomers).IsZero())

	entries, err := f.svc.Ledger.GetJournalEntriesForOrganization(f.ctx, buyerOrg)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Len(t, e.Lines, 4)
		assert.True(t, e.IsBalanced())
	}

	tb, err := f.svc.Ledger.GenerateTrialBalance(f.ctx, time.Now().Add(time.Hour), bankUser)
	require.NoError(t, err)
	assert.True(t, tb.IsBalanced)
	assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits))
	assert.NotEmpty(t, tb.Rows)
}

func TestInvoiceService_BuyerDecisionRequiresBuyerParty(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-300", 1000)
	require.True(t, f.svc.Invoice.RequestBuyerApproval(f.ctx, invoiceID, bankUser).Success)

	res := f.svc.Invoice.BuyerApproveInvoice(f.ctx, invoiceID, sellerUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrForbidden)
	assert.Equal(t, domain.InvoiceBuyerApprovalPending, f.invoice(t, invoiceID).Status)

	res = f.svc.Invoice.BuyerApproveInvoice(f.ctx, invoiceID, "stranger")
	assert.ErrorIs(t, res.Err, apperrors.ErrForbidden)

	res = f.svc.Invoice.BuyerApproveInvoice(f.ctx, invoiceID, buyerUser)
	require.True(t, res.Success, res.Message)
	inv := f.invoice(t, invoiceID)
	assert.Equal(t, domain.InvoiceApproved, inv.Status)
	assert.True(t, inv.BuyerApproved())
}

func TestInvoiceService_BuyerRejectionTerminates(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-301", 1000)
	require.True(t, f.svc.Invoice.RequestBuyerApproval(f.ctx, invoiceID, bankUser).Success)

	res := f.svc.Invoice.BuyerRejectInvoice(f.ctx, invoiceID, "disputed quantity", buyerUser)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, domain.InvoiceRejected, f.invoice(t, invoiceID).Status)

	res = f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{}, bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)
}

func TestInvoiceService_SellerAcceptedRateIsUsedForFunding(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-302", 1000)

	require.True(t, f.svc.Invoice.RequestSellerAcceptance(f.ctx, invoiceID, rate(4), bankUser).Success)
	res := f.svc.Invoice.SellerAcceptOffer(f.ctx, invoiceID, buyerUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrForbidden)

	res = f.svc.Invoice.SellerAcceptOffer(f.ctx, invoiceID, sellerUser)
	require.True(t, res.Success, res.Message)

	res = f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{}, bankUser)
	require.True(t, res.Success, res.Message)
	assert.True(t, decimal.NewFromInt(960).Equal(*f.invoice(t, invoiceID).FundedAmount))
}

func TestInvoiceService_SellerRejectionReturnsToValidated(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-303", 1000)

	require.True(t, f.svc.Invoice.RequestSellerAcceptance(f.ctx, invoiceID, rate(9), bankUser).Success)
	res := f.svc.Invoice.SellerRejectOffer(f.ctx, invoiceID, "rate too high", sellerUser)
	require.True(t, res.Success, res.Message)

	inv := f.invoice(t, invoiceID)
	assert.Equal(t, domain.InvoiceValidated, inv.Status)
	assert.Nil(t, inv.DiscountRate)
}

func TestInvoiceService_InvalidTransitionLeavesInvoiceUntouched(t *testing.T) {
	f := newFixture(t)
	invoiceID := f.approvedInvoice(t, "INV-304", 1000)

	res := f.svc.Invoice.ValidateInvoice(f.ctx, invoiceID, bankUser)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, apperrors.ErrValidation)
	assert.Equal(t, domain.InvoiceApproved, f.invoice(t, invoiceID).Status)

	res = f.svc.Invoice.ApproveInvoice(f.ctx, "missing", bankUser)
	assert.ErrorIs(t, res.Err, apperrors.ErrNotFound)
}

func TestInvoiceService_ListInvoicesForOrganization(t *testing.T) {
	f := newFixture(t)
	f.approvedInvoice(t, "INV-400", 100)
	f.approvedInvoice(t, "INV-401", 200)

	forBuyer, err := f.svc.Invoice.ListInvoicesForOrganization(f.ctx, buyerOrg)
	require.NoError(t, err)
	assert.Len(t, forBuyer, 2)

	forBank, err := f.svc.Invoice.ListInvoicesForOrganization(f.ctx, bankOrg)
	require.NoError(t, err)
	assert.Empty(t, forBank)
}
