package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the main lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceUploaded                InvoiceStatus = "UPLOADED"
	InvoiceBuyerUploaded           InvoiceStatus = "BUYER_UPLOADED"
	InvoiceValidated               InvoiceStatus = "VALIDATED"
	InvoiceApproved                InvoiceStatus = "APPROVED"
	InvoiceBuyerApprovalPending    InvoiceStatus = "BUYER_APPROVAL_PENDING"
	InvoiceSellerAcceptancePending InvoiceStatus = "SELLER_ACCEPTANCE_PENDING"
	InvoiceFunded                  InvoiceStatus = "FUNDED"
	InvoicePartiallyPaid           InvoiceStatus = "PARTIALLY_PAID"
	InvoiceFullyPaid               InvoiceStatus = "FULLY_PAID"
	InvoiceRejected                InvoiceStatus = "REJECTED"
)

// IsTerminal reports whether no further transition can leave this status.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceFullyPaid || s == InvoiceRejected
}

// InvoiceAction names a transition of the invoice state machine.
type InvoiceAction string

const (
	ActionValidate                InvoiceAction = "validate"
	ActionApprove                 InvoiceAction = "approve"
	ActionReject                  InvoiceAction = "reject"
	ActionRequestBuyerApproval    InvoiceAction = "request buyer approval"
	ActionBuyerApprove            InvoiceAction = "buyer approve"
	ActionBuyerReject             InvoiceAction = "buyer reject"
	ActionRequestSellerAcceptance InvoiceAction = "request seller acceptance"
	ActionSellerAccept            InvoiceAction = "seller accept"
	ActionSellerReject            InvoiceAction = "seller reject"
	ActionFund                    InvoiceAction = "fund"
	ActionPay                     InvoiceAction = "pay"
)

var invoiceTransitions = map[InvoiceAction][]InvoiceStatus{
	ActionValidate:                {InvoiceUploaded, InvoiceBuyerUploaded},
	ActionApprove:                 {InvoiceValidated},
	ActionReject:                  {InvoiceUploaded, InvoiceValidated},
	ActionRequestBuyerApproval:    {InvoiceApproved},
	ActionBuyerApprove:            {InvoiceBuyerApprovalPending},
	ActionBuyerReject:             {InvoiceBuyerApprovalPending},
	ActionRequestSellerAcceptance: {InvoiceApproved, InvoiceBuyerApprovalPending},
	ActionSellerAccept:            {InvoiceSellerAcceptancePending},
	ActionSellerReject:            {InvoiceSellerAcceptancePending},
	ActionFund:                    {InvoiceApproved, InvoiceBuyerApprovalPending, InvoiceSellerAcceptancePending},
	ActionPay:                     {InvoiceFunded, InvoicePartiallyPaid},
}

// ApprovalKind identifies which side of the negotiation a pending request waits on.
type ApprovalKind string

const (
	BuyerApproval    ApprovalKind = "BUYER_APPROVAL"
	SellerAcceptance ApprovalKind = "SELLER_ACCEPTANCE"
)

// ApprovalOutcome is the state of one approval request.
type ApprovalOutcome string

const (
	ApprovalPending  ApprovalOutcome = "PENDING"
	ApprovalAccepted ApprovalOutcome = "ACCEPTED"
	ApprovalRejected ApprovalOutcome = "REJECTED"
)

// ApprovalRequest is one round of the buyer-approval or seller-acceptance sub-protocol.
type ApprovalRequest struct {
	Kind         ApprovalKind     `json:"kind"`
	Outcome      ApprovalOutcome  `json:"outcome"`
	ProposedRate *decimal.Decimal `json:"proposedRate,omitempty"`
	RequestedBy  string           `json:"requestedBy"`
	RequestedAt  time.Time        `json:"requestedAt"`
	DecidedBy    *string          `json:"decidedBy,omitempty"`
	DecidedAt    *time.Time       `json:"decidedAt,omitempty"`
	Reason       string           `json:"reason,omitempty"`
}

func (r *ApprovalRequest) decide(outcome ApprovalOutcome, reason, by string, at time.Time) {
	r.Outcome = outcome
	r.Reason = reason
	r.DecidedBy = &by
	r.DecidedAt = &at
}

// Invoice is a trade invoice moving through upload, approval, funding and payment.
type Invoice struct {
	InvoiceID              string           `json:"invoiceID"`
	InvoiceNumber          string           `json:"invoiceNumber"`
	SellerID               *string          `json:"sellerID,omitempty"`
	BuyerID                *string          `json:"buyerID,omitempty"`
	CounterpartyID         *string          `json:"counterpartyID,omitempty"`
	Amount                 decimal.Decimal  `json:"amount"`
	Currency               string           `json:"currency"`
	IssueDate              time.Time        `json:"issueDate"`
	DueDate                time.Time        `json:"dueDate"`
	Description            string           `json:"description"`
	Status                 InvoiceStatus    `json:"status"`
	FundedAmount           *decimal.Decimal `json:"fundedAmount,omitempty"`
	DiscountRate           *decimal.Decimal `json:"discountRate,omitempty"`
	FundingDate            *time.Time       `json:"fundingDate,omitempty"`
	FinancedOrganizationID *string          `json:"financedOrganizationID,omitempty"`
	PaidAmount             decimal.Decimal  `json:"paidAmount"`
	PaymentDate            *time.Time       `json:"paymentDate,omitempty"`
	BuyerApproval          *ApprovalRequest `json:"buyerApproval,omitempty"`
	SellerAcceptance       *ApprovalRequest `json:"sellerAcceptance,omitempty"`
	RejectionReason        *string          `json:"rejectionReason,omitempty"`
	UploadedBy             string           `json:"uploadedBy"`
	AuditFields
}

// FundingAmounts is the split of the face amount produced by funding.
type FundingAmounts struct {
	Amount   decimal.Decimal
	Discount decimal.Decimal
	Funded   decimal.Decimal
	Rate     decimal.Decimal
}

// PaymentOutcome describes the effect of one payment on the invoice.
type PaymentOutcome struct {
	Amount     decimal.Decimal
	TotalPaid  decimal.Decimal
	Remaining  decimal.Decimal
	FullyPaid  bool
	StatusFrom InvoiceStatus
}

// BuyerApproved reports whether the latest buyer approval round was accepted.
func (i Invoice) BuyerApproved() bool {
	return i.BuyerApproval != nil && i.BuyerApproval.Outcome == ApprovalAccepted
}

// SellerAccepted reports whether the latest seller acceptance round was accepted.
func (i Invoice) SellerAccepted() bool {
	return i.SellerAcceptance != nil && i.SellerAcceptance.Outcome == ApprovalAccepted
}

// PendingAction returns the sub-protocol the invoice is currently waiting on, if any.
func (i Invoice) PendingAction() (ApprovalKind, bool) {
	switch i.Status {
	case InvoiceBuyerApprovalPending:
		return BuyerApproval, true
	case InvoiceSellerAcceptancePending:
		return SellerAcceptance, true
	}
	return "", false
}

// RemainingAmount is the face amount not yet paid.
func (i Invoice) RemainingAmount() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// CanApply evaluates the guard of action against the current status without mutating.
func (i Invoice) CanApply(action InvoiceAction) error {
	allowed, ok := invoiceTransitions[action]
	if !ok {
		return fmt.Errorf("%w: unknown invoice action %q", apperrors.ErrValidation, action)
	}
	if !statusIn(i.Status, allowed) {
		return i.statusMismatch(action, allowed)
	}
	if action == ActionFund {
		switch i.Status {
		case InvoiceBuyerApprovalPending:
			if !i.BuyerApproved() {
				return i.statusMismatch(action, []InvoiceStatus{InvoiceApproved})
			}
		case InvoiceSellerAcceptancePending:
			if !i.SellerAccepted() {
				return i.statusMismatch(action, []InvoiceStatus{InvoiceApproved})
			}
		}
	}
	return nil
}

func (i Invoice) statusMismatch(action InvoiceAction, allowed []InvoiceStatus) error {
	names := make([]string, len(allowed))
	for k, s := range allowed {
		names[k] = string(s)
	}
	return fmt.Errorf("%w: invoice %s is %s, %s requires %s",
		apperrors.ErrValidation, i.InvoiceNumber, i.Status, action, strings.Join(names, " or "))
}

func statusIn(s InvoiceStatus, set []InvoiceStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

func (i *Invoice) touch(by string, at time.Time) {
	i.LastUpdatedAt = at
	i.LastUpdatedBy = by
}

// Validate moves an uploaded invoice to Validated.
func (i *Invoice) Validate(by string, at time.Time) error {
	if err := i.CanApply(ActionValidate); err != nil {
		return err
	}
	i.Status = InvoiceValidated
	i.touch(by, at)
	return nil
}

// Approve moves a validated invoice to Approved.
func (i *Invoice) Approve(by string, at time.Time) error {
	if err := i.CanApply(ActionApprove); err != nil {
		return err
	}
	i.Status = InvoiceApproved
	i.touch(by, at)
	return nil
}

// Reject terminates an uploaded or validated invoice.
func (i *Invoice) Reject(reason, by string, at time.Time) error {
	if err := i.CanApply(ActionReject); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}
	i.Status = InvoiceRejected
	i.RejectionReason = &reason
	i.touch(by, at)
	return nil
}

// RequestBuyerApproval opens a buyer approval round.
func (i *Invoice) RequestBuyerApproval(by string, at time.Time) error {
	if err := i.CanApply(ActionRequestBuyerApproval); err != nil {
		return err
	}
	if i.BuyerID == nil || i.SellerID == nil {
		return fmt.Errorf("%w: invoice %s is missing buyer or seller", apperrors.ErrValidation, i.InvoiceNumber)
	}
	i.BuyerApproval = &ApprovalRequest{
		Kind:        BuyerApproval,
		Outcome:     ApprovalPending,
		RequestedBy: by,
		RequestedAt: at,
	}
	i.Status = InvoiceBuyerApprovalPending
	i.touch(by, at)
	return nil
}

// DecideBuyerApproval closes the open buyer round. Approval returns the invoice to
// Approved, rejection terminates it.
func (i *Invoice) DecideBuyerApproval(approve bool, reason, by string, at time.Time) error {
	action := ActionBuyerApprove
	if !approve {
		action = ActionBuyerReject
	}
	if err := i.CanApply(action); err != nil {
		return err
	}
	if i.BuyerApproval == nil || i.BuyerApproval.Outcome != ApprovalPending {
		return fmt.Errorf("%w: no open buyer approval request on invoice %s", apperrors.ErrValidation, i.InvoiceNumber)
	}
	if approve {
		i.BuyerApproval.decide(ApprovalAccepted, reason, by, at)
		i.Status = InvoiceApproved
	} else {
		if strings.TrimSpace(reason) == "" {
			return fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
		}
		i.BuyerApproval.decide(ApprovalRejected, reason, by, at)
		i.Status = InvoiceRejected
		i.RejectionReason = &reason
	}
	i.touch(by, at)
	return nil
}

// RequestSellerAcceptance offers the seller a discount rate.
func (i *Invoice) RequestSellerAcceptance(rate decimal.Decimal, by string, at time.Time) error {
	if err := i.CanApply(ActionRequestSellerAcceptance); err != nil {
		return err
	}
	if err := ValidateDiscountRate(rate); err != nil {
		return err
	}
	if i.SellerID == nil {
		return fmt.Errorf("%w: invoice %s has no seller", apperrors.ErrValidation, i.InvoiceNumber)
	}
	proposed := rate
	i.SellerAcceptance = &ApprovalRequest{
		Kind:         SellerAcceptance,
		Outcome:      ApprovalPending,
		ProposedRate: &proposed,
		RequestedBy:  by,
		RequestedAt:  at,
	}
	i.DiscountRate = &proposed
	i.Status = InvoiceSellerAcceptancePending
	i.touch(by, at)
	return nil
}

// DecideSellerAcceptance closes the open seller round. Acceptance returns the invoice
// to Approved, rejection reopens it at Validated for renegotiation.
func (i *Invoice) DecideSellerAcceptance(accept bool, reason, by string, at time.Time) error {
	action := ActionSellerAccept
	if !accept {
		action = ActionSellerReject
	}
	if err := i.CanApply(action); err != nil {
		return err
	}
	if i.SellerAcceptance == nil || i.SellerAcceptance.Outcome != ApprovalPending {
		return fmt.Errorf("%w: no open seller acceptance request on invoice %s", apperrors.ErrValidation, i.InvoiceNumber)
	}
	if accept {
		i.SellerAcceptance.decide(ApprovalAccepted, reason, by, at)
		i.Status = InvoiceApproved
	} else {
		i.SellerAcceptance.decide(ApprovalRejected, reason, by, at)
		i.Status = InvoiceValidated
		i.DiscountRate = nil
		if reason != "" {
			i.RejectionReason = &reason
		}
	}
	i.touch(by, at)
	return nil
}

// AcceptedOfferRate returns the rate the seller accepted in the latest round.
func (i Invoice) AcceptedOfferRate() (decimal.Decimal, bool) {
	if i.SellerAccepted() && i.SellerAcceptance.ProposedRate != nil {
		return *i.SellerAcceptance.ProposedRate, true
	}
	return decimal.Zero, false
}

// ComputeFunding splits amount at rate percent. Discount is rounded to the minor unit
// and funded is derived from it so the two always sum to amount.
func ComputeFunding(amount, rate decimal.Decimal) FundingAmounts {
	discount := amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	return FundingAmounts{
		Amount:   amount,
		Discount: discount,
		Funded:   amount.Sub(discount),
		Rate:     rate,
	}
}

// ValidateDiscountRate accepts rates in [0, 100).
func ValidateDiscountRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: discount rate must be between 0 and 100, got %s", apperrors.ErrValidation, rate.String())
	}
	return nil
}

// Fund records the funding split and the organization whose facility is drawn.
func (i *Invoice) Fund(rate decimal.Decimal, financedOrgID, by string, at time.Time) (FundingAmounts, error) {
	if err := i.CanApply(ActionFund); err != nil {
		return FundingAmounts{}, err
	}
	if err := ValidateDiscountRate(rate); err != nil {
		return FundingAmounts{}, err
	}
	if financedOrgID == "" {
		return FundingAmounts{}, fmt.Errorf("%w: funded organization is required", apperrors.ErrValidation)
	}
	split := ComputeFunding(i.Amount, rate)
	funded := split.Funded
	r := rate
	fundedAt := at
	i.FundedAmount = &funded
	i.DiscountRate = &r
	i.FundingDate = &fundedAt
	i.FinancedOrganizationID = &financedOrgID
	i.Status = InvoiceFunded
	i.touch(by, at)
	return split, nil
}

// ApplyPayment adds amount to the paid total. Reaching the face amount exactly marks
// the invoice FullyPaid; anything beyond it is rejected.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, by string, at time.Time) (PaymentOutcome, error) {
	if err := i.CanApply(ActionPay); err != nil {
		return PaymentOutcome{}, err
	}
	if !amount.IsPositive() {
		return PaymentOutcome{}, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	total := i.PaidAmount.Add(amount)
	if total.GreaterThan(i.Amount) {
		return PaymentOutcome{}, fmt.Errorf("%w: payment of %s exceeds remaining amount %s",
			apperrors.ErrValidation, amount.StringFixed(2), i.RemainingAmount().StringFixed(2))
	}
	outcome := PaymentOutcome{Amount: amount, TotalPaid: total, Remaining: i.Amount.Sub(total), StatusFrom: i.Status}
	i.PaidAmount = total
	if total.Equal(i.Amount) {
		paidAt := at
		i.PaymentDate = &paidAt
		i.Status = InvoiceFullyPaid
		outcome.FullyPaid = true
	} else {
		i.Status = InvoicePartiallyPaid
	}
	i.touch(by, at)
	return outcome, nil
}
