package domain

// Organization is the collaborator view of a bank client or the bank itself.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID"`
	IsBank         bool   `json:"isBank"`
	IsBuyer        bool   `json:"isBuyer"`
	IsSeller       bool   `json:"isSeller"`
}

// UserRole is the role of a user inside its organization.
type UserRole string

const (
	RoleBankAdmin  UserRole = "BANK_ADMIN"
	RoleBankUser   UserRole = "BANK_USER"
	RoleClientUser UserRole = "CLIENT_USER"
)

// User is the collaborator view of an authenticated principal.
type User struct {
	UserID         string   `json:"userID"`
	OrganizationID string   `json:"organizationID"`
	Name           string   `json:"name"`
	Role           UserRole `json:"role"`
}

// Counterparty is a non-customer party standing in for one side of an invoice.
type Counterparty struct {
	CounterpartyID string `json:"counterpartyID"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID"`
	Address        string `json:"address"`
	ContactPerson  string `json:"contactPerson"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AuditFields
}

// CustomerRelationship tells which invoice parties hold a credit limit with the bank.
type CustomerRelationship string

const (
	BothAreCustomers  CustomerRelationship = "BOTH_ARE_CUSTOMERS"
	BuyerIsCustomer   CustomerRelationship = "BUYER_IS_CUSTOMER"
	SellerIsCustomer  CustomerRelationship = "SELLER_IS_CUSTOMER"
	NeitherIsCustomer CustomerRelationship = "NEITHER_IS_CUSTOMER"
)

// ResolveCustomerRelationship maps credit-limit presence of each side onto a relationship.
func ResolveCustomerRelationship(sellerIsCustomer, buyerIsCustomer bool) CustomerRelationship {
	switch {
	case sellerIsCustomer && buyerIsCustomer:
		return BothAreCustomers
	case buyerIsCustomer:
		return BuyerIsCustomer
	case sellerIsCustomer:
		return SellerIsCustomer
	default:
		return NeitherIsCustomer
	}
}

// Notification is a fire-and-forget message addressed to one user.
type Notification struct {
	UserID         string  `json:"userID"`
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	Type           string  `json:"type"`
	InvoiceID      *string `json:"invoiceID,omitempty"`
	RequiresAction bool    `json:"requiresAction"`
}
