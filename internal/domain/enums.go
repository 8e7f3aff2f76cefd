package domain

// UserRole represents the authorization level of a user within a company.
type UserRole string

const (
	UserRoleOwner  UserRole = "OWNER"
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
	UserRoleViewer UserRole = "VIEWER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleMember, UserRoleViewer:
		return true
	}
	return false
}

// CanManageUsers reports whether the role may invite users and change roles.
func (r UserRole) CanManageUsers() bool {
	return r == UserRoleOwner || r == UserRoleAdmin
}

// SubscriptionPlan is the company's billing plan.
type SubscriptionPlan string

const (
	PlanFree         SubscriptionPlan = "FREE"
	PlanStarter      SubscriptionPlan = "STARTER"
	PlanProfessional SubscriptionPlan = "PROFESSIONAL"
	PlanEnterprise   SubscriptionPlan = "ENTERPRISE"
)

func (p SubscriptionPlan) String() string { return string(p) }

func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// SubscriptionStatus is the state of the company's subscription.
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "TRIAL"
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionTrial, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled:
		return true
	}
	return false
}

// AccountType is the top-level ledger classification of an account.
type AccountType string

const (
	AccountAsset     AccountType = "ASSET"
	AccountLiability AccountType = "LIABILITY"
	AccountEquity    AccountType = "EQUITY"
	AccountRevenue   AccountType = "REVENUE"
	AccountExpense   AccountType = "EXPENSE"
)

func (t AccountType) String() string { return string(t) }

func (t AccountType) IsValid() bool {
	switch t {
	case AccountAsset, AccountLiability, AccountEquity, AccountRevenue, AccountExpense:
		return true
	}
	return false
}

// TransactionType is the direction of a ledger transaction.
type TransactionType string

const (
	TransactionDebit  TransactionType = "DEBIT"
	TransactionCredit TransactionType = "CREDIT"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	return t == TransactionDebit || t == TransactionCredit
}

// LeadStatus tracks a lead through the pipeline.
type LeadStatus string

const (
	LeadNew         LeadStatus = "NEW"
	LeadContacted   LeadStatus = "CONTACTED"
	LeadQualified   LeadStatus = "QUALIFIED"
	LeadUnqualified LeadStatus = "UNQUALIFIED"
	LeadConverted   LeadStatus = "CONVERTED"
	LeadLost        LeadStatus = "LOST"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadUnqualified, LeadConverted, LeadLost:
		return true
	}
	return false
}

// OpportunityStage is the sales stage of an opportunity.
type OpportunityStage string

const (
	StageProspecting OpportunityStage = "PROSPECTING"
	StageProposal    OpportunityStage = "PROPOSAL"
	StageNegotiation OpportunityStage = "NEGOTIATION"
	StageClosedWon   OpportunityStage = "CLOSED_WON"
	StageClosedLost  OpportunityStage = "CLOSED_LOST"
)

func (s OpportunityStage) String() string { return string(s) }

func (s OpportunityStage) IsValid() bool {
	switch s {
	case StageProspecting, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// ActivityType classifies a lead activity entry.
type ActivityType string

const (
	ActivityNote         ActivityType = "NOTE"
	ActivityCall         ActivityType = "CALL"
	ActivityEmail        ActivityType = "EMAIL"
	ActivityMeeting      ActivityType = "MEETING"
	ActivityStatusChange ActivityType = "STATUS_CHANGE"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityNote, ActivityCall, ActivityEmail, ActivityMeeting, ActivityStatusChange:
		return true
	}
	return false
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
	InvoiceVoid    InvoiceStatus = "VOID"
)

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceVoid:
		return true
	}
	return false
}

// IsEditable reports whether invoice fields and items may still be changed.
// Only drafts are freely editable.
func (s InvoiceStatus) IsEditable() bool { return s == InvoiceDraft }

// HistoryAction is the kind of change recorded in the invoice history log.
type HistoryAction string

const (
	HistoryInvoiceCreated HistoryAction = "INVOICE_CREATED"
	HistoryFieldUpdated   HistoryAction = "FIELD_UPDATED"
	HistoryItemAdded      HistoryAction = "ITEM_ADDED"
	HistoryItemUpdated    HistoryAction = "ITEM_UPDATED"
	HistoryItemDeleted    HistoryAction = "ITEM_DELETED"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case HistoryInvoiceCreated, HistoryFieldUpdated, HistoryItemAdded, HistoryItemUpdated, HistoryItemDeleted:
		return true
	}
	return false
}

// PaymentMethod is how an invoice payment was made.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentCheck        PaymentMethod = "CHECK"
	PaymentOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) String() string { return string(m) }

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentBankTransfer, PaymentCard, PaymentCash, PaymentCheck, PaymentOther:
		return true
	}
	return false
}
