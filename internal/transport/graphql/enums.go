package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var userRoleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "UserRole",
	Values: graphql.EnumValueConfigMap{
		"OWNER":  {Value: domain.UserRoleOwner},
		"ADMIN":  {Value: domain.UserRoleAdmin},
		"MEMBER": {Value: domain.UserRoleMember},
		"VIEWER": {Value: domain.UserRoleViewer},
	},
})

var subscriptionPlanEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SubscriptionPlan",
	Values: graphql.EnumValueConfigMap{
		"FREE":         {Value: domain.PlanFree},
		"STARTER":      {Value: domain.PlanStarter},
		"PROFESSIONAL": {Value: domain.PlanProfessional},
		"ENTERPRISE":   {Value: domain.PlanEnterprise},
	},
})

var subscriptionStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SubscriptionStatus",
	Values: graphql.EnumValueConfigMap{
		"TRIAL":    {Value: domain.SubscriptionTrial},
		"ACTIVE":   {Value: domain.SubscriptionActive},
		"PAST_DUE": {Value: domain.SubscriptionPastDue},
		"CANCELED": {Value: domain.SubscriptionCanceled},
	},
})

var accountTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "AccountType",
	Values: graphql.EnumValueConfigMap{
		"ASSET":     {Value: domain.AccountAsset},
		"LIABILITY": {Value: domain.AccountLiability},
		"EQUITY":    {Value: domain.AccountEquity},
		"REVENUE":   {Value: domain.AccountRevenue},
		"EXPENSE":   {Value: domain.AccountExpense},
	},
})

var transactionTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TransactionType",
	Values: graphql.EnumValueConfigMap{
		"DEBIT":  {Value: domain.TransactionDebit},
		"CREDIT": {Value: domain.TransactionCredit},
	},
})

var leadStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "LeadStatus",
	Values: graphql.EnumValueConfigMap{
		"NEW":         {Value: domain.LeadNew},
		"CONTACTED":   {Value: domain.LeadContacted},
		"QUALIFIED":   {Value: domain.LeadQualified},
		"UNQUALIFIED": {Value: domain.LeadUnqualified},
		"CONVERTED":   {Value: domain.LeadConverted},
		"LOST":        {Value: domain.LeadLost},
	},
})

var opportunityStageEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "OpportunityStage",
	Values: graphql.EnumValueConfigMap{
		"PROSPECTING": {Value: domain.StageProspecting},
		"PROPOSAL":    {Value: domain.StageProposal},
		"NEGOTIATION": {Value: domain.StageNegotiation},
		"CLOSED_WON":  {Value: domain.StageClosedWon},
		"CLOSED_LOST": {Value: domain.StageClosedLost},
	},
})

var activityTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ActivityType",
	Values: graphql.EnumValueConfigMap{
		"NOTE":          {Value: domain.ActivityNote},
		"CALL":          {Value: domain.ActivityCall},
		"EMAIL":         {Value: domain.ActivityEmail},
		"MEETING":       {Value: domain.ActivityMeeting},
		"STATUS_CHANGE": {Value: domain.ActivityStatusChange},
	},
})

var invoiceStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "InvoiceStatus",
	Values: graphql.EnumValueConfigMap{
		"DRAFT":   {Value: domain.InvoiceDraft},
		"SENT":    {Value: domain.InvoiceSent},
		"PAID":    {Value: domain.InvoicePaid},
		"OVERDUE": {Value: domain.InvoiceOverdue},
		"VOID":    {Value: domain.InvoiceVoid},
	},
})

var historyActionEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "HistoryAction",
	Values: graphql.EnumValueConfigMap{
		"INVOICE_CREATED": {Value: domain.HistoryInvoiceCreated},
		"FIELD_UPDATED":   {Value: domain.HistoryFieldUpdated},
		"ITEM_ADDED":      {Value: domain.HistoryItemAdded},
		"ITEM_UPDATED":    {Value: domain.HistoryItemUpdated},
		"ITEM_DELETED":    {Value: domain.HistoryItemDeleted},
	},
})

var paymentMethodEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "PaymentMethod",
	Values: graphql.EnumValueConfigMap{
		"BANK_TRANSFER": {Value: domain.PaymentBankTransfer},
		"CARD":          {Value: domain.PaymentCard},
		"CASH":          {Value: domain.PaymentCash},
		"CHECK":         {Value: domain.PaymentCheck},
		"OTHER":         {Value: domain.PaymentOther},
	},
})
