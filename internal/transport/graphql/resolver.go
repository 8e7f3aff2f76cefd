// Package graphql assembles the resolver-map schema served on /graphql.
// Each entity contributes its query and mutation fields from its own file;
// schema.go merges them into the root Query and Mutation objects.
package graphql

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	accountsvc "github.com/ledgerline/ledgerline-backend/internal/service/account"
	customersvc "github.com/ledgerline/ledgerline-backend/internal/service/customer"
	invoicesvc "github.com/ledgerline/ledgerline-backend/internal/service/invoice"
	leadsvc "github.com/ledgerline/ledgerline-backend/internal/service/lead"
	transactionsvc "github.com/ledgerline/ledgerline-backend/internal/service/transaction"
	usersvc "github.com/ledgerline/ledgerline-backend/internal/service/user"
)

type accountService interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	ListAccounts(ctx context.Context, input accountsvc.ListAccountsInput) ([]domain.Account, error)
	CreateAccount(ctx context.Context, input accountsvc.CreateAccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, input accountsvc.UpdateAccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	RecalculateBalances(ctx context.Context) (int, error)
}

type transactionService interface {
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input transactionsvc.ListTransactionsInput) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, input transactionsvc.CreateTransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, input transactionsvc.UpdateTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error
	SetReconciled(ctx context.Context, transactionID uuid.UUID, reconciled bool) (*domain.Transaction, error)
}

type customerService interface {
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, input customersvc.ListCustomersInput) (domain.Page[domain.Customer], error)
	CreateCustomer(ctx context.Context, input customersvc.CreateCustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, input customersvc.UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
	AddContact(ctx context.Context, input customersvc.AddContactInput) (*domain.Contact, error)
	UpdateContact(ctx context.Context, input customersvc.UpdateContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
}

type leadService interface {
	GetLead(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error)
	ListLeads(ctx context.Context, input leadsvc.ListLeadsInput) (domain.Page[domain.Lead], error)
	CreateLead(ctx context.Context, input leadsvc.CreateLeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, input leadsvc.UpdateLeadInput) (*domain.Lead, error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) error
	ConvertLead(ctx context.Context, leadID uuid.UUID) (*leadsvc.ConvertResult, error)
	CreateOpportunity(ctx context.Context, input leadsvc.CreateOpportunityInput) (*domain.Opportunity, error)
	UpdateOpportunity(ctx context.Context, input leadsvc.UpdateOpportunityInput) (*domain.Opportunity, error)
	DeleteOpportunity(ctx context.Context, opportunityID uuid.UUID) error
	AddActivity(ctx context.Context, input leadsvc.AddActivityInput) (*domain.LeadActivity, error)
	ListActivities(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error)
}

type invoiceService interface {
	GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, input invoicesvc.ListInvoicesInput) ([]domain.Invoice, error)
	ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	ListHistory(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error)
	CreateInvoice(ctx context.Context, input invoicesvc.CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, input invoicesvc.UpdateInvoiceInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	AddItem(ctx context.Context, input invoicesvc.AddItemInput) (*domain.InvoiceItem, error)
	UpdateItem(ctx context.Context, input invoicesvc.UpdateItemInput) (*domain.InvoiceItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	RecordPayment(ctx context.Context, input invoicesvc.RecordPaymentInput) (*domain.Payment, error)
}

type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	GetCompany(ctx context.Context) (*domain.Company, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateCompany(ctx context.Context, input usersvc.UpdateCompanyInput) (*domain.Company, error)
	InviteUser(ctx context.Context, input usersvc.InviteUserInput) (*domain.User, error)
	UpdateUserRole(ctx context.Context, input usersvc.UpdateUserRoleInput) (*domain.User, error)
	RemoveUser(ctx context.Context, userID uuid.UUID) error
}

// Resolver bundles the services backing the schema's resolvers.
type Resolver struct {
	accounts     accountService
	transactions transactionService
	customers    customerService
	leads        leadService
	invoices     invoiceService
	users        userService
	log          *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(
	log *slog.Logger,
	accounts accountService,
	transactions transactionService,
	customers customerService,
	leads leadService,
	invoices invoiceService,
	users userService,
) *Resolver {
	return &Resolver{
		accounts:     accounts,
		transactions: transactions,
		customers:    customers,
		leads:        leads,
		invoices:     invoices,
		users:        users,
		log:          log.With("component", "graphql"),
	}
}
