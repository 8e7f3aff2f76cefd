// Package dataloader provides per-request DataLoaders for batching
// GraphQL resolver queries into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer. Tenant isolation
// is ensured via SQL (WHERE company_id filters in repo queries), with
// the company taken from the request principal.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.User, error)
}

type accountRepo interface {
	GetByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.Account, error)
}

type customerRepo interface {
	GetByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.Customer, error)
	GetContactsByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]domain.Contact, error)
}

type leadRepo interface {
	GetOpportunitiesByLeadIDs(ctx context.Context, leadIDs []uuid.UUID) ([]domain.Opportunity, error)
}

type invoiceRepo interface {
	GetItemsByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]domain.InvoiceItem, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User     userRepo
	Account  accountRepo
	Customer customerRepo
	Lead     leadRepo
	Invoice  invoiceRepo
}

// Loaders contains all per-request DataLoader instances.
type Loaders struct {
	UserByID              *dataloader.Loader[uuid.UUID, *domain.User]
	AccountByID           *dataloader.Loader[uuid.UUID, *domain.Account]
	CustomerByID          *dataloader.Loader[uuid.UUID, *domain.Customer]
	ContactsByCustomerID  *dataloader.Loader[uuid.UUID, []domain.Contact]
	OpportunitiesByLeadID *dataloader.Loader[uuid.UUID, []domain.Opportunity]
	ItemsByInvoiceID      *dataloader.Loader[uuid.UUID, []domain.InvoiceItem]
}

// NewLoaders creates a new set of DataLoaders backed by the given
// repositories. Must be called per-request (loaders cache results within
// a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:              newLoader(newUsersBatchFn(repos.User)),
		AccountByID:           newLoader(newAccountsBatchFn(repos.Account)),
		CustomerByID:          newLoader(newCustomersBatchFn(repos.Customer)),
		ContactsByCustomerID:  newLoader(newContactsBatchFn(repos.Customer)),
		OpportunitiesByLeadID: newLoader(newOpportunitiesBatchFn(repos.Lead)),
		ItemsByInvoiceID:      newLoader(newItemsBatchFn(repos.Invoice)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context - is middleware configured?")
	}
	return l
}
