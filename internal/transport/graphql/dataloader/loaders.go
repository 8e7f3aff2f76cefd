package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Users by ID (company scoped)
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		p, ok := ctxutil.PrincipalFromCtx(ctx)
		if !ok {
			return errorResults[*domain.User](len(keys), domain.ErrUnauthorized)
		}

		users, err := repo.GetByIDs(ctx, p.CompanyID, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			u := users[i]
			byID[u.ID] = &u
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Accounts by ID (company scoped)
// ---------------------------------------------------------------------------

func newAccountsBatchFn(repo accountRepo) dataloader.BatchFunc[uuid.UUID, *domain.Account] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Account] {
		p, ok := ctxutil.PrincipalFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Account](len(keys), domain.ErrUnauthorized)
		}

		accounts, err := repo.GetByIDs(ctx, p.CompanyID, keys)
		if err != nil {
			return errorResults[*domain.Account](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Account, len(accounts))
		for i := range accounts {
			a := accounts[i]
			byID[a.ID] = &a
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Customers by ID (company scoped)
// ---------------------------------------------------------------------------

func newCustomersBatchFn(repo customerRepo) dataloader.BatchFunc[uuid.UUID, *domain.Customer] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Customer] {
		p, ok := ctxutil.PrincipalFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Customer](len(keys), domain.ErrUnauthorized)
		}

		customers, err := repo.GetByIDs(ctx, p.CompanyID, keys)
		if err != nil {
			return errorResults[*domain.Customer](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Customer, len(customers))
		for i := range customers {
			c := customers[i]
			byID[c.ID] = &c
		}

		return oneResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Contacts by CustomerID
// ---------------------------------------------------------------------------

func newContactsBatchFn(repo customerRepo) dataloader.BatchFunc[uuid.UUID, []domain.Contact] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Contact] {
		contacts, err := repo.GetContactsByCustomerIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Contact](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Contact, len(keys))
		for _, c := range contacts {
			grouped[c.CustomerID] = append(grouped[c.CustomerID], c)
		}

		return mapResults(keys, grouped, emptySlice[domain.Contact])
	}
}

// ---------------------------------------------------------------------------
// Opportunities by LeadID
// ---------------------------------------------------------------------------

func newOpportunitiesBatchFn(repo leadRepo) dataloader.BatchFunc[uuid.UUID, []domain.Opportunity] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Opportunity] {
		opportunities, err := repo.GetOpportunitiesByLeadIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Opportunity](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Opportunity, len(keys))
		for _, o := range opportunities {
			grouped[o.LeadID] = append(grouped[o.LeadID], o)
		}

		return mapResults(keys, grouped, emptySlice[domain.Opportunity])
	}
}

// ---------------------------------------------------------------------------
// Items by InvoiceID
// ---------------------------------------------------------------------------

func newItemsBatchFn(repo invoiceRepo) dataloader.BatchFunc[uuid.UUID, []domain.InvoiceItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.InvoiceItem] {
		items, err := repo.GetItemsByInvoiceIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.InvoiceItem](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.InvoiceItem, len(keys))
		for _, item := range items {
			grouped[item.InvoiceID] = append(grouped[item.InvoiceID], item)
		}

		return mapResults(keys, grouped, emptySlice[domain.InvoiceItem])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// oneResults maps 1:1 lookups back to key order; missing keys yield nil.
func oneResults[V any](keys []uuid.UUID, byID map[uuid.UUID]*V) []*dataloader.Result[*V] {
	results := make([]*dataloader.Result[*V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[*V]{Data: byID[key]}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for
// missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
