package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// typeRegistry holds one instance of every object type so that entity
// files can cross-reference each other. Field maps are registered as
// thunks, so declaration order does not matter.
type typeRegistry struct {
	r *Resolver

	company           *graphql.Object
	user              *graphql.Object
	account           *graphql.Object
	transaction       *graphql.Object
	customer          *graphql.Object
	contact           *graphql.Object
	lead              *graphql.Object
	opportunity       *graphql.Object
	activity          *graphql.Object
	invoice           *graphql.Object
	invoiceItem       *graphql.Object
	payment           *graphql.Object
	historyEntry      *graphql.Object
	convertLeadResult *graphql.Object

	pageInfo           *graphql.Object
	customerConnection *graphql.Object
	leadConnection     *graphql.Object
}

func newTypeRegistry(r *Resolver) *typeRegistry {
	t := &typeRegistry{r: r}

	t.company = newObject("Company", t.companyFields)
	t.user = newObject("User", t.userFields)
	t.account = newObject("Account", t.accountFields)
	t.transaction = newObject("Transaction", t.transactionFields)
	t.customer = newObject("Customer", t.customerFields)
	t.contact = newObject("Contact", t.contactFields)
	t.lead = newObject("Lead", t.leadFields)
	t.opportunity = newObject("Opportunity", t.opportunityFields)
	t.activity = newObject("LeadActivity", t.activityFields)
	t.invoice = newObject("Invoice", t.invoiceFields)
	t.invoiceItem = newObject("InvoiceItem", t.invoiceItemFields)
	t.payment = newObject("Payment", t.paymentFields)
	t.historyEntry = newObject("InvoiceHistoryEntry", t.historyEntryFields)
	t.convertLeadResult = newObject("ConvertLeadResult", t.convertLeadResultFields)

	t.pageInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage": {Type: graphql.NewNonNull(graphql.Boolean)},
			"endCursor":   {Type: graphql.String},
		},
	})
	t.customerConnection = connectionObject("Customer", t.customer, t.pageInfo)
	t.leadConnection = connectionObject("Lead", t.lead, t.pageInfo)

	return t
}

func newObject(name string, fields func() graphql.Fields) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: graphql.FieldsThunk(fields),
	})
}

// connectionObject builds the Relay-style Edge and Connection pair for a
// node type.
func connectionObject(name string, node, pageInfo *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node":   {Type: graphql.NewNonNull(node)},
			"cursor": {Type: graphql.NewNonNull(graphql.String)},
		},
	})
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges":    {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType)))},
			"pageInfo": {Type: graphql.NewNonNull(pageInfo)},
		},
	})
}

func (t *typeRegistry) present(p graphql.ResolveParams, err error) error {
	return presentError(p.Context, t.r.log, err)
}

// source extracts the typed source of a field resolution, accepting both
// values (list items) and pointers (loader results).
func source[T any](p graphql.ResolveParams) (T, bool) {
	switch v := p.Source.(type) {
	case T:
		return v, true
	case *T:
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

// deferred wraps a dataloader thunk so the engine completes other fields
// before forcing it, letting loads batch.
func deferred[V any](thunk func() (V, error)) func() (any, error) {
	return func() (any, error) { return thunk() }
}

type edge[T any] struct {
	Node   T
	Cursor string
}

type pageInfoPayload struct {
	HasNextPage bool
	EndCursor   *string
}

type connectionPayload[T any] struct {
	Edges    []edge[T]
	PageInfo pageInfoPayload
}

// newConnection converts a service page into a Relay connection payload.
func newConnection[T any](page domain.Page[T], cursorOf func(T) domain.Cursor) connectionPayload[T] {
	edges := make([]edge[T], 0, len(page.Items))
	for _, item := range page.Items {
		edges = append(edges, edge[T]{Node: item, Cursor: cursorOf(item).Encode()})
	}
	return connectionPayload[T]{
		Edges: edges,
		PageInfo: pageInfoPayload{
			HasNextPage: page.HasNextPage,
			EndCursor:   page.EndCursor,
		},
	}
}
