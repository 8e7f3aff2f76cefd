package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema from the per-entity field maps.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypeRegistry(r)

	queries := mergeFields(
		t.userQueries(),
		t.accountQueries(),
		t.transactionQueries(),
		t.customerQueries(),
		t.leadQueries(),
		t.invoiceQueries(),
	)
	mutations := mergeFields(
		t.userMutations(),
		t.accountMutations(),
		t.transactionMutations(),
		t.customerMutations(),
		t.leadMutations(),
		t.invoiceMutations(),
	)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queries,
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: mutations,
		}),
	})
}

func mergeFields(maps ...graphql.Fields) graphql.Fields {
	merged := graphql.Fields{}
	for _, m := range maps {
		for name, field := range m {
			merged[name] = field
		}
	}
	return merged
}
