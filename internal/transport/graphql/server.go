package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/ledgerline/ledgerline-backend/internal/config"
)

// NewHandler returns the /graphql HTTP handler. GraphiQL is served on GET
// when enabled in config.
func NewHandler(schema graphql.Schema, cfg config.GraphQLConfig) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   cfg.Pretty,
		GraphiQL: cfg.PlaygroundEnabled,
	})
}
