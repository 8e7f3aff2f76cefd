package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	transactionsvc "github.com/ledgerline/ledgerline-backend/internal/service/transaction"
)

func (t *typeRegistry) transactionFields() graphql.Fields {
	return graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"companyId": {Type: graphql.NewNonNull(graphql.ID)},
		"accountId": {Type: graphql.NewNonNull(graphql.ID)},
		"account": {
			Type: t.account,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				tx, ok := source[domain.Transaction](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.AccountByID.Load(p.Context, tx.AccountID)), nil
			},
		},
		"type":        {Type: graphql.NewNonNull(transactionTypeEnum)},
		"amount":      {Type: graphql.NewNonNull(decimalScalar)},
		"date":        {Type: graphql.NewNonNull(graphql.DateTime)},
		"description": {Type: graphql.String},
		"reference":   {Type: graphql.String},
		"reconciled":  {Type: graphql.NewNonNull(graphql.Boolean)},
		"metadata":    {Type: jsonScalar},
		"createdAt":   {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) transactionQueries() graphql.Fields {
	return graphql.Fields{
		"transaction": {
			Type: t.transaction,
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				tx, err := t.r.transactions.GetTransaction(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return tx, nil
			},
		},
		"transactions": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.transaction))),
			Args: graphql.FieldConfigArgument{
				"accountId":  {Type: graphql.ID},
				"type":       {Type: transactionTypeEnum},
				"reconciled": {Type: graphql.Boolean},
				"limit":      {Type: graphql.Int},
				"offset":     {Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				accountID, err := argIDPtr(p.Args, "accountId")
				if err != nil {
					return nil, t.present(p, err)
				}
				var txType *domain.TransactionType
				if tt, ok := p.Args["type"].(domain.TransactionType); ok {
					txType = &tt
				}
				transactions, err := t.r.transactions.ListTransactions(p.Context, transactionsvc.ListTransactionsInput{
					AccountID:  accountID,
					Type:       txType,
					Reconciled: argBoolPtr(p.Args, "reconciled"),
					Limit:      argInt(p.Args, "limit", 0),
					Offset:     argInt(p.Args, "offset", 0),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return transactions, nil
			},
		},
	}
}

func (t *typeRegistry) transactionMutations() graphql.Fields {
	return graphql.Fields{
		"createTransaction": {
			Type: graphql.NewNonNull(t.transaction),
			Args: graphql.FieldConfigArgument{
				"accountId":   {Type: graphql.NewNonNull(graphql.ID)},
				"type":        {Type: graphql.NewNonNull(transactionTypeEnum)},
				"amount":      {Type: graphql.NewNonNull(decimalScalar)},
				"date":        {Type: graphql.NewNonNull(graphql.DateTime)},
				"description": {Type: graphql.String},
				"reference":   {Type: graphql.String},
				"metadata":    {Type: jsonScalar},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				accountID, err := argID(p.Args, "accountId")
				if err != nil {
					return nil, t.present(p, err)
				}
				amount, err := argDecimal(p.Args, "amount")
				if err != nil {
					return nil, t.present(p, err)
				}
				date, err := argTime(p.Args, "date")
				if err != nil {
					return nil, t.present(p, err)
				}
				txType, _ := p.Args["type"].(domain.TransactionType)
				tx, err := t.r.transactions.CreateTransaction(p.Context, transactionsvc.CreateTransactionInput{
					AccountID:   accountID,
					Type:        txType,
					Amount:      amount,
					Date:        date,
					Description: argStringPtr(p.Args, "description"),
					Reference:   argStringPtr(p.Args, "reference"),
					Metadata:    argJSON(p.Args, "metadata"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return tx, nil
			},
		},
		"updateTransaction": {
			Type: graphql.NewNonNull(t.transaction),
			Args: graphql.FieldConfigArgument{
				"id":          {Type: graphql.NewNonNull(graphql.ID)},
				"type":        {Type: transactionTypeEnum},
				"amount":      {Type: decimalScalar},
				"date":        {Type: graphql.DateTime},
				"description": {Type: graphql.String},
				"reference":   {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				amount, err := argDecimalPtr(p.Args, "amount")
				if err != nil {
					return nil, t.present(p, err)
				}
				var txType *domain.TransactionType
				if tt, ok := p.Args["type"].(domain.TransactionType); ok {
					txType = &tt
				}
				tx, err := t.r.transactions.UpdateTransaction(p.Context, transactionsvc.UpdateTransactionInput{
					TransactionID: id,
					Type:          txType,
					Amount:        amount,
					Date:          argTimePtr(p.Args, "date"),
					Description:   argStringPtr(p.Args, "description"),
					Reference:     argStringPtr(p.Args, "reference"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return tx, nil
			},
		},
		"deleteTransaction": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.transactions.DeleteTransaction(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"reconcileTransaction": {
			Type: graphql.NewNonNull(t.transaction),
			Args: graphql.FieldConfigArgument{
				"id":         {Type: graphql.NewNonNull(graphql.ID)},
				"reconciled": {Type: graphql.NewNonNull(graphql.Boolean)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				tx, err := t.r.transactions.SetReconciled(p.Context, id, argBool(p.Args, "reconciled"))
				if err != nil {
					return nil, t.present(p, err)
				}
				return tx, nil
			},
		},
	}
}
