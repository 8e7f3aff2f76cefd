package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	accountsvc "github.com/ledgerline/ledgerline-backend/internal/service/account"
)

func (t *typeRegistry) accountFields() graphql.Fields {
	return graphql.Fields{
		"id":             {Type: graphql.NewNonNull(graphql.ID)},
		"companyId":      {Type: graphql.NewNonNull(graphql.ID)},
		"code":           {Type: graphql.NewNonNull(graphql.String)},
		"name":           {Type: graphql.NewNonNull(graphql.String)},
		"type":           {Type: graphql.NewNonNull(accountTypeEnum)},
		"category":       {Type: graphql.String},
		"description":    {Type: graphql.String},
		"currency":       {Type: graphql.NewNonNull(graphql.String)},
		"balance":        {Type: graphql.NewNonNull(decimalScalar)},
		"openingBalance": {Type: graphql.NewNonNull(decimalScalar)},
		"isSystem":       {Type: graphql.NewNonNull(graphql.Boolean)},
		"parentId": {
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, ok := source[domain.Account](p)
				if !ok || a.ParentID == nil {
					return nil, nil
				}
				return a.ParentID.String(), nil
			},
		},
		"parent": {
			Type: t.account,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, ok := source[domain.Account](p)
				if !ok || a.ParentID == nil {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.AccountByID.Load(p.Context, *a.ParentID)), nil
			},
		},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) accountQueries() graphql.Fields {
	return graphql.Fields{
		"account": {
			Type: t.account,
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				a, err := t.r.accounts.GetAccount(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return a, nil
			},
		},
		"accounts": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.account))),
			Args: graphql.FieldConfigArgument{
				"type":   {Type: accountTypeEnum},
				"limit":  {Type: graphql.Int},
				"offset": {Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var accType *domain.AccountType
				if at, ok := p.Args["type"].(domain.AccountType); ok {
					accType = &at
				}
				accounts, err := t.r.accounts.ListAccounts(p.Context, accountsvc.ListAccountsInput{
					Type:   accType,
					Limit:  argInt(p.Args, "limit", 0),
					Offset: argInt(p.Args, "offset", 0),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return accounts, nil
			},
		},
	}
}

func (t *typeRegistry) accountMutations() graphql.Fields {
	return graphql.Fields{
		"createAccount": {
			Type: graphql.NewNonNull(t.account),
			Args: graphql.FieldConfigArgument{
				"code":           {Type: graphql.NewNonNull(graphql.String)},
				"name":           {Type: graphql.NewNonNull(graphql.String)},
				"type":           {Type: graphql.NewNonNull(accountTypeEnum)},
				"category":       {Type: graphql.String},
				"description":    {Type: graphql.String},
				"currency":       {Type: graphql.String},
				"openingBalance": {Type: decimalScalar},
				"parentId":       {Type: graphql.ID},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				accType, _ := p.Args["type"].(domain.AccountType)
				openingBalance, err := argDecimalPtr(p.Args, "openingBalance")
				if err != nil {
					return nil, t.present(p, err)
				}
				parentID, err := argIDPtr(p.Args, "parentId")
				if err != nil {
					return nil, t.present(p, err)
				}
				a, err := t.r.accounts.CreateAccount(p.Context, accountsvc.CreateAccountInput{
					Code:           argString(p.Args, "code"),
					Name:           argString(p.Args, "name"),
					Type:           accType,
					Category:       argStringPtr(p.Args, "category"),
					Description:    argStringPtr(p.Args, "description"),
					Currency:       argStringPtr(p.Args, "currency"),
					OpeningBalance: openingBalance,
					ParentID:       parentID,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return a, nil
			},
		},
		"updateAccount": {
			Type: graphql.NewNonNull(t.account),
			Args: graphql.FieldConfigArgument{
				"id":          {Type: graphql.NewNonNull(graphql.ID)},
				"name":        {Type: graphql.String},
				"category":    {Type: graphql.String},
				"description": {Type: graphql.String},
				"parentId":    {Type: graphql.ID},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				parentID, err := argIDPtr(p.Args, "parentId")
				if err != nil {
					return nil, t.present(p, err)
				}
				a, err := t.r.accounts.UpdateAccount(p.Context, accountsvc.UpdateAccountInput{
					AccountID:   id,
					Name:        argStringPtr(p.Args, "name"),
					Category:    argStringPtr(p.Args, "category"),
					Description: argStringPtr(p.Args, "description"),
					ParentID:    parentID,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return a, nil
			},
		},
		"deleteAccount": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.accounts.DeleteAccount(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"recalculateBalances": {
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				n, err := t.r.accounts.RecalculateBalances(p.Context)
				if err != nil {
					return nil, t.present(p, err)
				}
				return n, nil
			},
		},
	}
}
