package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	usersvc "github.com/ledgerline/ledgerline-backend/internal/service/user"
)

func (t *typeRegistry) companyFields() graphql.Fields {
	return graphql.Fields{
		"id":                 {Type: graphql.NewNonNull(graphql.ID)},
		"name":               {Type: graphql.NewNonNull(graphql.String)},
		"email":              {Type: graphql.String},
		"phone":              {Type: graphql.String},
		"address":            {Type: graphql.String},
		"currency":           {Type: graphql.NewNonNull(graphql.String)},
		"subscriptionPlan":   {Type: graphql.NewNonNull(subscriptionPlanEnum)},
		"subscriptionStatus": {Type: graphql.NewNonNull(subscriptionStatusEnum)},
		"createdAt":          {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":          {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) userFields() graphql.Fields {
	return graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"companyId": {Type: graphql.NewNonNull(graphql.ID)},
		"email":     {Type: graphql.NewNonNull(graphql.String)},
		"name":      {Type: graphql.NewNonNull(graphql.String)},
		"role":      {Type: graphql.NewNonNull(userRoleEnum)},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) userQueries() graphql.Fields {
	return graphql.Fields{
		"me": {
			Type: graphql.NewNonNull(t.user),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, err := t.r.users.Me(p.Context)
				if err != nil {
					return nil, t.present(p, err)
				}
				return u, nil
			},
		},
		"company": {
			Type: graphql.NewNonNull(t.company),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, err := t.r.users.GetCompany(p.Context)
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"users": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.user))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				users, err := t.r.users.ListUsers(p.Context)
				if err != nil {
					return nil, t.present(p, err)
				}
				return users, nil
			},
		},
	}
}

func (t *typeRegistry) userMutations() graphql.Fields {
	return graphql.Fields{
		"updateCompany": {
			Type: graphql.NewNonNull(t.company),
			Args: graphql.FieldConfigArgument{
				"name":    {Type: graphql.String},
				"email":   {Type: graphql.String},
				"phone":   {Type: graphql.String},
				"address": {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, err := t.r.users.UpdateCompany(p.Context, usersvc.UpdateCompanyInput{
					Name:    argStringPtr(p.Args, "name"),
					Email:   argStringPtr(p.Args, "email"),
					Phone:   argStringPtr(p.Args, "phone"),
					Address: argStringPtr(p.Args, "address"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"inviteUser": {
			Type: graphql.NewNonNull(t.user),
			Args: graphql.FieldConfigArgument{
				"email":    {Type: graphql.NewNonNull(graphql.String)},
				"name":     {Type: graphql.NewNonNull(graphql.String)},
				"password": {Type: graphql.NewNonNull(graphql.String)},
				"role":     {Type: graphql.NewNonNull(userRoleEnum)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				role, _ := p.Args["role"].(domain.UserRole)
				u, err := t.r.users.InviteUser(p.Context, usersvc.InviteUserInput{
					Email:    argString(p.Args, "email"),
					Name:     argString(p.Args, "name"),
					Password: argString(p.Args, "password"),
					Role:     role,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return u, nil
			},
		},
		"updateUserRole": {
			Type: graphql.NewNonNull(t.user),
			Args: graphql.FieldConfigArgument{
				"userId": {Type: graphql.NewNonNull(graphql.ID)},
				"role":   {Type: graphql.NewNonNull(userRoleEnum)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				userID, err := argID(p.Args, "userId")
				if err != nil {
					return nil, t.present(p, err)
				}
				role, _ := p.Args["role"].(domain.UserRole)
				u, err := t.r.users.UpdateUserRole(p.Context, usersvc.UpdateUserRoleInput{
					UserID: userID,
					Role:   role,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return u, nil
			},
		},
		"removeUser": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"userId": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				userID, err := argID(p.Args, "userId")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.users.RemoveUser(p.Context, userID); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
	}
}
