package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	customersvc "github.com/ledgerline/ledgerline-backend/internal/service/customer"
)

func (t *typeRegistry) customerFields() graphql.Fields {
	return graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"companyId": {Type: graphql.NewNonNull(graphql.ID)},
		"name":      {Type: graphql.NewNonNull(graphql.String)},
		"email":     {Type: graphql.String},
		"phone":     {Type: graphql.String},
		"address":   {Type: graphql.String},
		"city":      {Type: graphql.String},
		"country":   {Type: graphql.String},
		"tags":      {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"notes":     {Type: graphql.String},
		"contacts": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.contact))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, ok := source[domain.Customer](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.ContactsByCustomerID.Load(p.Context, c.ID)), nil
			},
		},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) contactFields() graphql.Fields {
	return graphql.Fields{
		"id":         {Type: graphql.NewNonNull(graphql.ID)},
		"customerId": {Type: graphql.NewNonNull(graphql.ID)},
		"name":       {Type: graphql.NewNonNull(graphql.String)},
		"email":      {Type: graphql.String},
		"phone":      {Type: graphql.String},
		"position":   {Type: graphql.String},
		"isPrimary":  {Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":  {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":  {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) customerQueries() graphql.Fields {
	return graphql.Fields{
		"customer": {
			Type: t.customer,
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				c, err := t.r.customers.GetCustomer(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"customers": {
			Type: graphql.NewNonNull(t.customerConnection),
			Args: graphql.FieldConfigArgument{
				"search": {Type: graphql.String},
				"first":  {Type: graphql.Int},
				"after":  {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				page, err := t.r.customers.ListCustomers(p.Context, customersvc.ListCustomersInput{
					Search: argStringPtr(p.Args, "search"),
					First:  argInt(p.Args, "first", 0),
					After:  argStringPtr(p.Args, "after"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return newConnection(page, func(c domain.Customer) domain.Cursor {
					return domain.Cursor{CreatedAt: c.CreatedAt, ID: c.ID}
				}), nil
			},
		},
	}
}

func (t *typeRegistry) customerMutations() graphql.Fields {
	return graphql.Fields{
		"createCustomer": {
			Type: graphql.NewNonNull(t.customer),
			Args: graphql.FieldConfigArgument{
				"name":    {Type: graphql.NewNonNull(graphql.String)},
				"email":   {Type: graphql.String},
				"phone":   {Type: graphql.String},
				"address": {Type: graphql.String},
				"city":    {Type: graphql.String},
				"country": {Type: graphql.String},
				"tags":    {Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
				"notes":   {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, err := t.r.customers.CreateCustomer(p.Context, customersvc.CreateCustomerInput{
					Name:    argString(p.Args, "name"),
					Email:   argStringPtr(p.Args, "email"),
					Phone:   argStringPtr(p.Args, "phone"),
					Address: argStringPtr(p.Args, "address"),
					City:    argStringPtr(p.Args, "city"),
					Country: argStringPtr(p.Args, "country"),
					Tags:    argStringSlice(p.Args, "tags"),
					Notes:   argStringPtr(p.Args, "notes"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"updateCustomer": {
			Type: graphql.NewNonNull(t.customer),
			Args: graphql.FieldConfigArgument{
				"id":      {Type: graphql.NewNonNull(graphql.ID)},
				"name":    {Type: graphql.String},
				"email":   {Type: graphql.String},
				"phone":   {Type: graphql.String},
				"address": {Type: graphql.String},
				"city":    {Type: graphql.String},
				"country": {Type: graphql.String},
				"tags":    {Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
				"notes":   {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				c, err := t.r.customers.UpdateCustomer(p.Context, customersvc.UpdateCustomerInput{
					CustomerID: id,
					Name:       argStringPtr(p.Args, "name"),
					Email:      argStringPtr(p.Args, "email"),
					Phone:      argStringPtr(p.Args, "phone"),
					Address:    argStringPtr(p.Args, "address"),
					City:       argStringPtr(p.Args, "city"),
					Country:    argStringPtr(p.Args, "country"),
					Tags:       argStringSlicePtr(p.Args, "tags"),
					Notes:      argStringPtr(p.Args, "notes"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"deleteCustomer": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.customers.DeleteCustomer(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"createContact": {
			Type: graphql.NewNonNull(t.contact),
			Args: graphql.FieldConfigArgument{
				"customerId": {Type: graphql.NewNonNull(graphql.ID)},
				"name":       {Type: graphql.NewNonNull(graphql.String)},
				"email":      {Type: graphql.String},
				"phone":      {Type: graphql.String},
				"position":   {Type: graphql.String},
				"isPrimary":  {Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				customerID, err := argID(p.Args, "customerId")
				if err != nil {
					return nil, t.present(p, err)
				}
				c, err := t.r.customers.AddContact(p.Context, customersvc.AddContactInput{
					CustomerID: customerID,
					Name:       argString(p.Args, "name"),
					Email:      argStringPtr(p.Args, "email"),
					Phone:      argStringPtr(p.Args, "phone"),
					Position:   argStringPtr(p.Args, "position"),
					IsPrimary:  argBool(p.Args, "isPrimary"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"updateContact": {
			Type: graphql.NewNonNull(t.contact),
			Args: graphql.FieldConfigArgument{
				"id":        {Type: graphql.NewNonNull(graphql.ID)},
				"name":      {Type: graphql.String},
				"email":     {Type: graphql.String},
				"phone":     {Type: graphql.String},
				"position":  {Type: graphql.String},
				"isPrimary": {Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				c, err := t.r.customers.UpdateContact(p.Context, customersvc.UpdateContactInput{
					ContactID: id,
					Name:      argStringPtr(p.Args, "name"),
					Email:     argStringPtr(p.Args, "email"),
					Phone:     argStringPtr(p.Args, "phone"),
					Position:  argStringPtr(p.Args, "position"),
					IsPrimary: argBoolPtr(p.Args, "isPrimary"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return c, nil
			},
		},
		"deleteContact": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.customers.DeleteContact(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
	}
}
