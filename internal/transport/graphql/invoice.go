package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	invoicesvc "github.com/ledgerline/ledgerline-backend/internal/service/invoice"
)

// invoiceItemInput is the input object for invoice lines on createInvoice.
var invoiceItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "InvoiceItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"description": {Type: graphql.NewNonNull(graphql.String)},
		"quantity":    {Type: graphql.NewNonNull(decimalScalar)},
		"unitPrice":   {Type: graphql.NewNonNull(decimalScalar)},
		"taxRate":     {Type: decimalScalar},
		"vatRate":     {Type: decimalScalar},
	},
})

func (t *typeRegistry) invoiceFields() graphql.Fields {
	return graphql.Fields{
		"id":         {Type: graphql.NewNonNull(graphql.ID)},
		"companyId":  {Type: graphql.NewNonNull(graphql.ID)},
		"customerId": {Type: graphql.NewNonNull(graphql.ID)},
		"customer": {
			Type: t.customer,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, ok := source[domain.Invoice](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.CustomerByID.Load(p.Context, inv.CustomerID)), nil
			},
		},
		"number":    {Type: graphql.NewNonNull(graphql.String)},
		"status":    {Type: graphql.NewNonNull(invoiceStatusEnum)},
		"issueDate": {Type: graphql.NewNonNull(graphql.DateTime)},
		"dueDate":   {Type: graphql.DateTime},
		"currency":  {Type: graphql.NewNonNull(graphql.String)},

		// Totals are recomputed from the current lines; the stored*
		// variants expose what the last write persisted, so drift is
		// observable from the API.
		"subtotal":  {Type: graphql.NewNonNull(decimalScalar), Resolve: t.computedTotal(func(tot domain.InvoiceTotals) decimal.Decimal { return tot.Subtotal })},
		"taxAmount": {Type: graphql.NewNonNull(decimalScalar), Resolve: t.computedTotal(func(tot domain.InvoiceTotals) decimal.Decimal { return tot.TaxAmount })},
		"vatAmount": {Type: graphql.NewNonNull(decimalScalar), Resolve: t.computedTotal(func(tot domain.InvoiceTotals) decimal.Decimal { return tot.VATAmount })},
		"total":     {Type: graphql.NewNonNull(decimalScalar), Resolve: t.computedTotal(func(tot domain.InvoiceTotals) decimal.Decimal { return tot.Total })},
		"storedSubtotal": {
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, _ := source[domain.Invoice](p)
				return inv.Subtotal, nil
			},
		},
		"storedTaxAmount": {
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, _ := source[domain.Invoice](p)
				return inv.TaxAmount, nil
			},
		},
		"storedVatAmount": {
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, _ := source[domain.Invoice](p)
				return inv.VATAmount, nil
			},
		},
		"storedTotal": {
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, _ := source[domain.Invoice](p)
				return inv.Total, nil
			},
		},

		"notes": {Type: graphql.String},
		"terms": {Type: graphql.String},
		"items": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.invoiceItem))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, ok := source[domain.Invoice](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.ItemsByInvoiceID.Load(p.Context, inv.ID)), nil
			},
		},
		"payments": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.payment))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, ok := source[domain.Invoice](p)
				if !ok {
					return nil, nil
				}
				payments, err := t.r.invoices.ListPayments(p.Context, inv.ID)
				if err != nil {
					return nil, t.present(p, err)
				}
				return payments, nil
			},
		},
		"history": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.historyEntry))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				inv, ok := source[domain.Invoice](p)
				if !ok {
					return nil, nil
				}
				history, err := t.r.invoices.ListHistory(p.Context, inv.ID)
				if err != nil {
					return nil, t.present(p, err)
				}
				return history, nil
			},
		},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

// computedTotal loads the invoice's items through the batching loader and
// recomputes one aggregate. The loader caches per request, so all four
// total fields share a single query.
func (t *typeRegistry) computedTotal(pick func(domain.InvoiceTotals) decimal.Decimal) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		inv, ok := source[domain.Invoice](p)
		if !ok {
			return nil, nil
		}
		thunk := dataloader.FromContext(p.Context).ItemsByInvoiceID.Load(p.Context, inv.ID)
		return func() (any, error) {
			items, err := thunk()
			if err != nil {
				return nil, t.present(p, err)
			}
			return pick(invoicesvc.CalculateTotals(items)), nil
		}, nil
	}
}

func (t *typeRegistry) invoiceItemFields() graphql.Fields {
	return graphql.Fields{
		"id":          {Type: graphql.NewNonNull(graphql.ID)},
		"invoiceId":   {Type: graphql.NewNonNull(graphql.ID)},
		"description": {Type: graphql.NewNonNull(graphql.String)},
		"quantity":    {Type: graphql.NewNonNull(decimalScalar)},
		"unitPrice":   {Type: graphql.NewNonNull(decimalScalar)},
		"taxRate":     {Type: graphql.NewNonNull(decimalScalar)},
		"vatRate":     {Type: graphql.NewNonNull(decimalScalar)},
		"amount":      {Type: graphql.NewNonNull(decimalScalar)},
		"position":    {Type: graphql.NewNonNull(graphql.Int)},
		"createdAt":   {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) paymentFields() graphql.Fields {
	return graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"invoiceId": {Type: graphql.NewNonNull(graphql.ID)},
		"amount":    {Type: graphql.NewNonNull(decimalScalar)},
		"date":      {Type: graphql.NewNonNull(graphql.DateTime)},
		"method":    {Type: graphql.NewNonNull(paymentMethodEnum)},
		"reference": {Type: graphql.String},
		"notes":     {Type: graphql.String},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) historyEntryFields() graphql.Fields {
	return graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"invoiceId": {Type: graphql.NewNonNull(graphql.ID)},
		"userId":    {Type: graphql.NewNonNull(graphql.ID)},
		"user": {
			Type: t.user,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				entry, ok := source[domain.InvoiceHistoryEntry](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.UserByID.Load(p.Context, entry.UserID)), nil
			},
		},
		"action": {Type: graphql.NewNonNull(historyActionEnum)},
		"field":  {Type: graphql.String},
		"itemId": {
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				entry, ok := source[domain.InvoiceHistoryEntry](p)
				if !ok || entry.ItemID == nil {
					return nil, nil
				}
				return entry.ItemID.String(), nil
			},
		},
		"oldValue":  {Type: graphql.String},
		"newValue":  {Type: graphql.String},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) invoiceQueries() graphql.Fields {
	return graphql.Fields{
		"invoice": {
			Type: t.invoice,
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				inv, err := t.r.invoices.GetInvoice(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return inv, nil
			},
		},
		"invoices": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.invoice))),
			Args: graphql.FieldConfigArgument{
				"status":     {Type: invoiceStatusEnum},
				"customerId": {Type: graphql.ID},
				"limit":      {Type: graphql.Int},
				"offset":     {Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				customerID, err := argIDPtr(p.Args, "customerId")
				if err != nil {
					return nil, t.present(p, err)
				}
				var status *domain.InvoiceStatus
				if s, ok := p.Args["status"].(domain.InvoiceStatus); ok {
					status = &s
				}
				invoices, err := t.r.invoices.ListInvoices(p.Context, invoicesvc.ListInvoicesInput{
					Status:     status,
					CustomerID: customerID,
					Limit:      argInt(p.Args, "limit", 0),
					Offset:     argInt(p.Args, "offset", 0),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return invoices, nil
			},
		},
	}
}

func (t *typeRegistry) invoiceMutations() graphql.Fields {
	return graphql.Fields{
		"createInvoice": {
			Type: graphql.NewNonNull(t.invoice),
			Args: graphql.FieldConfigArgument{
				"customerId": {Type: graphql.NewNonNull(graphql.ID)},
				"issueDate":  {Type: graphql.DateTime},
				"dueDate":    {Type: graphql.DateTime},
				"currency":   {Type: graphql.String},
				"notes":      {Type: graphql.String},
				"terms":      {Type: graphql.String},
				"items":      {Type: graphql.NewList(graphql.NewNonNull(invoiceItemInput))},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				customerID, err := argID(p.Args, "customerId")
				if err != nil {
					return nil, t.present(p, err)
				}
				items, err := parseItemInputs(p.Args["items"])
				if err != nil {
					return nil, t.present(p, err)
				}
				inv, err := t.r.invoices.CreateInvoice(p.Context, invoicesvc.CreateInvoiceInput{
					CustomerID: customerID,
					IssueDate:  argTimePtr(p.Args, "issueDate"),
					DueDate:    argTimePtr(p.Args, "dueDate"),
					Currency:   argStringPtr(p.Args, "currency"),
					Notes:      argStringPtr(p.Args, "notes"),
					Terms:      argStringPtr(p.Args, "terms"),
					Items:      items,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return inv, nil
			},
		},
		"updateInvoice": {
			Type: graphql.NewNonNull(t.invoice),
			Args: graphql.FieldConfigArgument{
				"id":         {Type: graphql.NewNonNull(graphql.ID)},
				"customerId": {Type: graphql.ID},
				"issueDate":  {Type: graphql.DateTime},
				"dueDate":    {Type: graphql.DateTime},
				"notes":      {Type: graphql.String},
				"terms":      {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				customerID, err := argIDPtr(p.Args, "customerId")
				if err != nil {
					return nil, t.present(p, err)
				}
				inv, err := t.r.invoices.UpdateInvoice(p.Context, invoicesvc.UpdateInvoiceInput{
					InvoiceID:  id,
					CustomerID: customerID,
					IssueDate:  argTimePtr(p.Args, "issueDate"),
					DueDate:    argTimePtr(p.Args, "dueDate"),
					Notes:      argStringPtr(p.Args, "notes"),
					Terms:      argStringPtr(p.Args, "terms"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return inv, nil
			},
		},
		"deleteInvoice": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.invoices.DeleteInvoice(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"sendInvoice":     t.statusMutation(domain.InvoiceSent),
		"voidInvoice":     t.statusMutation(domain.InvoiceVoid),
		"markInvoicePaid": t.statusMutation(domain.InvoicePaid),
		"addInvoiceItem": {
			Type: graphql.NewNonNull(t.invoiceItem),
			Args: graphql.FieldConfigArgument{
				"invoiceId": {Type: graphql.NewNonNull(graphql.ID)},
				"item":      {Type: graphql.NewNonNull(invoiceItemInput)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				invoiceID, err := argID(p.Args, "invoiceId")
				if err != nil {
					return nil, t.present(p, err)
				}
				raw, _ := p.Args["item"].(map[string]any)
				item, err := parseItemInput(raw)
				if err != nil {
					return nil, t.present(p, err)
				}
				created, err := t.r.invoices.AddItem(p.Context, invoicesvc.AddItemInput{
					InvoiceID: invoiceID,
					Item:      item,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return created, nil
			},
		},
		"updateInvoiceItem": {
			Type: graphql.NewNonNull(t.invoiceItem),
			Args: graphql.FieldConfigArgument{
				"id":          {Type: graphql.NewNonNull(graphql.ID)},
				"description": {Type: graphql.String},
				"quantity":    {Type: decimalScalar},
				"unitPrice":   {Type: decimalScalar},
				"taxRate":     {Type: decimalScalar},
				"vatRate":     {Type: decimalScalar},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				quantity, err := argDecimalPtr(p.Args, "quantity")
				if err != nil {
					return nil, t.present(p, err)
				}
				unitPrice, err := argDecimalPtr(p.Args, "unitPrice")
				if err != nil {
					return nil, t.present(p, err)
				}
				taxRate, err := argDecimalPtr(p.Args, "taxRate")
				if err != nil {
					return nil, t.present(p, err)
				}
				vatRate, err := argDecimalPtr(p.Args, "vatRate")
				if err != nil {
					return nil, t.present(p, err)
				}
				item, err := t.r.invoices.UpdateItem(p.Context, invoicesvc.UpdateItemInput{
					ItemID:      id,
					Description: argStringPtr(p.Args, "description"),
					Quantity:    quantity,
					UnitPrice:   unitPrice,
					TaxRate:     taxRate,
					VATRate:     vatRate,
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return item, nil
			},
		},
		"deleteInvoiceItem": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.invoices.DeleteItem(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"recordPayment": {
			Type: graphql.NewNonNull(t.payment),
			Args: graphql.FieldConfigArgument{
				"invoiceId": {Type: graphql.NewNonNull(graphql.ID)},
				"amount":    {Type: graphql.NewNonNull(decimalScalar)},
				"date":      {Type: graphql.DateTime},
				"method":    {Type: graphql.NewNonNull(paymentMethodEnum)},
				"reference": {Type: graphql.String},
				"notes":     {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				invoiceID, err := argID(p.Args, "invoiceId")
				if err != nil {
					return nil, t.present(p, err)
				}
				amount, err := argDecimal(p.Args, "amount")
				if err != nil {
					return nil, t.present(p, err)
				}
				date := time.Now().UTC()
				if d := argTimePtr(p.Args, "date"); d != nil {
					date = *d
				}
				method, _ := p.Args["method"].(domain.PaymentMethod)
				payment, err := t.r.invoices.RecordPayment(p.Context, invoicesvc.RecordPaymentInput{
					InvoiceID: invoiceID,
					Amount:    amount,
					Date:      date,
					Method:    method,
					Reference: argStringPtr(p.Args, "reference"),
					Notes:     argStringPtr(p.Args, "notes"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return payment, nil
			},
		},
	}
}

func (t *typeRegistry) statusMutation(target domain.InvoiceStatus) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(t.invoice),
		Args: graphql.FieldConfigArgument{
			"id": {Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			id, err := argID(p.Args, "id")
			if err != nil {
				return nil, t.present(p, err)
			}
			inv, err := t.r.invoices.UpdateInvoiceStatus(p.Context, id, target)
			if err != nil {
				return nil, t.present(p, err)
			}
			return inv, nil
		},
	}
}

func parseItemInputs(raw any) ([]invoicesvc.ItemInput, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	items := make([]invoicesvc.ItemInput, 0, len(list))
	for _, v := range list {
		m, _ := v.(map[string]any)
		item, err := parseItemInput(m)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItemInput(m map[string]any) (invoicesvc.ItemInput, error) {
	quantity, err := argDecimal(m, "quantity")
	if err != nil {
		return invoicesvc.ItemInput{}, err
	}
	unitPrice, err := argDecimal(m, "unitPrice")
	if err != nil {
		return invoicesvc.ItemInput{}, err
	}
	taxRate, err := argDecimalPtr(m, "taxRate")
	if err != nil {
		return invoicesvc.ItemInput{}, err
	}
	vatRate, err := argDecimalPtr(m, "vatRate")
	if err != nil {
		return invoicesvc.ItemInput{}, err
	}
	return invoicesvc.ItemInput{
		Description: argString(m, "description"),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TaxRate:     taxRate,
		VATRate:     vatRate,
	}, nil
}
