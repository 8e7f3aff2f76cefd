package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a bill issued to a customer. The four stored totals are
// derived from items at write time; readers recompute them as well, so
// drift between stored and recomputed values stays observable.
type Invoice struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	CustomerID uuid.UUID
	Number     string
	Status     InvoiceStatus
	IssueDate  time.Time
	DueDate    *time.Time
	Currency   string
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
	Notes      *string
	Terms      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceUpdateParams holds partial-update fields for a draft invoice.
type InvoiceUpdateParams struct {
	CustomerID *uuid.UUID
	IssueDate  *time.Time
	DueDate    *time.Time
	Notes      *string
	Terms      *string
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Status     *InvoiceStatus
	CustomerID *uuid.UUID
	Limit      int
	Offset     int
}

// InvoiceTotals holds the four derived aggregates of an invoice, each
// rounded to two decimals.
type InvoiceTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// InvoiceItem is one line on an invoice. Amount is the line total
// (quantity × unit price) rounded to two decimals for display; invoice
// totals are computed from the unrounded product.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	VATRate     decimal.Decimal
	Amount      decimal.Decimal
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceItemUpdateParams holds partial-update fields for an invoice item.
type InvoiceItemUpdateParams struct {
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	TaxRate     *decimal.Decimal
	VATRate     *decimal.Decimal
}

// Payment records money received against an invoice.
type Payment struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    PaymentMethod
	Reference *string
	Notes     *string
	CreatedAt time.Time
}

// InvoiceHistoryEntry is one row of the append-only invoice audit trail.
// Entries are written best-effort; a lost entry never fails the mutation
// that produced it.
type InvoiceHistoryEntry struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	UserID    uuid.UUID
	Action    HistoryAction
	Field     *string
	ItemID    *uuid.UUID
	OldValue  *string
	NewValue  *string
	CreatedAt time.Time
}
