package invoice

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// ItemInput holds one invoice line as provided by the caller.
type ItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     *decimal.Decimal
	VATRate     *decimal.Decimal
}

func (i ItemInput) validate(field string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: field + ".description", Message: "required"})
	}
	if !i.Quantity.IsPositive() {
		errs = append(errs, domain.FieldError{Field: field + ".quantity", Message: "must be positive"})
	}
	if i.UnitPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: field + ".unit_price", Message: "must not be negative"})
	}
	if i.TaxRate != nil && (i.TaxRate.IsNegative() || i.TaxRate.GreaterThan(hundred)) {
		errs = append(errs, domain.FieldError{Field: field + ".tax_rate", Message: "must be between 0 and 100"})
	}
	if i.VATRate != nil && (i.VATRate.IsNegative() || i.VATRate.GreaterThan(hundred)) {
		errs = append(errs, domain.FieldError{Field: field + ".vat_rate", Message: "must be between 0 and 100"})
	}

	return errs
}

// CreateInvoiceInput holds the parameters for creating an invoice.
// Items are optional; a draft may start empty.
type CreateInvoiceInput struct {
	CustomerID uuid.UUID
	IssueDate  *time.Time
	DueDate    *time.Time
	Currency   *string
	Notes      *string
	Terms      *string
	Items      []ItemInput
}

// Validate checks all fields and collects all errors.
func (i CreateInvoiceInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.Currency != nil && len(*i.Currency) != 3 {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}
	if len(i.Items) > 200 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "max 200 items"})
	}
	for n, item := range i.Items {
		errs = append(errs, item.validate(itemField(n))...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInvoiceInput holds the parameters for updating a draft invoice.
type UpdateInvoiceInput struct {
	InvoiceID  uuid.UUID
	CustomerID *uuid.UUID
	IssueDate  *time.Time
	DueDate    *time.Time
	Notes      *string
	Terms      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInvoiceInput) Validate() error {
	var errs []domain.FieldError

	if i.InvoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invoice_id", Message: "required"})
	}
	if i.CustomerID == nil && i.IssueDate == nil && i.DueDate == nil && i.Notes == nil && i.Terms == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInvoicesInput holds the parameters for listing invoices.
type ListInvoicesInput struct {
	Status     *domain.InvoiceStatus
	CustomerID *uuid.UUID
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInvoicesInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid invoice status"})
	}
	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemInput holds the parameters for appending a line to an invoice.
type AddItemInput struct {
	InvoiceID uuid.UUID
	Item      ItemInput
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.InvoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invoice_id", Message: "required"})
	}
	errs = append(errs, i.Item.validate("item")...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for updating an invoice line.
type UpdateItemInput struct {
	ItemID      uuid.UUID
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	TaxRate     *decimal.Decimal
	VATRate     *decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Description != nil && strings.TrimSpace(*i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.Quantity != nil && !i.Quantity.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.UnitPrice != nil && i.UnitPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "unit_price", Message: "must not be negative"})
	}
	if i.TaxRate != nil && (i.TaxRate.IsNegative() || i.TaxRate.GreaterThan(hundred)) {
		errs = append(errs, domain.FieldError{Field: "tax_rate", Message: "must be between 0 and 100"})
	}
	if i.VATRate != nil && (i.VATRate.IsNegative() || i.VATRate.GreaterThan(hundred)) {
		errs = append(errs, domain.FieldError{Field: "vat_rate", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordPaymentInput holds the parameters for recording a payment.
type RecordPaymentInput struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    domain.PaymentMethod
	Reference *string
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i RecordPaymentInput) Validate() error {
	var errs []domain.FieldError

	if i.InvoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invoice_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "method", Message: "invalid payment method"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func itemField(n int) string {
	return "items[" + strconv.Itoa(n) + "]"
}
