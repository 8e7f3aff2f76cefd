package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateTransactionInput holds the parameters for recording a transaction.
type CreateTransactionInput struct {
	AccountID   uuid.UUID
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	Reference   *string
	Metadata    map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateTransactionInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be DEBIT or CREDIT"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTransactionInput holds the parameters for updating a transaction.
// The owning account cannot be changed; delete and recreate instead.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Type          *domain.TransactionType
	Amount        *decimal.Decimal
	Date          *time.Time
	Description   *string
	Reference     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTransactionInput) Validate() error {
	var errs []domain.FieldError

	if i.TransactionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "transaction_id", Message: "required"})
	}
	if i.Type == nil && i.Amount == nil && i.Date == nil && i.Description == nil && i.Reference == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be DEBIT or CREDIT"})
	}
	if i.Amount != nil && !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTransactionsInput holds the parameters for listing transactions.
type ListTransactionsInput struct {
	AccountID  *uuid.UUID
	Type       *domain.TransactionType
	Reconciled *bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListTransactionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be DEBIT or CREDIT"})
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
