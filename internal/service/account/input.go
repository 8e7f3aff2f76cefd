package account

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateAccountInput holds the parameters for creating a ledger account.
type CreateAccountInput struct {
	Code           string
	Name           string
	Type           domain.AccountType
	Category       *string
	Description    *string
	Currency       *string
	OpeningBalance *decimal.Decimal
	ParentID       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateAccountInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(i.Code) > 20 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 20 characters"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid account type"})
	}
	if i.Currency != nil && len(*i.Currency) != 3 {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAccountInput holds the parameters for updating a ledger account.
type UpdateAccountInput struct {
	AccountID   uuid.UUID
	Name        *string
	Category    *string
	Description *string
	ParentID    *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateAccountInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.Name == nil && i.Category == nil && i.Description == nil && i.ParentID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.ParentID != nil && *i.ParentID == i.AccountID {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "account cannot be its own parent"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListAccountsInput holds the parameters for listing accounts.
type ListAccountsInput struct {
	Type   *domain.AccountType
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListAccountsInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid account type"})
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
