package customer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateCustomerInput holds the parameters for creating a customer.
type CreateCustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	Country *string
	Tags    []string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i CreateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if len(i.Tags) > 20 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCustomerInput holds the parameters for updating a customer.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	Country    *string
	Tags       *[]string
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
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
	if i.Email != nil && *i.Email != "" && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Tags != nil && len(*i.Tags) > 20 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCustomersInput holds the parameters for a customer page.
type ListCustomersInput struct {
	Search *string
	First  int
	After  *string
}

// AddContactInput holds the parameters for adding a contact to a customer.
type AddContactInput struct {
	CustomerID uuid.UUID
	Name       string
	Email      *string
	Phone      *string
	Position   *string
	IsPrimary  bool
}

// Validate checks all fields and collects all errors.
func (i AddContactInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContactInput holds the parameters for updating a contact.
type UpdateContactInput struct {
	ContactID uuid.UUID
	Name      *string
	Email     *string
	Phone     *string
	Position  *string
	IsPrimary *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email != nil && *i.Email != "" && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
