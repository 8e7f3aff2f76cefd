package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateCompanyInput holds the parameters for updating the company profile.
type UpdateCompanyInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCompanyInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Email == nil && i.Phone == nil && i.Address == nil {
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
	if i.Email != nil && *i.Email != "" && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// InviteUserInput holds the parameters for adding a user to the company.
type InviteUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.UserRole
}

// Validate checks all fields and collects all errors.
func (i InviteUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" || !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	if i.Role == domain.UserRoleOwner {
		errs = append(errs, domain.FieldError{Field: "role", Message: "cannot invite an owner"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserRoleInput holds the parameters for changing a user's role.
type UpdateUserRoleInput struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// Validate checks all fields and collects all errors.
func (i UpdateUserRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
