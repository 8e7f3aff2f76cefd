package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateLeadInput holds the parameters for creating a lead.
type CreateLeadInput struct {
	Name           string
	Email          *string
	Phone          *string
	CompanyName    *string
	Source         *string
	EstimatedValue *decimal.Decimal
	AssignedTo     *uuid.UUID
	CustomFields   map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateLeadInput) Validate() error {
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
	if i.EstimatedValue != nil && i.EstimatedValue.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "estimated_value", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLeadInput holds the parameters for updating a lead.
type UpdateLeadInput struct {
	LeadID         uuid.UUID
	Name           *string
	Email          *string
	Phone          *string
	CompanyName    *string
	Source         *string
	Status         *domain.LeadStatus
	EstimatedValue *decimal.Decimal
	AssignedTo     *uuid.UUID
	CustomFields   *map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateLeadInput) Validate() error {
	var errs []domain.FieldError

	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
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
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid lead status"})
	}
	if i.Status != nil && *i.Status == domain.LeadConverted {
		errs = append(errs, domain.FieldError{Field: "status", Message: "use convertLead to convert"})
	}
	if i.EstimatedValue != nil && i.EstimatedValue.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "estimated_value", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLeadsInput holds the parameters for a lead page.
type ListLeadsInput struct {
	Status *domain.LeadStatus
	First  int
	After  *string
}

// CreateOpportunityInput holds the parameters for creating an opportunity.
type CreateOpportunityInput struct {
	LeadID            uuid.UUID
	Name              string
	Stage             *domain.OpportunityStage
	Amount            decimal.Decimal
	Probability       int
	ExpectedCloseDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateOpportunityInput) Validate() error {
	var errs []domain.FieldError

	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Stage != nil && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "invalid stage"})
	}
	if i.Amount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Probability < 0 || i.Probability > 100 {
		errs = append(errs, domain.FieldError{Field: "probability", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateOpportunityInput holds the parameters for updating an opportunity.
type UpdateOpportunityInput struct {
	OpportunityID     uuid.UUID
	Name              *string
	Stage             *domain.OpportunityStage
	Amount            *decimal.Decimal
	Probability       *int
	ExpectedCloseDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateOpportunityInput) Validate() error {
	var errs []domain.FieldError

	if i.OpportunityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "opportunity_id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Stage != nil && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "invalid stage"})
	}
	if i.Amount != nil && i.Amount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Probability != nil && (*i.Probability < 0 || *i.Probability > 100) {
		errs = append(errs, domain.FieldError{Field: "probability", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddActivityInput holds the parameters for logging a lead activity.
type AddActivityInput struct {
	LeadID uuid.UUID
	Type   domain.ActivityType
	Body   string
}

// Validate checks all fields and collects all errors.
func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid activity type"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(i.Body) > 2000 {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
