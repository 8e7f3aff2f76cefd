package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lead is a potential customer in the sales pipeline. A lead may be
// converted into a Customer exactly once.
type Lead struct {
	ID                    uuid.UUID
	CompanyID             uuid.UUID
	Name                  string
	Email                 *string
	Phone                 *string
	CompanyName           *string
	Source                *string
	Status                LeadStatus
	EstimatedValue        *decimal.Decimal
	AssignedTo            *uuid.UUID
	ConvertedToCustomerID *uuid.UUID
	ConvertedAt           *time.Time
	CustomFields          map[string]any
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsConverted reports whether the lead has already been converted.
func (l Lead) IsConverted() bool {
	return l.ConvertedToCustomerID != nil
}

// LeadUpdateParams holds partial-update fields for a lead.
type LeadUpdateParams struct {
	Name           *string
	Email          *string
	Phone          *string
	CompanyName    *string
	Source         *string
	Status         *LeadStatus
	EstimatedValue *decimal.Decimal
	AssignedTo     *uuid.UUID
	CustomFields   *map[string]any
}

// LeadFilter narrows lead listings (cursor paginated).
type LeadFilter struct {
	Status *LeadStatus
	First  int
	After  *Cursor
}

// Opportunity is a qualified deal attached to a lead.
type Opportunity struct {
	ID                uuid.UUID
	LeadID            uuid.UUID
	Name              string
	Stage             OpportunityStage
	Amount            decimal.Decimal
	Probability       int
	ExpectedCloseDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OpportunityUpdateParams holds partial-update fields for an opportunity.
type OpportunityUpdateParams struct {
	Name              *string
	Stage             *OpportunityStage
	Amount            *decimal.Decimal
	Probability       *int
	ExpectedCloseDate *time.Time
}

// LeadActivity is one entry in a lead's append-only activity log.
type LeadActivity struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	UserID    uuid.UUID
	Type      ActivityType
	Body      string
	CreatedAt time.Time
}
