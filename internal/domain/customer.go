package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a CRM customer record.
type Customer struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	Country   *string
	Tags      []string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerUpdateParams holds partial-update fields for a customer.
type CustomerUpdateParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	Country *string
	Tags    *[]string
	Notes   *string
}

// CustomerFilter narrows customer listings (cursor paginated).
type CustomerFilter struct {
	Search *string
	First  int
	After  *Cursor
}

// Contact is a person attached to a customer. At most one contact per
// customer is primary; setting IsPrimary unsets the previous one.
type Contact struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Email      *string
	Phone      *string
	Position   *string
	IsPrimary  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContactUpdateParams holds partial-update fields for a contact.
type ContactUpdateParams struct {
	Name      *string
	Email     *string
	Phone     *string
	Position  *string
	IsPrimary *bool
}
