package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant root. Every other entity belongs to exactly one
// company and all access is scoped by its ID.
type Company struct {
	ID                 uuid.UUID
	Name               string
	Email              *string
	Phone              *string
	Address            *string
	Currency           string
	SubscriptionPlan   SubscriptionPlan
	SubscriptionStatus SubscriptionStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CompanyUpdateParams holds partial-update fields for a company.
// Nil pointers mean "leave unchanged".
type CompanyUpdateParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// User is an authenticated member of a company.
type User struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller decoded from a bearer token.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Role      UserRole
	CompanyID uuid.UUID
}
