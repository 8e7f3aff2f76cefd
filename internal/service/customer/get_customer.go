package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetCustomer returns a single customer of the caller's company.
func (s *Service) GetCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}

	customer, err := s.customers.GetByID(ctx, p.CompanyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

// ListCustomers returns one cursor page of the company's customers,
// newest first. An invalid cursor is a validation error.
func (s *Service) ListCustomers(ctx context.Context, input ListCustomersInput) (domain.Page[domain.Customer], error) {
	var page domain.Page[domain.Customer]

	p, err := auth.Require(ctx)
	if err != nil {
		return page, err
	}

	var after *domain.Cursor
	if input.After != nil && *input.After != "" {
		cursor, decodeErr := domain.DecodeCursor(*input.After)
		if decodeErr != nil {
			return page, domain.NewValidationError("after", "invalid cursor")
		}
		after = &cursor
	}

	page, err = s.customers.ListPage(ctx, p.CompanyID, domain.CustomerFilter{
		Search: trimOrNil(input.Search),
		First:  pageSize(input.First),
		After:  after,
	})
	if err != nil {
		return page, fmt.Errorf("list customers: %w", err)
	}

	return page, nil
}

// ListContacts returns the contacts of a customer, primary first.
func (s *Service) ListContacts(ctx context.Context, customerID uuid.UUID) ([]domain.Contact, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}

	if _, err := s.customers.GetByID(ctx, p.CompanyID, customerID); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	contacts, err := s.customers.ListContacts(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}
