package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateCustomer changes mutable fields of a customer.
func (s *Service) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.Update(ctx, p.CompanyID, input.CustomerID, domain.CustomerUpdateParams{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
		Tags:    input.Tags,
		Notes:   input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("customer_id", customer.ID.String()),
	)

	return customer, nil
}
