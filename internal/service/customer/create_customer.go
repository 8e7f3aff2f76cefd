package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateCustomer adds a customer to the caller's company.
func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.Create(ctx, &domain.Customer{
		ID:        uuid.New(),
		CompanyID: p.CompanyID,
		Name:      strings.TrimSpace(input.Name),
		Email:     trimOrNil(input.Email),
		Phone:     trimOrNil(input.Phone),
		Address:   trimOrNil(input.Address),
		City:      trimOrNil(input.City),
		Country:   trimOrNil(input.Country),
		Tags:      input.Tags,
		Notes:     trimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("customer_id", customer.ID.String()),
	)

	return customer, nil
}
