package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetCompany returns the caller's company profile.
func (s *Service) GetCompany(ctx context.Context) (*domain.Company, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	company, err := s.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	return company, nil
}

// UpdateCompany changes the company profile. Owners and admins only.
func (s *Service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*domain.Company, error) {
	p, err := auth.RequireRole(ctx, domain.UserRoleOwner, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	company, err := s.companies.Update(ctx, p.CompanyID, domain.CompanyUpdateParams{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("user_id", p.UserID.String()),
	)

	return company, nil
}
