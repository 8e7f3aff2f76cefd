package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateLead adds a lead to the caller's company pipeline with status NEW.
func (s *Service) CreateLead(ctx context.Context, input CreateLeadInput) (*domain.Lead, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lead, err := s.leads.Create(ctx, &domain.Lead{
		ID:             uuid.New(),
		CompanyID:      p.CompanyID,
		Name:           strings.TrimSpace(input.Name),
		Email:          trimOrNil(input.Email),
		Phone:          trimOrNil(input.Phone),
		CompanyName:    trimOrNil(input.CompanyName),
		Source:         trimOrNil(input.Source),
		Status:         domain.LeadNew,
		EstimatedValue: input.EstimatedValue,
		AssignedTo:     input.AssignedTo,
		CustomFields:   input.CustomFields,
	})
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	s.log.InfoContext(ctx, "lead created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", lead.ID.String()),
	)

	return lead, nil
}
