package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateOpportunity attaches a deal to a lead.
func (s *Service) CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*domain.Opportunity, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.leads.GetByID(ctx, p.CompanyID, input.LeadID); err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}

	stage := domain.StageProspecting
	if input.Stage != nil {
		stage = *input.Stage
	}

	opportunity, err := s.leads.CreateOpportunity(ctx, &domain.Opportunity{
		ID:                uuid.New(),
		LeadID:            input.LeadID,
		Name:              input.Name,
		Stage:             stage,
		Amount:            input.Amount,
		Probability:       input.Probability,
		ExpectedCloseDate: input.ExpectedCloseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create opportunity: %w", err)
	}

	s.log.InfoContext(ctx, "opportunity created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", input.LeadID.String()),
		slog.String("opportunity_id", opportunity.ID.String()),
	)

	return opportunity, nil
}

// UpdateOpportunity changes mutable fields of an opportunity.
func (s *Service) UpdateOpportunity(ctx context.Context, input UpdateOpportunityInput) (*domain.Opportunity, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.leads.GetOpportunity(ctx, p.CompanyID, input.OpportunityID); err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}

	opportunity, err := s.leads.UpdateOpportunity(ctx, input.OpportunityID, domain.OpportunityUpdateParams{
		Name:              input.Name,
		Stage:             input.Stage,
		Amount:            input.Amount,
		Probability:       input.Probability,
		ExpectedCloseDate: input.ExpectedCloseDate,
	})
	if err != nil {
		return nil, fmt.Errorf("update opportunity: %w", err)
	}

	s.log.InfoContext(ctx, "opportunity updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("opportunity_id", opportunity.ID.String()),
	)

	return opportunity, nil
}

// DeleteOpportunity removes an opportunity from its lead.
func (s *Service) DeleteOpportunity(ctx context.Context, opportunityID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if opportunityID == uuid.Nil {
		return domain.NewValidationError("opportunity_id", "required")
	}

	if _, err := s.leads.GetOpportunity(ctx, p.CompanyID, opportunityID); err != nil {
		return fmt.Errorf("get opportunity: %w", err)
	}

	if err := s.leads.DeleteOpportunity(ctx, opportunityID); err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}

	s.log.InfoContext(ctx, "opportunity deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("opportunity_id", opportunityID.String()),
	)

	return nil
}
