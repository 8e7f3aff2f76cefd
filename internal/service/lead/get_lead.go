package lead

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetLead returns a single lead of the caller's company.
func (s *Service) GetLead(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if leadID == uuid.Nil {
		return nil, domain.NewValidationError("lead_id", "required")
	}

	lead, err := s.leads.GetByID(ctx, p.CompanyID, leadID)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}

	return lead, nil
}

// ListLeads returns one cursor page of the company's leads, newest first.
func (s *Service) ListLeads(ctx context.Context, input ListLeadsInput) (domain.Page[domain.Lead], error) {
	var page domain.Page[domain.Lead]

	p, err := auth.Require(ctx)
	if err != nil {
		return page, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return page, domain.NewValidationError("status", "invalid lead status")
	}

	var after *domain.Cursor
	if input.After != nil && *input.After != "" {
		cursor, decodeErr := domain.DecodeCursor(*input.After)
		if decodeErr != nil {
			return page, domain.NewValidationError("after", "invalid cursor")
		}
		after = &cursor
	}

	page, err = s.leads.ListPage(ctx, p.CompanyID, domain.LeadFilter{
		Status: input.Status,
		First:  pageSize(input.First),
		After:  after,
	})
	if err != nil {
		return page, fmt.Errorf("list leads: %w", err)
	}

	return page, nil
}
