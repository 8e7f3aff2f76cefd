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

// AddActivity appends a note, call, email or meeting entry to a lead's
// activity trail.
func (s *Service) AddActivity(ctx context.Context, input AddActivityInput) (*domain.LeadActivity, error) {
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

	activity, err := s.leads.AddActivity(ctx, &domain.LeadActivity{
		ID:     uuid.New(),
		LeadID: input.LeadID,
		UserID: p.UserID,
		Type:   input.Type,
		Body:   strings.TrimSpace(input.Body),
	})
	if err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}

	s.log.InfoContext(ctx, "lead activity added",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", input.LeadID.String()),
		slog.String("type", activity.Type.String()),
	)

	return activity, nil
}

// ListActivities returns a lead's activity trail, newest first.
func (s *Service) ListActivities(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if leadID == uuid.Nil {
		return nil, domain.NewValidationError("lead_id", "required")
	}

	if _, err := s.leads.GetByID(ctx, p.CompanyID, leadID); err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}

	activities, err := s.leads.ListActivities(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}
