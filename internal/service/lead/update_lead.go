package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateLead changes mutable fields of a lead. Converted leads are
// frozen. A status change is logged to the lead's activity trail in the
// same transaction.
func (s *Service) UpdateLead(ctx context.Context, input UpdateLeadInput) (*domain.Lead, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.leads.GetByID(ctx, p.CompanyID, input.LeadID)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if existing.IsConverted() {
		return nil, fmt.Errorf("lead %s is already converted: %w", input.LeadID, domain.ErrConflict)
	}

	var lead *domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		lead, updateErr = s.leads.Update(txCtx, p.CompanyID, input.LeadID, domain.LeadUpdateParams{
			Name:           input.Name,
			Email:          input.Email,
			Phone:          input.Phone,
			CompanyName:    input.CompanyName,
			Source:         input.Source,
			Status:         input.Status,
			EstimatedValue: input.EstimatedValue,
			AssignedTo:     input.AssignedTo,
			CustomFields:   input.CustomFields,
		})
		if updateErr != nil {
			return fmt.Errorf("update lead: %w", updateErr)
		}

		if input.Status != nil && *input.Status != existing.Status {
			_, actErr := s.leads.AddActivity(txCtx, &domain.LeadActivity{
				ID:     uuid.New(),
				LeadID: lead.ID,
				UserID: p.UserID,
				Type:   domain.ActivityStatusChange,
				Body:   fmt.Sprintf("status changed from %s to %s", existing.Status, *input.Status),
			})
			if actErr != nil {
				return fmt.Errorf("log status change: %w", actErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lead updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", lead.ID.String()),
	)

	return lead, nil
}

// DeleteLead removes a lead. Opportunities and activities go with it.
func (s *Service) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if leadID == uuid.Nil {
		return domain.NewValidationError("lead_id", "required")
	}

	if err := s.leads.Delete(ctx, p.CompanyID, leadID); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}

	s.log.InfoContext(ctx, "lead deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", leadID.String()),
	)

	return nil
}
