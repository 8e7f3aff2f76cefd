package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// ConvertResult holds the outcome of a lead conversion.
type ConvertResult struct {
	Lead     *domain.Lead
	Customer *domain.Customer
}

// ConvertLead turns a lead into a customer. The customer is created from
// the lead's contact data, the lead is stamped CONVERTED and frozen, and
// the conversion is logged, all in one transaction. Converting twice is
// a conflict.
func (s *Service) ConvertLead(ctx context.Context, leadID uuid.UUID) (*ConvertResult, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}
	if leadID == uuid.Nil {
		return nil, domain.NewValidationError("lead_id", "required")
	}

	existing, err := s.leads.GetByID(ctx, p.CompanyID, leadID)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if existing.IsConverted() {
		return nil, fmt.Errorf("lead %s is already converted: %w", leadID, domain.ErrConflict)
	}

	var result ConvertResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		customer, createErr := s.customers.Create(txCtx, &domain.Customer{
			ID:        uuid.New(),
			CompanyID: p.CompanyID,
			Name:      existing.Name,
			Email:     existing.Email,
			Phone:     existing.Phone,
		})
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}

		lead, markErr := s.leads.MarkConverted(txCtx, p.CompanyID, leadID, customer.ID)
		if markErr != nil {
			return fmt.Errorf("mark converted: %w", markErr)
		}

		_, actErr := s.leads.AddActivity(txCtx, &domain.LeadActivity{
			ID:     uuid.New(),
			LeadID: leadID,
			UserID: p.UserID,
			Type:   domain.ActivityStatusChange,
			Body:   fmt.Sprintf("converted to customer %s", customer.ID),
		})
		if actErr != nil {
			return fmt.Errorf("log conversion: %w", actErr)
		}

		result = ConvertResult{Lead: lead, Customer: customer}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lead converted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("lead_id", leadID.String()),
		slog.String("customer_id", result.Customer.ID.String()),
	)

	return &result, nil
}
