package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// DeleteCustomer removes a customer and their contacts. Customers with
// invoices cannot be deleted; void the invoices first.
func (s *Service) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if customerID == uuid.Nil {
		return domain.NewValidationError("customer_id", "required")
	}

	count, err := s.invoices.CountByCustomer(ctx, p.CompanyID, customerID)
	if err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("customer %s has %d invoices: %w", customerID, count, domain.ErrConflict)
	}

	if err := s.customers.Delete(ctx, p.CompanyID, customerID); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("customer_id", customerID.String()),
	)

	return nil
}
