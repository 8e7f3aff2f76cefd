package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateInvoice changes header fields of a draft invoice. Sent and later
// invoices are frozen except for status transitions.
func (s *Service) UpdateInvoice(ctx context.Context, input UpdateInvoiceInput) (*domain.Invoice, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.invoices.GetByID(ctx, p.CompanyID, input.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if !existing.Status.IsEditable() {
		return nil, fmt.Errorf("invoice %s is %s: %w", input.InvoiceID, existing.Status, domain.ErrForbidden)
	}

	if input.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, p.CompanyID, *input.CustomerID); err != nil {
			return nil, fmt.Errorf("get customer: %w", err)
		}
	}

	invoice, err := s.invoices.Update(ctx, p.CompanyID, input.InvoiceID, domain.InvoiceUpdateParams{
		CustomerID: input.CustomerID,
		IssueDate:  input.IssueDate,
		DueDate:    input.DueDate,
		Notes:      input.Notes,
		Terms:      input.Terms,
	})
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoice.ID,
		UserID:    p.UserID,
		Action:    domain.HistoryFieldUpdated,
	})

	s.log.InfoContext(ctx, "invoice updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoice.ID.String()),
	)

	return invoice, nil
}

// DeleteInvoice removes a draft invoice. Non-drafts must be voided, not
// deleted, so the numbering trail stays intact.
func (s *Service) DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if invoiceID == uuid.Nil {
		return domain.NewValidationError("invoice_id", "required")
	}

	existing, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID)
	if err != nil {
		return fmt.Errorf("get invoice: %w", err)
	}
	if !existing.Status.IsEditable() {
		return fmt.Errorf("invoice %s is %s: %w", invoiceID, existing.Status, domain.ErrForbidden)
	}

	if err := s.invoices.Delete(ctx, p.CompanyID, invoiceID); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	s.log.InfoContext(ctx, "invoice deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoiceID.String()),
	)

	return nil
}
