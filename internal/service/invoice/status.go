package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// allowedTransitions is the invoice status machine. PAID and VOID are
// terminal.
var allowedTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
	domain.InvoiceDraft:   {domain.InvoiceSent, domain.InvoiceVoid},
	domain.InvoiceSent:    {domain.InvoicePaid, domain.InvoiceOverdue, domain.InvoiceVoid},
	domain.InvoiceOverdue: {domain.InvoicePaid, domain.InvoiceVoid},
}

func transitionAllowed(from, to domain.InvoiceStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateInvoiceStatus moves an invoice through its lifecycle. Invalid
// transitions are conflicts.
func (s *Service) UpdateInvoiceStatus(ctx context.Context, invoiceID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid invoice status")
	}

	existing, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if !transitionAllowed(existing.Status, status) {
		return nil, fmt.Errorf("cannot move invoice %s from %s to %s: %w",
			invoiceID, existing.Status, status, domain.ErrConflict)
	}

	invoice, err := s.invoices.UpdateStatus(ctx, p.CompanyID, invoiceID, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoice.ID,
		UserID:    p.UserID,
		Action:    domain.HistoryFieldUpdated,
		Field:     ptr("status"),
		OldValue:  ptr(existing.Status.String()),
		NewValue:  ptr(status.String()),
	})

	s.log.InfoContext(ctx, "invoice status changed",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("from", existing.Status.String()),
		slog.String("to", status.String()),
	)

	return invoice, nil
}
