package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetInvoice returns a single invoice of the caller's company.
func (s *Service) GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	invoice, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	return invoice, nil
}

// ListInvoices returns invoices of the caller's company, newest first.
func (s *Service) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.invoices.List(ctx, p.CompanyID, domain.InvoiceFilter{
		Status:     input.Status,
		CustomerID: input.CustomerID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

// ListItems returns the invoice's lines in position order.
func (s *Service) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	if _, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// ComputedTotals recomputes the invoice aggregates from current items,
// independent of the stored columns. Exposed so drift between the two
// stays observable.
func (s *Service) ComputedTotals(ctx context.Context, invoiceID uuid.UUID) (domain.InvoiceTotals, error) {
	var totals domain.InvoiceTotals

	p, err := auth.Require(ctx)
	if err != nil {
		return totals, err
	}
	if invoiceID == uuid.Nil {
		return totals, domain.NewValidationError("invoice_id", "required")
	}

	if _, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID); err != nil {
		return totals, fmt.Errorf("get invoice: %w", err)
	}

	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return totals, fmt.Errorf("list items: %w", err)
	}

	return CalculateTotals(items), nil
}

// ListHistory returns the invoice audit trail, newest first.
func (s *Service) ListHistory(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	if _, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	entries, err := s.invoices.ListHistory(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// ListPayments returns the payments recorded against an invoice.
func (s *Service) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == uuid.Nil {
		return nil, domain.NewValidationError("invoice_id", "required")
	}

	if _, err := s.invoices.GetByID(ctx, p.CompanyID, invoiceID); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	payments, err := s.invoices.ListPayments(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
