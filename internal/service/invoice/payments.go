package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// RecordPayment records money received against a sent or overdue
// invoice. When cumulative payments reach the invoice total, the invoice
// flips to PAID in the same transaction.
func (s *Service) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	invoice, err := s.invoices.GetByID(ctx, p.CompanyID, input.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice.Status != domain.InvoiceSent && invoice.Status != domain.InvoiceOverdue {
		return nil, fmt.Errorf("invoice %s is %s: %w", input.InvoiceID, invoice.Status, domain.ErrConflict)
	}

	var payment *domain.Payment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		payment, createErr = s.invoices.CreatePayment(txCtx, &domain.Payment{
			ID:        uuid.New(),
			InvoiceID: input.InvoiceID,
			Amount:    input.Amount,
			Date:      input.Date,
			Method:    input.Method,
			Reference: trimOrNil(input.Reference),
			Notes:     trimOrNil(input.Notes),
		})
		if createErr != nil {
			return fmt.Errorf("create payment: %w", createErr)
		}

		paid, sumErr := s.invoices.SumPayments(txCtx, input.InvoiceID)
		if sumErr != nil {
			return fmt.Errorf("sum payments: %w", sumErr)
		}
		if paid.GreaterThanOrEqual(invoice.Total) {
			if _, statusErr := s.invoices.UpdateStatus(txCtx, p.CompanyID, input.InvoiceID, domain.InvoicePaid); statusErr != nil {
				return fmt.Errorf("mark paid: %w", statusErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "payment recorded",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", input.InvoiceID.String()),
		slog.String("payment_id", payment.ID.String()),
		slog.String("amount", payment.Amount.String()),
	)

	return payment, nil
}
