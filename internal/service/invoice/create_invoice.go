package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateInvoice creates a draft invoice with a company-sequential number
// and writes its items and totals in one transaction. Omitted issue and
// due dates fall back to today and the configured payment term.
func (s *Service) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByID(ctx, p.CompanyID, input.CustomerID); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	issueDate := time.Now().UTC()
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	dueDate := input.DueDate
	if dueDate == nil && s.cfg.DueInDays > 0 {
		d := issueDate.AddDate(0, 0, s.cfg.DueInDays)
		dueDate = &d
	}
	currency := s.cfg.DefaultCurrency
	if input.Currency != nil {
		currency = strings.ToUpper(*input.Currency)
	}

	var invoice *domain.Invoice
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		number, numErr := s.invoices.NextNumber(txCtx, p.CompanyID, s.cfg.NumberPrefix)
		if numErr != nil {
			return fmt.Errorf("next number: %w", numErr)
		}

		invoiceID := uuid.New()
		items := make([]domain.InvoiceItem, 0, len(input.Items))
		for n, in := range input.Items {
			items = append(items, domain.InvoiceItem{
				ID:          uuid.New(),
				InvoiceID:   invoiceID,
				Description: strings.TrimSpace(in.Description),
				Quantity:    in.Quantity,
				UnitPrice:   in.UnitPrice,
				TaxRate:     rateOrZero(in.TaxRate),
				VATRate:     rateOrZero(in.VATRate),
				Amount:      LineAmount(in.Quantity, in.UnitPrice),
				Position:    n + 1,
			})
		}
		totals := CalculateTotals(items)

		var createErr error
		invoice, createErr = s.invoices.Create(txCtx, &domain.Invoice{
			ID:         invoiceID,
			CompanyID:  p.CompanyID,
			CustomerID: input.CustomerID,
			Number:     number,
			Status:     domain.InvoiceDraft,
			IssueDate:  issueDate,
			DueDate:    dueDate,
			Currency:   currency,
			Subtotal:   totals.Subtotal,
			TaxAmount:  totals.TaxAmount,
			VATAmount:  totals.VATAmount,
			Total:      totals.Total,
			Notes:      trimOrNil(input.Notes),
			Terms:      trimOrNil(input.Terms),
		})
		if createErr != nil {
			return fmt.Errorf("create invoice: %w", createErr)
		}

		for _, item := range items {
			if _, itemErr := s.invoices.CreateItem(txCtx, &item); itemErr != nil {
				return fmt.Errorf("create item: %w", itemErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoice.ID,
		UserID:    p.UserID,
		Action:    domain.HistoryInvoiceCreated,
	})

	s.log.InfoContext(ctx, "invoice created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("number", invoice.Number),
		slog.String("total", invoice.Total.String()),
	)

	return invoice, nil
}

func rateOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
