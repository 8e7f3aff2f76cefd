package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// AddItem appends a line to a draft invoice and rewrites the stored
// totals in the same transaction.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.InvoiceItem, error) {
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

	var item *domain.InvoiceItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		position, posErr := s.invoices.NextItemPosition(txCtx, input.InvoiceID)
		if posErr != nil {
			return fmt.Errorf("next position: %w", posErr)
		}

		var createErr error
		item, createErr = s.invoices.CreateItem(txCtx, &domain.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   input.InvoiceID,
			Description: strings.TrimSpace(input.Item.Description),
			Quantity:    input.Item.Quantity,
			UnitPrice:   input.Item.UnitPrice,
			TaxRate:     rateOrZero(input.Item.TaxRate),
			VATRate:     rateOrZero(input.Item.VATRate),
			Amount:      LineAmount(input.Item.Quantity, input.Item.UnitPrice),
			Position:    position,
		})
		if createErr != nil {
			return fmt.Errorf("create item: %w", createErr)
		}

		if recalcErr := s.recalcTotals(txCtx, p.CompanyID, input.InvoiceID); recalcErr != nil {
			return fmt.Errorf("recalc totals: %w", recalcErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: input.InvoiceID,
		UserID:    p.UserID,
		Action:    domain.HistoryItemAdded,
		ItemID:    &item.ID,
		NewValue:  ptr(item.Description),
	})

	s.log.InfoContext(ctx, "invoice item added",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", input.InvoiceID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// UpdateItem changes a line of a draft invoice and rewrites the stored
// totals in the same transaction.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.InvoiceItem, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existingItem, err := s.invoices.GetItem(ctx, p.CompanyID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	invoice, err := s.invoices.GetByID(ctx, p.CompanyID, existingItem.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if !invoice.Status.IsEditable() {
		return nil, fmt.Errorf("invoice %s is %s: %w", invoice.ID, invoice.Status, domain.ErrForbidden)
	}

	quantity := existingItem.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	unitPrice := existingItem.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	var item *domain.InvoiceItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		item, updateErr = s.invoices.UpdateItem(txCtx, input.ItemID, domain.InvoiceItemUpdateParams{
			Description: input.Description,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			TaxRate:     input.TaxRate,
			VATRate:     input.VATRate,
		}, LineAmount(quantity, unitPrice))
		if updateErr != nil {
			return fmt.Errorf("update item: %w", updateErr)
		}

		if recalcErr := s.recalcTotals(txCtx, p.CompanyID, invoice.ID); recalcErr != nil {
			return fmt.Errorf("recalc totals: %w", recalcErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoice.ID,
		UserID:    p.UserID,
		Action:    domain.HistoryItemUpdated,
		ItemID:    &item.ID,
		OldValue:  ptr(existingItem.Amount.String()),
		NewValue:  ptr(item.Amount.String()),
	})

	s.log.InfoContext(ctx, "invoice item updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// DeleteItem removes a line from a draft invoice and rewrites the stored
// totals in the same transaction.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	existingItem, err := s.invoices.GetItem(ctx, p.CompanyID, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	invoice, err := s.invoices.GetByID(ctx, p.CompanyID, existingItem.InvoiceID)
	if err != nil {
		return fmt.Errorf("get invoice: %w", err)
	}
	if !invoice.Status.IsEditable() {
		return fmt.Errorf("invoice %s is %s: %w", invoice.ID, invoice.Status, domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.invoices.DeleteItem(txCtx, itemID); delErr != nil {
			return fmt.Errorf("delete item: %w", delErr)
		}
		if recalcErr := s.recalcTotals(txCtx, p.CompanyID, invoice.ID); recalcErr != nil {
			return fmt.Errorf("recalc totals: %w", recalcErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.history.Record(domain.InvoiceHistoryEntry{
		InvoiceID: invoice.ID,
		UserID:    p.UserID,
		Action:    domain.HistoryItemDeleted,
		ItemID:    &itemID,
		OldValue:  ptr(existingItem.Description),
	})

	s.log.InfoContext(ctx, "invoice item deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
