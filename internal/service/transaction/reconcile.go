package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// SetReconciled marks a transaction as matched (or unmatched) against a
// bank statement. Reconciliation has no balance effect.
func (s *Service) SetReconciled(ctx context.Context, transactionID uuid.UUID, reconciled bool) (*domain.Transaction, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}
	if transactionID == uuid.Nil {
		return nil, domain.NewValidationError("transaction_id", "required")
	}

	transaction, err := s.transactions.SetReconciled(ctx, p.CompanyID, transactionID, reconciled)
	if err != nil {
		return nil, fmt.Errorf("set reconciled: %w", err)
	}

	s.log.InfoContext(ctx, "transaction reconciliation changed",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.Bool("reconciled", reconciled),
	)

	return transaction, nil
}
