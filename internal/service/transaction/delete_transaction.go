package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// DeleteTransaction removes a transaction and reverses its effect on the
// account balance atomically.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if transactionID == uuid.Nil {
		return domain.NewValidationError("transaction_id", "required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.transactions.GetByID(txCtx, p.CompanyID, transactionID)
		if getErr != nil {
			return fmt.Errorf("get transaction: %w", getErr)
		}

		if delErr := s.transactions.Delete(txCtx, p.CompanyID, transactionID); delErr != nil {
			return fmt.Errorf("delete transaction: %w", delErr)
		}

		if incErr := s.accounts.IncrementBalance(txCtx, p.CompanyID, old.AccountID, old.BalanceChange().Neg()); incErr != nil {
			return fmt.Errorf("adjust balance: %w", incErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "transaction deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("transaction_id", transactionID.String()),
	)

	return nil
}
