package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateTransaction changes a transaction and applies the net balance
// delta (new effect minus old effect) to the account atomically.
func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var transaction *domain.Transaction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.transactions.GetByID(txCtx, p.CompanyID, input.TransactionID)
		if getErr != nil {
			return fmt.Errorf("get transaction: %w", getErr)
		}

		var updateErr error
		transaction, updateErr = s.transactions.Update(txCtx, p.CompanyID, input.TransactionID, domain.TransactionUpdateParams{
			Type:        input.Type,
			Amount:      input.Amount,
			Date:        input.Date,
			Description: input.Description,
			Reference:   input.Reference,
		})
		if updateErr != nil {
			return fmt.Errorf("update transaction: %w", updateErr)
		}

		delta := transaction.BalanceChange().Sub(old.BalanceChange())
		if !delta.IsZero() {
			if incErr := s.accounts.IncrementBalance(txCtx, p.CompanyID, old.AccountID, delta); incErr != nil {
				return fmt.Errorf("adjust balance: %w", incErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "transaction updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("transaction_id", transaction.ID.String()),
	)

	return transaction, nil
}
