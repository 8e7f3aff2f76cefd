package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateTransaction records a debit or credit and applies its effect to
// the account balance in the same database transaction.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.accounts.GetByID(ctx, p.CompanyID, input.AccountID); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var transaction *domain.Transaction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		transaction, createErr = s.transactions.Create(txCtx, &domain.Transaction{
			ID:          uuid.New(),
			CompanyID:   p.CompanyID,
			AccountID:   input.AccountID,
			Type:        input.Type,
			Amount:      input.Amount,
			Date:        input.Date,
			Description: trimOrNil(input.Description),
			Reference:   trimOrNil(input.Reference),
			Metadata:    input.Metadata,
		})
		if createErr != nil {
			return fmt.Errorf("create transaction: %w", createErr)
		}

		if incErr := s.accounts.IncrementBalance(txCtx, p.CompanyID, input.AccountID, transaction.BalanceChange()); incErr != nil {
			return fmt.Errorf("adjust balance: %w", incErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "transaction created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("account_id", input.AccountID.String()),
		slog.String("type", transaction.Type.String()),
		slog.String("amount", transaction.Amount.String()),
	)

	return transaction, nil
}
